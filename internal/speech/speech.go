// Package speech turns arrivals into a short sentence for voice assistants.
package speech

import (
	"fmt"
	"strings"

	"nexttrain/internal/feeds"
)

const noInformation = "No train information available."

var labels = map[feeds.Direction]string{
	feeds.Northbound: "Uptown",
	feeds.Southbound: "Downtown",
}

// Format renders at most limit arrivals per direction. An empty dir renders
// northbound then southbound.
func Format(res feeds.Result, dir feeds.Direction, limit int) string {
	directions := []feeds.Direction{dir}
	if dir == "" {
		directions = []feeds.Direction{feeds.Northbound, feeds.Southbound}
	}

	var parts []string
	for _, d := range directions {
		arrivals, ok := res.For(d)
		if !ok {
			continue
		}
		parts = append(parts, section(d, arrivals, limit))
	}

	if len(parts) == 0 {
		return noInformation
	}
	return strings.Join(parts, " ")
}

func section(d feeds.Direction, arrivals []feeds.Arrival, limit int) string {
	if len(arrivals) > limit {
		arrivals = arrivals[:limit]
	}
	if len(arrivals) == 0 {
		return fmt.Sprintf("No %s trains scheduled.", d)
	}

	trains := make([]string, 0, len(arrivals))
	for _, a := range arrivals {
		trains = append(trains, describe(a))
	}
	return fmt.Sprintf("%s: %s.", labels[d], strings.Join(trains, ", "))
}

func describe(a feeds.Arrival) string {
	switch a.Minutes {
	case 0:
		return a.Route + " train arriving now"
	case 1:
		return a.Route + " train in 1 minute"
	default:
		return fmt.Sprintf("%s train in %d minutes", a.Route, a.Minutes)
	}
}
