package api

import (
	"net/url"
	"strings"

	"nexttrain/internal/feeds"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Query is a parsed /next-train request.
type Query struct {
	Routes    map[string]bool // nil means every route served at the station
	Direction feeds.Direction // "" means both
	Format    Format
}

// ParseQuery reads direction, train and format parameters. Train codes the
// station does not serve are dropped.
func ParseQuery(values url.Values, supported func(route string) bool) Query {
	q := Query{
		Direction: parseDirection(values.Get("direction")),
		Format:    FormatText,
	}

	if strings.EqualFold(values.Get("format"), string(FormatJSON)) {
		q.Format = FormatJSON
	}

	for _, code := range strings.Split(values.Get("train"), ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || !supported(code) {
			continue
		}
		if q.Routes == nil {
			q.Routes = make(map[string]bool)
		}
		q.Routes[code] = true
	}

	return q
}

func parseDirection(s string) feeds.Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uptown", "northbound", "north":
		return feeds.Northbound
	case "downtown", "southbound", "south":
		return feeds.Southbound
	}
	return ""
}
