package feeds

import (
	"encoding/json"
	"sort"
)

type Direction string

const (
	Northbound Direction = "northbound"
	Southbound Direction = "southbound"
)

// DirectionOf classifies a stop id by its platform suffix. Anything that
// is not "N" is treated as southbound.
func DirectionOf(stopID string) Direction {
	if len(stopID) > 0 && stopID[len(stopID)-1] == 'N' {
		return Northbound
	}
	return Southbound
}

type Arrival struct {
	Route     string    `json:"route"`
	Direction Direction `json:"-"`
	Minutes   int       `json:"minutes"`
	Time      string    `json:"time"` // "6:05 PM"
}

// Result holds upcoming arrivals per direction, soonest first.
type Result struct {
	Northbound []Arrival `json:"northbound"`
	Southbound []Arrival `json:"southbound"`
}

func NewResult(arrivals []Arrival) Result {
	res := Result{
		Northbound: []Arrival{},
		Southbound: []Arrival{},
	}
	for _, arr := range arrivals {
		if arr.Direction == Northbound {
			res.Northbound = append(res.Northbound, arr)
		} else {
			res.Southbound = append(res.Southbound, arr)
		}
	}
	sortByMinutes(res.Northbound)
	sortByMinutes(res.Southbound)
	return res
}

// For returns the arrivals for d. ok is false for an unknown direction.
func (r Result) For(d Direction) (arrivals []Arrival, ok bool) {
	switch d {
	case Northbound:
		return r.Northbound, true
	case Southbound:
		return r.Southbound, true
	}
	return nil, false
}

func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	out := plain(r)
	if out.Northbound == nil {
		out.Northbound = []Arrival{}
	}
	if out.Southbound == nil {
		out.Southbound = []Arrival{}
	}
	return json.Marshal(out)
}

func sortByMinutes(list []Arrival) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Minutes < list[j].Minutes
	})
}
