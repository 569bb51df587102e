package feeds

import (
	"context"
	"log"
	"sync"
	"time"

	"nexttrain/internal/config"
)

// Aggregator merges arrivals at one station across all configured feeds.
type Aggregator struct {
	fetcher   FeedFetcher
	sources   []config.FeedSource
	stationID string
	routes    map[string]bool
	loc       *time.Location
	now       func() time.Time
}

func NewAggregator(cfg *config.Config, fetcher FeedFetcher) (*Aggregator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	routes := make(map[string]bool, len(cfg.Station.Lines))
	for _, r := range cfg.Station.Lines {
		routes[r] = true
	}

	return &Aggregator{
		fetcher:   fetcher,
		sources:   cfg.Feeds,
		stationID: cfg.Station.StopID,
		routes:    routes,
		loc:       loc,
		now:       time.Now,
	}, nil
}

// SupportsRoute reports whether route is served at the station.
func (a *Aggregator) SupportsRoute(route string) bool {
	return a.routes[route]
}

// GetArrivals fetches every feed once and returns the merged arrivals.
// An empty routes set means all routes served at the station. Feeds that
// fail are logged and left out.
func (a *Aggregator) GetArrivals(ctx context.Context, routes map[string]bool) Result {
	if len(routes) == 0 {
		routes = a.routes
	}
	now := a.now().In(a.loc)

	// one slot per source so the merge order does not depend on which
	// fetch finishes first
	perSource := make([][]Arrival, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src config.FeedSource) {
			defer wg.Done()
			feed, err := a.fetcher.Fetch(ctx, src)
			if err != nil {
				log.Printf("Error fetching feed: %v", err)
				return
			}
			perSource[i] = Extract(feed, a.stationID, routes, now)
		}(i, src)
	}
	wg.Wait()

	var all []Arrival
	for _, list := range perSource {
		all = append(all, list...)
	}
	return NewResult(all)
}
