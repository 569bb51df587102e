package feeds

import (
	"math"
	"strings"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

const clockLayout = "3:04 PM"

// Extract returns the arrivals at stationID in feed, in feed order.
// routes == nil disables route filtering. Clock times are rendered in
// now's location.
func Extract(feed *gtfs.FeedMessage, stationID string, routes map[string]bool, now time.Time) []Arrival {
	var arrivals []Arrival
	if feed == nil {
		return arrivals
	}

	for _, entity := range feed.GetEntity() {
		tu := entity.GetTripUpdate()
		if tu == nil {
			continue
		}

		if tu.Trip == nil || tu.Trip.RouteId == nil {
			continue
		}
		route := *tu.Trip.RouteId

		if routes != nil && !routes[route] {
			continue
		}

		for _, stu := range tu.StopTimeUpdate {
			if stu.StopId == nil {
				continue
			}
			stopID := *stu.StopId // e.g. "A24N"
			if !strings.HasPrefix(stopID, stationID) {
				continue
			}

			var epoch int64
			if stu.Arrival != nil && stu.Arrival.Time != nil {
				epoch = *stu.Arrival.Time
			} else if stu.Departure != nil && stu.Departure.Time != nil {
				epoch = *stu.Departure.Time
			} else {
				continue
			}

			at := time.Unix(epoch, 0).In(now.Location())
			minutes := int(math.Floor(at.Sub(now).Minutes()))
			if minutes < 0 {
				continue
			}

			arrivals = append(arrivals, Arrival{
				Route:     route,
				Direction: DirectionOf(stopID),
				Minutes:   minutes,
				Time:      at.Format(clockLayout),
			})
		}
	}

	return arrivals
}
