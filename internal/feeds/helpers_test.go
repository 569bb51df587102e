package feeds

import (
	"testing"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

// testNow is 6:00 PM in New York.
func testNow(t *testing.T) time.Time {
	return time.Date(2026, 10, 19, 18, 0, 0, 0, newYork(t))
}

func at(now time.Time, d time.Duration) *int64 {
	return proto.Int64(now.Add(d).Unix())
}

func stop(stopID string, arrival, departure *int64) *gtfs.TripUpdate_StopTimeUpdate {
	stu := &gtfs.TripUpdate_StopTimeUpdate{StopId: proto.String(stopID)}
	if arrival != nil {
		stu.Arrival = &gtfs.TripUpdate_StopTimeEvent{Time: arrival}
	}
	if departure != nil {
		stu.Departure = &gtfs.TripUpdate_StopTimeEvent{Time: departure}
	}
	return stu
}

func trip(id, route string, stops ...*gtfs.TripUpdate_StopTimeUpdate) *gtfs.FeedEntity {
	return &gtfs.FeedEntity{
		Id: proto.String(id),
		TripUpdate: &gtfs.TripUpdate{
			Trip:           &gtfs.TripDescriptor{RouteId: proto.String(route)},
			StopTimeUpdate: stops,
		},
	}
}

func feedOf(entities ...*gtfs.FeedEntity) *gtfs.FeedMessage {
	return &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(uint64(time.Now().Unix())),
		},
		Entity: entities,
	}
}
