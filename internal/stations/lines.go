package stations

const feedBaseURL = "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/"

var lineToFeed = makeLineToFeedMap()

// feed group -> path under feedBaseURL
var feedPaths = map[string]string{
	"ACE":     "nyct%2Fgtfs-ace",
	"BDFM":    "nyct%2Fgtfs-bdfm",
	"G":       "nyct%2Fgtfs-g",
	"JZ":      "nyct%2Fgtfs-jz",
	"NQRW":    "nyct%2Fgtfs-nqrw",
	"L":       "nyct%2Fgtfs-l",
	"1234567": "nyct%2Fgtfs",
	"SIR":     "nyct%2Fgtfs-si",
}

// FeedForLine returns the feed group that carries a line's trip updates.
func FeedForLine(line string) (string, bool) {
	feed, ok := lineToFeed[line]
	return feed, ok
}

// FeedSources returns the feed groups serving the given lines, in the order
// the lines are listed. Unknown lines are ignored.
func FeedSources(lines []string) []FeedSource {
	seen := make(map[string]bool)
	var sources []FeedSource
	for _, line := range lines {
		feed, ok := lineToFeed[line]
		if !ok || seen[feed] {
			continue
		}
		seen[feed] = true
		sources = append(sources, FeedSource{
			Name: feed,
			URL:  feedBaseURL + feedPaths[feed],
		})
	}
	return sources
}

func makeLineToFeedMap() map[string]string {
	m := make(map[string]string)

	// L
	m["L"] = "L"

	// G
	m["G"] = "G"

	// ACE
	for _, l := range []string{"A", "C", "E"} {
		m[l] = "ACE"
	}

	// BDFM
	for _, l := range []string{"B", "D", "F", "M"} {
		m[l] = "BDFM"
	}

	// NQRW
	for _, l := range []string{"N", "Q", "R", "W"} {
		m[l] = "NQRW"
	}

	// JZ
	for _, l := range []string{"J", "Z"} {
		m[l] = "JZ"
	}

	// 1-7, S
	for _, l := range []string{"1", "2", "3", "4", "5", "6", "7", "S"} {
		m[l] = "1234567"
	}

	// SIR
	m["SIR"] = "SIR"

	return m
}
