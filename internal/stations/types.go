package stations

type StationInfo struct {
	StopID string   `json:"stop_id" yaml:"stop_id" validate:"required"`
	Name   string   `json:"name" yaml:"name"`
	Lines  []string `json:"lines" yaml:"routes" validate:"min=1,dive,required"`
}

// FeedSource is a feed group and its public endpoint.
type FeedSource struct {
	Name string
	URL  string
}
