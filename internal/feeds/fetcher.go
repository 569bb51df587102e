package feeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/protobuf/proto"

	"nexttrain/internal/config"
)

var ErrBadStatus = errors.New("unexpected status code")

// FetchError reports why a feed could not be fetched or decoded.
type FetchError struct {
	Feed string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("feed %s: %v", e.Feed, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

var (
	fetchCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_fetch_total",
		Help: "Number of GTFS-realtime feed fetches by outcome",
	}, []string{"feed", "outcome"})
	fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feed_fetch_duration_seconds",
		Help:    "Time spent fetching and decoding a GTFS-realtime feed",
		Buckets: prometheus.DefBuckets,
	}, []string{"feed"})
)

func init() {
	prometheus.MustRegister(fetchCount, fetchDuration)
}

type FeedFetcher interface {
	Fetch(ctx context.Context, src config.FeedSource) (*gtfs.FeedMessage, error)
}

type Fetcher struct {
	httpClient *http.Client
}

func NewFetcher(cfg config.FetchConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(cfg.APIKey),
		},
	}
}

// Fetch makes a single attempt to download and decode src. Every failure is
// returned as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, src config.FeedSource) (*gtfs.FeedMessage, error) {
	start := time.Now()
	defer func() { fetchDuration.WithLabelValues(src.Name).Observe(time.Since(start).Seconds()) }()

	feed, err := f.fetchOne(ctx, src.URL)
	if err != nil {
		fetchCount.WithLabelValues(src.Name, "error").Inc()
		return nil, &FetchError{Feed: src.Name, Err: err}
	}
	fetchCount.WithLabelValues(src.Name, "ok").Inc()
	return feed, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) (*gtfs.FeedMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %d", ErrBadStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	feed := &gtfs.FeedMessage{}
	if err := proto.Unmarshal(data, feed); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return feed, nil
}

type apiTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.apiKey != "" {
		req = req.Clone(req.Context())
		req.Header.Set("x-api-key", t.apiKey)
	}
	return t.base.RoundTrip(req)
}

func newTransport(apiKey string) http.RoundTripper {
	return &apiTransport{apiKey: apiKey, base: http.DefaultTransport}
}
