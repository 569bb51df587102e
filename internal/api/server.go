package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nexttrain/internal/config"
	"nexttrain/internal/feeds"
	"nexttrain/internal/speech"
)

var requestDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
	Name: "req_next_train",
	Help: "Time spent serving next-train requests",
}, []string{"format"})

func init() {
	prometheus.MustRegister(requestDuration)
}

type ArrivalService interface {
	GetArrivals(ctx context.Context, routes map[string]bool) feeds.Result
	SupportsRoute(route string) bool
}

func NewServer(cfg *config.Config, svc ArrivalService) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           NewRouter(cfg, svc),
		ReadHeaderTimeout: 5 * time.Second,
		// feeds are fetched within the request
		WriteTimeout: cfg.Fetch.Timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func NewRouter(cfg *config.Config, svc ArrivalService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/next-train", nextTrain(svc, cfg.Speech.ArrivalsPerDirection))

	r.Get("/station", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cfg.Station.StationInfo)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func nextTrain(svc ArrivalService, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		q := ParseQuery(r.URL.Query(), svc.SupportsRoute)
		defer func() {
			requestDuration.WithLabelValues(string(q.Format)).Observe(time.Since(start).Seconds())
		}()

		arrivals := svc.GetArrivals(r.Context(), q.Routes)

		if q.Format == FormatJSON {
			writeJSON(w, arrivals)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(speech.Format(arrivals, q.Direction, limit)))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
