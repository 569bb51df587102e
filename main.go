package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nexttrain/internal/api"
	"nexttrain/internal/config"
	"nexttrain/internal/feeds"
	"nexttrain/internal/speech"
)

var (
	configPath = flag.String("config", "config.yaml", "path to the YAML config file")
	once       = flag.Bool("once", false, "print the next trains once and exit")
)

func main() {
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	aggregator, err := feeds.NewAggregator(cfg, feeds.NewFetcher(cfg.Fetch))
	if err != nil {
		log.Fatalf("Failed to create aggregator: %v", err)
	}

	if *once {
		arrivals := aggregator.GetArrivals(context.Background(), nil)
		fmt.Println(speech.Format(arrivals, "", cfg.Speech.ArrivalsPerDirection))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := api.NewServer(cfg, aggregator)

	go func() {
		log.Printf("Server listening on port %d (station %s)", cfg.Server.Port, cfg.Station.StopID)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// loadConfig falls back to the built-in config when path does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No config at %s, using defaults", path)
		cfg = config.Default()
		return cfg, cfg.Finalize()
	}
	return cfg, err
}
