package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"wellness/internal/config"
	"wellness/internal/metrics"
	"wellness/internal/responder"
	"wellness/internal/server"
)

func main() {
	cfg := config.Load()

	// Optional YAML overrides
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	if yamlCfg != nil {
		yamlCfg.Apply(cfg)
		log.Println("Loaded YAML configuration overrides")
	}

	var src responder.Source
	if cfg.Seed != 0 {
		src = responder.NewSeededSource(cfg.Seed)
		log.Printf("Reply fragments seeded with %d", cfg.Seed)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(responder.New(src), metrics.Init(), prometheus.DefaultGatherer)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
