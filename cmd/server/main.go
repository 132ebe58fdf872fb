package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"reprocheck/internal/audit"
	"reprocheck/internal/config"
	"reprocheck/internal/metrics"
	"reprocheck/internal/server"
)

func main() {
	cfg := config.Load()

	rules, err := config.LoadRulesConfig()
	if err != nil {
		log.Fatalf("Failed to load rules config: %v", err)
	}
	if rules != nil {
		log.Println("Loaded rules overrides from rules file")
	}

	metrics.Init()

	svc := audit.NewService(cfg, rules)

	srv := server.New(cfg)
	srv.RegisterRoutes(svc)

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
