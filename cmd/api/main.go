package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"dropout-risk-api/internal/infrastructure/config"
	"dropout-risk-api/internal/infrastructure/db"
	httpapi "dropout-risk-api/internal/interface/http"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}
	log.Printf("configuration loaded (HTTP_ADDR=%s)", cfg.HTTP.Addr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Printf("warning: database connection failed, falling back to file knowledge base: %v", err)
		pool = nil
	} else if pool == nil {
		log.Printf("no DB_DSN provided; using file knowledge base (%s, %s)", cfg.Expert.RulesPath, cfg.Expert.FactsPath)
	} else {
		defer pool.Close()
		log.Printf("database connected successfully")
	}

	if pool == nil {
		if _, err := os.Stat(cfg.Expert.RulesPath); err != nil {
			log.Printf("warning: rules file %s not readable: %v", cfg.Expert.RulesPath, err)
		}
		if _, err := os.Stat(cfg.Expert.FactsPath); err != nil {
			log.Printf("warning: facts file %s not readable: %v", cfg.Expert.FactsPath, err)
		}
	}

	apiServer := httpapi.NewServer(cfg, pool)
	addr := cfg.HTTP.Addr
	log.Printf("starting HTTP server on %s", addr)
	if err := http.ListenAndServe(addr, apiServer.Handler()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
