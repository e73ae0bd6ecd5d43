// ABOUTME: Main entry point for the standalone wine chat HTTP server
// ABOUTME: Loads the catalog once and serves one engine per user session
package main

import (
	"log"
	"net/http"

	"github.com/eagles/winechat/internal/catalog"
	"github.com/eagles/winechat/internal/config"
	"github.com/eagles/winechat/internal/server"
	"github.com/eagles/winechat/internal/session"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the catalog once; it is shared read-only across all sessions
	cat, err := catalog.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("Failed to load catalog from %s: %v", cfg.DatasetPath, err)
	}
	log.Printf("Loaded %d catalog records from %s", cat.Len(), cfg.DatasetPath)

	store, err := session.NewStore(cat, cfg.MaxResults)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	srv := server.New(store, cfg.StaticDir)

	log.Printf("Wine chat server listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
