// ABOUTME: Serve command starts the HTTP API host
// ABOUTME: Thin wrapper wiring config, catalog, sessions and the HTTP server
package commands

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/eagles/winechat/internal/catalog"
	"github.com/eagles/winechat/internal/config"
	"github.com/eagles/winechat/internal/server"
	"github.com/eagles/winechat/internal/session"
	"github.com/joho/godotenv"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Exposes the conversation endpoint used by the bundled chat page:

  POST /conversation?user_id=<id>   {"message": "..."}
  POST /reset?user_id=<id>
  GET  /                            static chat page

Each user_id gets an independent conversation; the catalog is loaded
once and shared read-only.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides WINECHAT_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if datasetFlag != "" {
		cfg.DatasetPath = datasetFlag
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	cat, err := catalog.Load(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("loading catalog %s: %w", cfg.DatasetPath, err)
	}

	store, err := session.NewStore(cat, cfg.MaxResults)
	if err != nil {
		return fmt.Errorf("creating session store: %w", err)
	}

	srv := server.New(store, cfg.StaticDir)

	if !quiet {
		log.Printf("Wine chat server listening on %s (%d catalog records)", cfg.ListenAddr, cat.Len())
	}
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
