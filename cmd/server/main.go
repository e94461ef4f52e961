package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/csg33k/employee-console/internal/adapters/pdf"
	"github.com/csg33k/employee-console/internal/adapters/restclient"
	"github.com/csg33k/employee-console/internal/config"
	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/handlers"
)

func main() {
	cfg, err := config.Load(config.EffectivePath(""))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.Default()
	api := restclient.New(cfg.API.BaseURL,
		restclient.WithTimeout(cfg.API.Timeout),
		restclient.WithLogger(logger))
	ctrl := console.NewController(api, console.NewNotifier(cfg.Status.TTL, nil, logger), logger)

	// A backend that is down at startup is reported in the status area; the
	// page still serves and Reload can be retried.
	if err := ctrl.Reload(context.Background()); err != nil {
		slog.Warn("initial load failed", "api", cfg.API.BaseURL, "err", err)
	}

	h := handlers.New(ctrl, &pdf.Exporter{}, logger)

	log.Printf("Employee console running on http://localhost%s", cfg.Server.ListenAddr)
	log.Printf("REST backend: %s", cfg.API.BaseURL)
	if err := http.ListenAndServe(cfg.Server.ListenAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
