package main

import (
	"context"
	"log"
	"net/http"

	sqliteadapter "github.com/csg33k/employee-console/internal/adapters/sqlite"
	"github.com/csg33k/employee-console/internal/config"
	"github.com/csg33k/employee-console/internal/restapi"
)

func main() {
	cfg, err := config.Load(config.EffectivePath(""))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, err := sqliteadapter.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()
	if err := repo.Migrate(context.Background()); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	h := restapi.New(repo, nil)

	log.Printf("Employee REST API running on http://localhost%s%s", cfg.API.ListenAddr, restapi.BasePath)
	log.Printf("Database: %s", cfg.Database.Path)
	if err := http.ListenAndServe(cfg.API.ListenAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
