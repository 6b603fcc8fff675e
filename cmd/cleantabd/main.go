package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"cleantab/adapters/api"
	"cleantab/adapters/ingest"
	"cleantab/adapters/postgres"
	"cleantab/domain/core"
	"cleantab/internal"
	"cleantab/internal/config"
	"cleantab/internal/profiling"
)

func main() {
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config: %v", err)
		os.Exit(1)
	}

	file := flag.String("file", "", "dataset to profile and serve (csv or xlsx)")
	flag.Parse()
	if *file == "" {
		logger.Error("-file is required")
		os.Exit(2)
	}

	tbl, err := ingest.NewDataReader(*file).Read()
	if err != nil {
		logger.Error("ingest %s: %v", *file, err)
		os.Exit(1)
	}

	p, err := profiling.New(tbl, cfg.Profile.MaxCategories)
	if err != nil {
		logger.Error("profile %s: %v", *file, err)
		os.Exit(1)
	}
	name := filepath.Base(*file)
	logger.Info("profiled %s: %d rows x %d columns", name, tbl.NumRows(), tbl.NumCols())

	if cfg.Database.URL != "" {
		if err := storeSnapshot(cfg.Database.URL, name, p); err != nil {
			logger.Error("profile store: %v", err)
			os.Exit(1)
		}
		logger.Info("snapshot stored")
	}

	server := api.NewServer(p, name, logger)
	addr := ":" + cfg.Server.Port
	logger.Info("listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		logger.Error("server: %v", err)
		os.Exit(1)
	}
}

func storeSnapshot(url, name string, p *profiling.TableProfile) error {
	db, err := postgres.Connect(url)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}
	store := postgres.NewProfileRepository(db)
	return store.SaveSnapshot(ctx, core.DatasetID(core.NewID()), name, p.Snapshot())
}
