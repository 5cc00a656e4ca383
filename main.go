package main

import (
	"fmt"
	"os"

	configfile "github.com/brandforge-labs/brandforge-cli/internal/adapters/driven/config/file"
	"github.com/brandforge-labs/brandforge-cli/internal/adapters/driven/sheets"
	"github.com/brandforge-labs/brandforge-cli/internal/adapters/driven/storage/memory"
	"github.com/brandforge-labs/brandforge-cli/internal/adapters/driven/storage/sqlite"
	"github.com/brandforge-labs/brandforge-cli/internal/adapters/driven/webhook"
	"github.com/brandforge-labs/brandforge-cli/internal/adapters/driving/cli"
	"github.com/brandforge-labs/brandforge-cli/internal/core/services"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Driven adapters. Empty dirs mean the defaults under ~/.brandforge.
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Endpoint and tab edits land mid-session, mid-poll included.
	stopWatch, err := config.Watch(func() {
		logger.Info("configuration reloaded from %s", config.Path())
	})
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer stopWatch()

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	sheetReader := sheets.NewClient(config.ReportTabs())
	hooks := webhook.NewClient()

	brandCache := memory.NewBrandCache()
	ideaCache := memory.NewIdeaCache()

	// Core services.
	auth := services.NewAuth(store.UserStore(), store.SessionStore(), hooks, config, store.AuditLog())
	directory := services.NewDirectory(sheetReader, config, store.SessionStore(), brandCache, ideaCache)
	studio := services.NewStudio(sheetReader, hooks, config, store.SessionStore(),
		brandCache, ideaCache, store.AuditLog(), services.NewSupervisor(), services.Timing{})
	intelligence := services.NewIntelligence(sheetReader, store.AuditLog())

	cli.Setup(auth, directory, studio, intelligence, config)
	return cli.Execute()
}
