// Command avicontrol is a terminal client for a poultry-farm admin
// backend: batches, schedules, sales, credits, mortality, and the
// notification feed, all against the backend's REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/app"
	"github.com/jfarias/avicontrol/internal/catalog"
	"github.com/jfarias/avicontrol/internal/config"
	"github.com/jfarias/avicontrol/internal/credential"
	"github.com/jfarias/avicontrol/internal/logging"
	"github.com/jfarias/avicontrol/internal/notify"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath(), "path to the configuration file")
	setToken := flag.String("set-token", "", "store the backend API token in the system keyring and exit")
	clearToken := flag.Bool("clear-token", false, "remove the stored backend API token and exit")
	initConfig := flag.Bool("init-config", false, "write the effective configuration to the config path and exit")
	flag.Parse()

	if *setToken != "" {
		if err := credential.SetAPIToken(*setToken); err != nil {
			fmt.Fprintf(os.Stderr, "storing token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Token stored.")
		return
	}
	if *clearToken {
		if err := credential.DeleteAPIToken(); err != nil {
			fmt.Fprintf(os.Stderr, "clearing token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Token cleared.")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if *initConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configPath)
		return
	}
	if cfg.LogFile == "" {
		cfg.LogFile = logging.DefaultLogPath()
	}
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = defaultSnapshotPath()
	}

	log := logging.New(cfg.LogFile)

	client := api.NewClient(cfg.API.BaseURL, credential.APIToken(), log)

	// The snapshot is an optimization; a failure to open it only costs
	// selector warm-up, never the session.
	var store catalog.Store
	if err := os.MkdirAll(filepath.Dir(cfg.SnapshotPath), 0o755); err != nil {
		log.WithError(err).Warn("creating snapshot directory")
	} else if s, err := catalog.NewSQLiteStore(cfg.SnapshotPath); err != nil {
		log.WithError(err).Warn("opening catalog snapshot")
	} else {
		store = s
		defer s.Close()
	}

	cache := catalog.NewCache(store, log)
	cache.Warm(context.Background())

	interval := time.Duration(cfg.Notify.PollIntervalSec) * time.Second
	recon := notify.New(client, log, interval)

	p := tea.NewProgram(app.New(client, cache, recon), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("ui terminated")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// defaultSnapshotPath returns ~/.config/avicontrol/catalog.db.
func defaultSnapshotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "catalog.db")
	}
	return filepath.Join(home, ".config", "avicontrol", "catalog.db")
}
