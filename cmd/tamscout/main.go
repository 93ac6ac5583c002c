package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/avtools/tamscout/internal/api"
	"github.com/avtools/tamscout/internal/config"
	"github.com/avtools/tamscout/internal/db"
	"github.com/avtools/tamscout/internal/models"
	"github.com/avtools/tamscout/internal/paging"
	"github.com/avtools/tamscout/internal/ui"
)

const defaultConfigPath = "tamscout.yaml"

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	configPath := flag.String("config", defaultConfigPath, "Path to YAML config file")
	urlFlag := flag.String("url", "", "TAMS store URL (overrides config)")
	tokenFlag := flag.String("token", "", "Bearer token (overrides config)")
	dbFlag := flag.String("db", "", "Path to event history database (overrides config)")
	listSources := flag.Bool("list-sources", false, "Print one page of sources and exit")
	limitFlag := flag.Int("limit", 0, "Page size for -list-sources")
	ingestFlag := flag.String("ingest", "", "Load events from a JSON file into the history and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Config error: %v", err))
		os.Exit(1)
	}
	if *urlFlag != "" {
		cfg.API.BaseURL = *urlFlag
	}
	if *tokenFlag != "" {
		cfg.API.Token = *tokenFlag
	}
	if *dbFlag != "" {
		cfg.Store.HistoryPath = *dbFlag
	}

	logger := newLogger(cfg.Logging)

	database, err := db.New(cfg.Store.HistoryPath)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to open event history: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	// One-shot event ingestion does not need a store connection
	if *ingestFlag != "" {
		if err := ingestEvents(database, *ingestFlag); err != nil {
			ui.PrintError(fmt.Sprintf("Ingest failed: %v", err))
			os.Exit(1)
		}
		return
	}

	// Resolve the store endpoint, prompting with recent ones if unset
	if cfg.API.BaseURL == "" {
		var recent []string
		if endpoints, err := database.RecentEndpoints(5); err == nil {
			for _, e := range endpoints {
				recent = append(recent, e.URL)
			}
		}
		endpoint, err := ui.PromptForEndpoint(recent)
		if err != nil {
			ui.PrintError(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		cfg.API.BaseURL = endpoint
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Token, logger)
	client.SetTimeout(cfg.API.Timeout)

	// Connectivity check before entering the dashboard
	var (
		info    *models.ServiceInfo
		infoErr error
	)
	err = spinner.New().
		Title("Connecting to store...").
		Action(func() {
			info, infoErr = client.GetServiceInfo()
		}).
		Run()
	if err != nil {
		ui.PrintError(fmt.Sprintf("Startup failed: %v", err))
		os.Exit(1)
	}
	if infoErr != nil {
		ui.PrintError(fmt.Sprintf("Cannot reach store at %s: %v", cfg.API.BaseURL, infoErr))
		os.Exit(1)
	}

	label := ""
	if info != nil {
		label = info.Name
	}
	if err := database.TouchEndpoint(cfg.API.BaseURL, label); err != nil {
		logger.Warn("Failed to record endpoint", "error", err)
	}
	if err := database.PruneEvents(cfg.Store.MaxEvents); err != nil {
		logger.Warn("Failed to prune event history", "error", err)
	}

	if *listSources {
		if err := printSources(client, *limitFlag); err != nil {
			ui.PrintError(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		return
	}

	if err := menuLoop(client, database, logger, info, cfg.API.BaseURL); err != nil {
		ui.PrintError(fmt.Sprintf("%v", err))
		os.Exit(1)
	}
}

// newLogger builds the application logger from config.
func newLogger(cfg config.LoggingConfig) *log.Logger {
	writer := os.Stderr
	if cfg.File != "" {
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			writer = f
		}
	}

	logger := log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "tamscout",
	})
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// menuLoop runs the main menu until the user quits.
func menuLoop(client *api.Client, database *db.DB, logger *log.Logger, info *models.ServiceInfo, storeURL string) error {
	for {
		choice, err := ui.RunMainMenu(info, storeURL)
		if err != nil {
			return err
		}

		switch choice {
		case ui.MenuSources:
			err = ui.RunSourceBrowser(client, logger)
		case ui.MenuFlows:
			err = ui.RunFlowBrowser(client, logger, nil)
		case ui.MenuWebhooks:
			err = ui.RunWebhookManager(client, logger)
		case ui.MenuEvents:
			err = ui.RunEventLog(database, logger)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// printSources fetches one page of sources and prints it, with the cursor to
// resume from if the listing continues.
func printSources(client *api.Client, limit int) error {
	page, err := client.ListSources(paging.FilterOptions{Limit: limit})
	if err != nil {
		return err
	}

	for _, s := range page.Sources {
		label := s.Label
		if label == "" {
			label = "-"
		}
		fmt.Printf("%s  %-28s %s\n", s.ID, s.Format, label)
	}
	if cursor := page.Page.NextCursor(); cursor != "" {
		ui.PrintInfo(fmt.Sprintf("More available; next cursor: %s", cursor))
	}
	return nil
}

// ingestEvents loads wire events from a JSON file into the local history.
func ingestEvents(database *db.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read events file: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("failed to parse events file: %w", err)
	}

	records := make([]models.EventRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, models.NewEventRecord(ev))
	}
	if err := database.InsertEvents(records); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Ingested %d events from %s", len(records), path))
	return nil
}
