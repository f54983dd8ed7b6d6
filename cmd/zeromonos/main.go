package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"zeromonos/internal/api"
	"zeromonos/internal/catalog"
	"zeromonos/internal/config"
	"zeromonos/internal/eventbus"
	"zeromonos/internal/ui"
)

func main() {
	var (
		configPath string
		apiURL     string
		logPath    string
		logLevel   string
	)
	flag.StringVarP(&configPath, "config", "c", "", "Path to the config file")
	flag.StringVar(&apiURL, "api", "", "Base URL of the booking API")
	flag.StringVar(&logPath, "log-file", "", "Where to write the log")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg := loadOrCreateConfig(configSvc)

	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if logPath != "" {
		cfg.Log.File = logPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	// Set up logging. The terminal belongs to the UI, so without a log file
	// nothing is logged at all.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.SetReportTimestamp(true)
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("unknown log level, keeping info", "level", cfg.Log.Level)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize services
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout())
	loader := catalog.NewLoader(ctx, bus, client, cfg.Catalog.UseFallback)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, client)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "event", e.Type())
		}
	}
	bus.Subscribe(eventbus.EventMunicipalitiesLoaded, forward)
	bus.Subscribe(eventbus.EventMunicipalitiesLoadFailed, forward)
	bus.Subscribe(eventbus.EventError, forward)

	bus.Subscribe(eventbus.EventMunicipalityCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MunicipalityCommittedEvent); ok {
			log.Debug("municipality committed", "name", event.Name)
		}
	})
	bus.Subscribe(eventbus.EventBookingCreated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.BookingCreatedEvent); ok {
			log.Info("booking token issued", "token", event.Booking.Token,
				"municipality", event.Booking.MunicipalityName, "date", event.Booking.RequestedDate)
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Initial load
	go func() {
		if err := loader.Load(ctx); err != nil && !errors.Is(err, catalog.ErrLoadInProgress) {
			log.Debug("initial load failed", "err", err)
		}
	}()

	// Run the UI
	log.Info("starting", "api", cfg.API.BaseURL, "config", configSvc.Path())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("error running program", "err", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("exited normally")

	// Cleanup
	cancel()
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	if _, err := os.Stat(configSvc.Path()); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write default config: %v\n", err)
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}
