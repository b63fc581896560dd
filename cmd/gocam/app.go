package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/gocamtools/gocam/config"
	"github.com/gocamtools/gocam/storage"
)

// App wires the configuration, NATS connection, and model store for
// a single command invocation.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	nc    *natsclient.Client
	store *storage.Store
}

// newApp loads configuration and returns an App without connecting
// to anything. Commands that need NATS call connectNATS or openStore.
func newApp(configPath string) (*App, error) {
	logger := slog.Default()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	} else {
		cfg, err = config.NewLoader(logger).Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	return &App{cfg: cfg, logger: logger}, nil
}

// connectNATS establishes the NATS connection configured in the app
// config. The NATS_URL environment variable takes precedence.
func (a *App) connectNATS(ctx context.Context) error {
	url := a.cfg.NATS.URL
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		url = envURL
	}
	if url == "" {
		return fmt.Errorf("no NATS URL configured: set nats.url in gocam.yaml or the NATS_URL environment variable")
	}

	a.logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(a.cfg.NATS.Name),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return wrapNATSError(err, url)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return wrapNATSError(err, url)
	}

	a.logger.Info("Connected to NATS", "url", url)
	a.nc = client
	return nil
}

// openStore initializes the model store over the current NATS
// connection, connecting first if needed.
func (a *App) openStore(ctx context.Context) error {
	if a.nc == nil {
		if err := a.connectNATS(ctx); err != nil {
			return err
		}
	}

	js, err := a.nc.JetStream()
	if err != nil {
		return fmt.Errorf("get JetStream context: %w", err)
	}

	store, err := storage.NewStore(ctx, js)
	if err != nil {
		return fmt.Errorf("initialize model store: %w", err)
	}
	a.store = store
	return nil
}

// Close releases the NATS connection.
func (a *App) Close(ctx context.Context) {
	if a.nc != nil {
		a.nc.Close(ctx)
		a.nc = nil
	}
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

To start NATS:
  docker compose up -d nats

Or set NATS_URL environment variable to point to your NATS server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
