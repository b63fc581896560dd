package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gocamtools/gocam/loader"
	"github.com/gocamtools/gocam/publish"
)

func watchCmd(configPath *string) *cobra.Command {
	var publishChanges bool

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a models directory and validate changes",
		Long: `Watch monitors a models directory for document changes. Each created
or modified document is reloaded and validated; with --publish the
rebuilt model is also published to the graph ingest subject.

Runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			dir := app.cfg.Models.Dir
			if len(args) > 0 {
				dir = args[0]
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if publishChanges {
				if err := app.connectNATS(ctx); err != nil {
					return err
				}
				defer app.Close(ctx)
			}

			watcher, err := loader.NewWatcher(app.cfg.Watch, dir, app.logger)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			if err := watcher.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer watcher.Stop()

			// Seed hashes so startup does not replay unchanged documents.
			paths, err := loader.List(dir)
			if err != nil {
				return err
			}
			for _, path := range paths {
				if content, err := os.ReadFile(path); err == nil {
					rel, err := filepath.Rel(dir, path)
					if err != nil {
						rel = path
					}
					watcher.SetHash(rel, loader.ContentHash(content))
				}
			}

			slog.Info("Watching for model changes", "dir", dir, "documents", len(paths))

			for {
				select {
				case <-ctx.Done():
					slog.Info("Watch stopped", "dropped_events", watcher.DroppedEvents())
					return nil
				case event, ok := <-watcher.Events():
					if !ok {
						return nil
					}
					app.handleWatchEvent(ctx, event, publishChanges)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&publishChanges, "publish", false, "Publish changed models to the graph ingest subject")

	return cmd
}

func (a *App) handleWatchEvent(ctx context.Context, event loader.WatchEvent, publishChanges bool) {
	if event.Operation == loader.WatchOpDelete {
		slog.Info("Model document removed", "path", event.Path)
		return
	}

	m, err := loader.LoadFile(event.AbsPath)
	if err != nil {
		slog.Error("Model document invalid", "path", event.Path, "error", err)
		return
	}

	slog.Info("Model document valid",
		"path", event.Path,
		"model", m.ID,
		"activities", len(m.Activities()),
		"edges", m.EdgeCount())

	if publishChanges {
		if err := publish.PublishModel(ctx, a.nc, m); err != nil {
			slog.Error("Publish failed", "model", m.ID, "error", err)
			return
		}
		slog.Info("Published model", "model", m.ID)
	}
}
