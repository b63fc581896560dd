package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gocamtools/gocam/loader"
	"github.com/gocamtools/gocam/model"
	"github.com/gocamtools/gocam/publish"
)

func publishCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [path...]",
		Short: "Publish models to the graph ingest stream",
		Long: `Publish loads model documents and publishes each model's graph
entities (model, activities, evidenced associations) to the NATS
graph ingest subject.

Arguments may be files or directories. With no arguments the
configured models directory is published.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{app.cfg.Models.Dir}
			}

			var models []*model.GOCam
			for _, arg := range args {
				loaded, err := loadArg(arg)
				if err != nil {
					return err
				}
				models = append(models, loaded...)
			}
			if len(models) == 0 {
				fmt.Println("No model documents found")
				return nil
			}

			ctx := cmd.Context()
			if err := app.connectNATS(ctx); err != nil {
				return err
			}
			defer app.Close(ctx)

			for _, m := range models {
				if err := publish.PublishModel(ctx, app.nc, m); err != nil {
					return fmt.Errorf("publish %s: %w", m.ID, err)
				}
				fmt.Printf("Published %s (%d entities)\n", m.ID, len(publish.ModelEntities(m)))
			}
			return nil
		},
	}

	return cmd
}

// loadArg loads models from a file or directory argument.
func loadArg(path string) ([]*model.GOCam, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return loader.LoadDir(path)
	}
	m, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []*model.GOCam{m}, nil
}
