package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gocamtools/gocam/config"
)

func initCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a gocam project",
		Long: `Init writes a default gocam.yaml project config and creates the
models directory. The user-level config at ~/.config/gocam/config.yaml
is created with defaults if missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return err
			}

			loader := config.NewLoader(nil)
			if err := loader.EnsureUserConfig(); err != nil {
				return fmt.Errorf("create user config: %w", err)
			}

			projectConfig := filepath.Join(root, config.ProjectConfigFile)
			if _, err := os.Stat(projectConfig); err == nil {
				fmt.Printf("Project config already exists: %s\n", projectConfig)
			} else {
				cfg := config.DefaultConfig()
				cfg.Models.Dir = config.DefaultModelsDir
				if err := cfg.SaveToFile(projectConfig); err != nil {
					return fmt.Errorf("write project config: %w", err)
				}
				fmt.Printf("Created %s\n", projectConfig)
			}

			modelsDir := filepath.Join(root, config.DefaultModelsDir)
			if err := os.MkdirAll(modelsDir, 0755); err != nil {
				return fmt.Errorf("create models directory: %w", err)
			}
			fmt.Printf("Models directory: %s\n", modelsDir)

			return nil
		},
	}

	return cmd
}
