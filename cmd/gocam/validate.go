package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gocamtools/gocam/loader"
)

func validateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Validate model documents",
		Long: `Validate loads each document and rebuilds the model, reporting any
structural problems: activities on non-molecular-function terms,
causal edges referencing unknown activities, evidence without
contributors, and malformed documents.

Arguments may be files or directories. With no arguments the
configured models directory is validated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{app.cfg.Models.Dir}
			}

			var paths []string
			for _, arg := range args {
				expanded, err := expandPath(arg)
				if err != nil {
					return err
				}
				paths = append(paths, expanded...)
			}
			if len(paths) == 0 {
				fmt.Println("No model documents found")
				return nil
			}

			failures := 0
			for _, path := range paths {
				m, err := loader.LoadFile(path)
				if err != nil {
					failures++
					fmt.Printf("FAIL %s\n  %v\n", path, err)
					continue
				}
				fmt.Printf("OK   %s (%s: %d activities, %d causal edges)\n",
					path, m.ID, len(m.Activities()), m.EdgeCount())
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failures, len(paths))
			}
			return nil
		},
	}

	return cmd
}

// expandPath turns a file or directory argument into document paths.
func expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return loader.List(path)
	}
	return []string{path}, nil
}
