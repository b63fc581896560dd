package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gocamtools/gocam/loader"
)

func listCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List model documents in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			dir := app.cfg.Models.Dir
			if len(args) > 0 {
				dir = args[0]
			}

			models, err := loader.LoadDir(dir)
			if err != nil {
				return err
			}
			if len(models) == 0 {
				fmt.Printf("No model documents under %s\n", dir)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tACTIVITIES\tEDGES\tMODIFIED")
			for _, m := range models {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					m.ID, m.Title, len(m.Activities()), m.EdgeCount(),
					m.ModifiedDate.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	return cmd
}
