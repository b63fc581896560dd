package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gocamtools/gocam/export"
	"github.com/gocamtools/gocam/loader"
)

func storeCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage models in the NATS-backed store",
	}

	cmd.AddCommand(
		storePutCmd(configPath),
		storeGetCmd(configPath),
		storeListCmd(configPath),
		storeDeleteCmd(configPath),
	)

	return cmd
}

func storePutCmd(configPath *string) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "put <model-file>",
		Short: "Store a model document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			m, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.openStore(ctx); err != nil {
				return err
			}
			defer app.Close(ctx)

			if create {
				if err := app.store.Create(ctx, export.Encode(m)); err != nil {
					return err
				}
			} else {
				if err := app.store.PutModel(ctx, m); err != nil {
					return err
				}
			}

			fmt.Printf("Stored %s\n", m.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "Fail if the model id already exists")

	return cmd
}

func storeGetCmd(configPath *string) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "get <model-id>",
		Short: "Retrieve a stored model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			format, err := resolveFormat(formatName, app.cfg.Export.Format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.openStore(ctx); err != nil {
				return err
			}
			defer app.Close(ctx)

			m, err := app.store.GetModel(ctx, args[0])
			if err != nil {
				return err
			}

			var output []byte
			switch format {
			case export.FormatJSON, export.FormatYAML:
				output, err = export.EncodeModel(m, format)
			default:
				var s string
				s, err = export.NewRDFExporter().Export(m, format)
				output = []byte(s)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format (json, yaml, turtle, ntriples, jsonld)")

	return cmd
}

func storeListCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.openStore(ctx); err != nil {
				return err
			}
			defer app.Close(ctx)

			docs, err := app.store.List(ctx)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println("No stored models")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tACTIVITIES\tEDGES")
			for _, doc := range docs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
					doc.ID, doc.Title, len(doc.Activities), len(doc.Edges))
			}
			return w.Flush()
		},
	}

	return cmd
}

func storeDeleteCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <model-id>",
		Short: "Delete a stored model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.openStore(ctx); err != nil {
				return err
			}
			defer app.Close(ctx)

			if err := app.store.Delete(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}

	return cmd
}
