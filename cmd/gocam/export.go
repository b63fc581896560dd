package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gocamtools/gocam/export"
	"github.com/gocamtools/gocam/loader"
)

func exportCmd(configPath *string) *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export <model-file>",
		Short: "Export a model document to another format",
		Long: `Export loads a model document (JSON or YAML) and writes it in the
requested format. Document formats round-trip; RDF formats (turtle,
ntriples, jsonld) carry the ontology-facing structure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*configPath)
			if err != nil {
				return err
			}

			format, err := resolveFormat(formatName, app.cfg.Export.Format)
			if err != nil {
				return err
			}

			m, err := loader.LoadFile(args[0])
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
				return fmt.Errorf("export %s: %w", m.ID, err)
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, output, 0644); err != nil {
					return fmt.Errorf("write %s: %w", outPath, err)
				}
				fmt.Printf("Exported %s to %s (%s)\n", m.ID, outPath, format)
				return nil
			}

			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format (json, yaml, turtle, ntriples, jsonld)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")

	return cmd
}

// resolveFormat picks the explicit format if given, falling back to the
// configured default.
func resolveFormat(name, fallback string) (export.Format, error) {
	if name == "" {
		name = fallback
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return export.FormatJSON, nil
	case "yaml", "yml":
		return export.FormatYAML, nil
	case "turtle", "ttl":
		return export.FormatTurtle, nil
	case "ntriples", "nt":
		return export.FormatNTriples, nil
	case "jsonld", "json-ld":
		return export.FormatJSONLD, nil
	default:
		return "", fmt.Errorf("unknown format: %s (supported: json, yaml, turtle, ntriples, jsonld)", name)
	}
}
