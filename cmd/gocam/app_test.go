package main

import (
	"testing"

	"github.com/gocamtools/gocam/export"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     export.Format
		wantErr  bool
	}{
		{name: "explicit json", input: "json", fallback: "yaml", want: export.FormatJSON},
		{name: "fallback used when empty", input: "", fallback: "yaml", want: export.FormatYAML},
		{name: "turtle alias", input: "ttl", fallback: "json", want: export.FormatTurtle},
		{name: "ntriples alias", input: "nt", fallback: "json", want: export.FormatNTriples},
		{name: "jsonld hyphenated", input: "json-ld", fallback: "json", want: export.FormatJSONLD},
		{name: "case insensitive", input: "TURTLE", fallback: "json", want: export.FormatTurtle},
		{name: "unknown format", input: "xml", fallback: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.input, tt.fallback)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("resolveFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := rootCmd()

	for _, name := range []string{"version", "init", "validate", "export", "list", "watch", "publish", "store"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
