package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gocamtools/gocam/model"
)

// Format specifies an output serialization format.
type Format string

const (
	// FormatJSON produces JSON document output.
	FormatJSON Format = "json"

	// FormatYAML produces YAML document output.
	FormatYAML Format = "yaml"

	// FormatTurtle produces Turtle (.ttl) RDF output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) RDF output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) RDF output.
	FormatJSONLD Format = "jsonld"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON model document",
	},
	FormatYAML: {
		Name:        FormatYAML,
		MIMEType:    "application/yaml",
		Extension:   ".yaml",
		Description: "YAML model document",
	},
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatForPath resolves a document format from a file extension.
// Only the document formats map to extensions here; RDF output is
// selected explicitly.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("no document format for %q", path)
	}
}

// Marshal serializes a document in the given document format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported document format: %s", format)
	}
}

// Unmarshal parses a document in the given document format.
func Unmarshal(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format: %s", format)
	}
	return &doc, nil
}

// EncodeModel serializes a model directly to a document format.
func EncodeModel(m *model.GOCam, format Format) ([]byte, error) {
	return Marshal(Encode(m), format)
}

// DecodeModel parses and rebuilds a model from serialized document bytes.
func DecodeModel(data []byte, format Format) (*model.GOCam, error) {
	doc, err := Unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	return Decode(doc)
}
