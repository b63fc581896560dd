// Package loader reads model documents from disk: single files, directory
// trees, and a file watcher that picks up edits as they land.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gocamtools/gocam/export"
	"github.com/gocamtools/gocam/model"
)

// documentGlob matches model document files under a directory tree.
const documentGlob = "**/*.{json,yaml,yml}"

// LoadFile reads and rebuilds a model from a document file. The format is
// resolved from the file extension.
func LoadFile(path string) (*model.GOCam, error) {
	format, err := export.FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	m, err := export.DecodeModel(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// LoadDir loads every model document under a directory tree, in
// deterministic path order. A single bad document fails the whole load.
func LoadDir(dir string) ([]*model.GOCam, error) {
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}

	models := make([]*model.GOCam, 0, len(paths))
	for _, path := range paths {
		m, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// List returns the sorted paths of all model documents under a directory
// tree.
func List(dir string) ([]string, error) {
	// Use doublestar for ** support
	paths, err := doublestar.FilepathGlob(filepath.Join(dir, documentGlob))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// WriteFile encodes a model and writes it next to its siblings. The format
// is resolved from the file extension.
func WriteFile(path string, m *model.GOCam) error {
	format, err := export.FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := export.EncodeModel(m, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.ID, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
