package loader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 100
)

// WatchConfig configures model document watching.
type WatchConfig struct {
	// DebounceDelay is how long to wait for more changes before processing.
	DebounceDelay string `yaml:"debounce_delay"`

	// ExcludeDirs lists directory names to skip.
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// DefaultWatchConfig returns default watch configuration.
func DefaultWatchConfig() WatchConfig {
	return WatchConfig{
		DebounceDelay: "500ms",
		ExcludeDirs:   []string{".git"},
	}
}

// GetDebounceDelay returns the debounce delay as a duration.
func (c *WatchConfig) GetDebounceDelay() time.Duration {
	if c.DebounceDelay == "" {
		return 500 * time.Millisecond
	}
	d, err := time.ParseDuration(c.DebounceDelay)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// WatchEvent represents a model document change.
type WatchEvent struct {
	// Path is the file path relative to the models directory.
	Path string

	// AbsPath is the absolute file path.
	AbsPath string

	// Operation is the type of change.
	Operation WatchOperation
}

// WatchOperation indicates the type of file operation.
type WatchOperation string

// WatchOpCreate, WatchOpModify, and WatchOpDelete enumerate the watch
// operation types.
const (
	WatchOpCreate WatchOperation = "create"
	WatchOpModify WatchOperation = "modify"
	WatchOpDelete WatchOperation = "delete"
)

// documentExtensions are the file extensions treated as model documents.
var documentExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Watcher watches a models directory and emits document change events.
type Watcher struct {
	config    WatchConfig
	modelsDir string
	watcher   *fsnotify.Watcher
	logger    *slog.Logger
	excludes  map[string]bool

	// Debouncing: collect changes before processing
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Hash-based change detection
	hashMu sync.RWMutex
	hashes map[string]string

	// Output channel
	events chan WatchEvent

	// Metrics
	droppedEvents atomic.Int64
}

// NewWatcher creates a model document watcher.
func NewWatcher(config WatchConfig, modelsDir string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	excludes := make(map[string]bool)
	if len(config.ExcludeDirs) == 0 {
		excludes[".git"] = true
	} else {
		for _, dir := range config.ExcludeDirs {
			excludes[dir] = true
		}
	}

	return &Watcher{
		config:    config,
		modelsDir: modelsDir,
		watcher:   fsw,
		logger:    logger,
		excludes:  excludes,
		pending:   make(map[string]fsnotify.Op),
		hashes:    make(map[string]string),
		events:    make(chan WatchEvent, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start begins watching the models directory for changes.
func (w *Watcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.modelsDir, 0755); err != nil {
		return err
	}

	if err := w.addWatchesRecursive(w.modelsDir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Model watcher started",
		"models_dir", w.modelsDir,
		"debounce", w.config.GetDebounceDelay())

	return nil
}

// Stop stops the watcher.
// The events channel is closed by processEvents when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// SetHash records the hash for a file (used during initial loading).
func (w *Watcher) SetHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

// GetHash returns the recorded hash for a file.
func (w *Watcher) GetHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

// DroppedEvents returns the number of events dropped due to channel
// overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

// ContentHash returns the hex SHA-256 of document bytes.
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// addWatchesRecursive adds watches to all directories.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if w.excludes[base] || (strings.HasPrefix(base, ".") && base != ".") {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.config.GetDebounceDelay())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent processes a single fsnotify event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	ext := strings.ToLower(filepath.Ext(path))
	if !documentExtensions[ext] {
		// But handle directory creation (for new watches)
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}

	relPath, _ := filepath.Rel(w.modelsDir, path)
	for excludeDir := range w.excludes {
		if strings.Contains(relPath, excludeDir+string(filepath.Separator)) {
			return
		}
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Model document change detected",
		"path", relPath,
		"op", event.Op.String())
}

// handleNewDirectory adds a watch to a newly created directory.
func (w *Watcher) handleNewDirectory(path string) {
	base := filepath.Base(path)
	if w.excludes[base] || strings.HasPrefix(base, ".") {
		return
	}

	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
	} else {
		w.logger.Debug("Added watch for new directory", "path", path)
	}
}

// flushPending processes accumulated changes.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}

	toProcess := make(map[string]fsnotify.Op)
	for k, v := range w.pending {
		toProcess[k] = v
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		relPath, _ := filepath.Rel(w.modelsDir, path)
		event := WatchEvent{
			Path:    relPath,
			AbsPath: path,
		}

		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			event.Operation = WatchOpDelete

			w.hashMu.Lock()
			delete(w.hashes, relPath)
			w.hashMu.Unlock()

			w.sendEvent(event)
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			event.Operation = WatchOpDelete
			w.sendEvent(event)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			w.logger.Warn("Failed to read document for hash check",
				"path", relPath,
				"error", err)
			continue
		}

		newHash := ContentHash(content)

		oldHash, hadHash := w.GetHash(relPath)
		if hadHash && oldHash == newHash {
			// Content unchanged, skip
			continue
		}

		w.SetHash(relPath, newHash)

		if op.Has(fsnotify.Create) || !hadHash {
			event.Operation = WatchOpCreate
		} else {
			event.Operation = WatchOpModify
		}

		w.sendEvent(event)
	}
}

// sendEvent sends an event to the output channel.
func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			"path", event.Path,
			"op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}
