// Package storage persists model documents in NATS KV.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/gocamtools/gocam/export"
	"github.com/gocamtools/gocam/model"
)

// BucketModels is the KV bucket holding model documents.
const BucketModels = "GOCAM_MODELS"

// ModelIDPrefix is the CURIE prefix of model identifiers.
const ModelIDPrefix = "gomodel:"

// NewModelID generates a fresh model identifier.
func NewModelID() string {
	return ModelIDPrefix + uuid.New().String()
}

// ModelKey converts a model id to its KV key. NATS KV keys cannot carry
// the CURIE separator, so the prefix is stripped; documents keep their
// full id internally.
func ModelKey(modelID string) (string, error) {
	key := strings.TrimPrefix(modelID, ModelIDPrefix)
	if key == "" {
		return "", fmt.Errorf("invalid model id: %q", modelID)
	}
	if strings.Contains(key, ":") {
		return "", fmt.Errorf("invalid model id: %q", modelID)
	}
	return key, nil
}

// Store provides model document storage backed by NATS KV.
type Store struct {
	models jetstream.KeyValue
}

// NewStore creates a Store with the given JetStream context, creating
// the models bucket if it doesn't exist.
func NewStore(ctx context.Context, js jetstream.JetStream) (*Store, error) {
	models, err := getOrCreateBucket(ctx, js, BucketModels)
	if err != nil {
		return nil, fmt.Errorf("create models bucket: %w", err)
	}
	return &Store{models: models}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: "GO-CAM model document storage",
		History:     5, // Keep last 5 revisions
	})
}

// Create stores a new model document. Returns ErrExists when the model
// id is already present; nothing is overwritten.
func (s *Store) Create(ctx context.Context, doc *export.Document) error {
	key, err := ModelKey(doc.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal model %s: %w", doc.ID, err)
	}

	if _, err := s.models.Create(ctx, key, data); err != nil {
		if isExists(err) {
			return ErrExists
		}
		return fmt.Errorf("store model %s: %w", doc.ID, err)
	}
	return nil
}

// Get retrieves a model document by model id. Returns ErrNotFound when
// the id is absent.
func (s *Store) Get(ctx context.Context, modelID string) (*export.Document, error) {
	key, err := ModelKey(modelID)
	if err != nil {
		return nil, err
	}

	entry, err := s.models.Get(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get model %s: %w", modelID, err)
	}

	var doc export.Document
	if err := json.Unmarshal(entry.Value(), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal model %s: %w", modelID, err)
	}
	return &doc, nil
}

// GetModel retrieves and rebuilds a full model by id.
func (s *Store) GetModel(ctx context.Context, modelID string) (*model.GOCam, error) {
	doc, err := s.Get(ctx, modelID)
	if err != nil {
		return nil, err
	}
	return export.Decode(doc)
}

// Put stores a model document, overwriting any existing revision.
func (s *Store) Put(ctx context.Context, doc *export.Document) error {
	key, err := ModelKey(doc.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal model %s: %w", doc.ID, err)
	}

	if _, err := s.models.Put(ctx, key, data); err != nil {
		return fmt.Errorf("update model %s: %w", doc.ID, err)
	}
	return nil
}

// PutModel encodes and stores a full model.
func (s *Store) PutModel(ctx context.Context, m *model.GOCam) error {
	return s.Put(ctx, export.Encode(m))
}

// Delete removes a model document. Returns ErrNotFound when the id is
// absent.
func (s *Store) Delete(ctx context.Context, modelID string) error {
	key, err := ModelKey(modelID)
	if err != nil {
		return err
	}

	if _, err := s.models.Get(ctx, key); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get model %s: %w", modelID, err)
	}

	if err := s.models.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete model %s: %w", modelID, err)
	}
	return nil
}

// List returns all stored model documents.
func (s *Store) List(ctx context.Context) ([]*export.Document, error) {
	keys, err := s.models.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list model keys: %w", err)
	}

	docs := make([]*export.Document, 0, len(keys))
	for _, key := range keys {
		entry, err := s.models.Get(ctx, key)
		if err != nil {
			continue // Skip entries that fail to load
		}
		var doc export.Document
		if err := json.Unmarshal(entry.Value(), &doc); err != nil {
			continue
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key not found")
}

// isExists checks if an error indicates a key already exists.
func isExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key exists")
}
