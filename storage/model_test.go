package storage

import (
	"strings"
	"testing"
)

func TestNewModelID(t *testing.T) {
	id := NewModelID()
	if !strings.HasPrefix(id, ModelIDPrefix) {
		t.Errorf("expected %q prefix, got %s", ModelIDPrefix, id)
	}
	if id == NewModelID() {
		t.Error("ids must be unique")
	}

	key, err := ModelKey(id)
	if err != nil {
		t.Fatalf("generated id must yield a valid key: %v", err)
	}
	if strings.Contains(key, ":") {
		t.Errorf("key must not carry the CURIE separator: %s", key)
	}
}

func TestModelKey(t *testing.T) {
	tests := []struct {
		name    string
		modelID string
		want    string
		wantErr bool
	}{
		{
			name:    "prefixed id",
			modelID: "gomodel:5fadbcf000000001",
			want:    "5fadbcf000000001",
		},
		{
			name:    "bare id",
			modelID: "5fadbcf000000001",
			want:    "5fadbcf000000001",
		},
		{
			name:    "empty id",
			modelID: "",
			wantErr: true,
		},
		{
			name:    "prefix only",
			modelID: "gomodel:",
			wantErr: true,
		},
		{
			name:    "extra separator",
			modelID: "gomodel:foo:bar",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModelKey(tt.modelID)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got key %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBucketName(t *testing.T) {
	if BucketModels != "GOCAM_MODELS" {
		t.Errorf("unexpected models bucket: %s", BucketModels)
	}
}
