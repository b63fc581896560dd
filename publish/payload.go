package publish

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "gocam",
		Category:    "model",
		Version:     "v1",
		Description: "Causal activity model payload for graph ingestion with triples",
		Factory:     func() any { return &ModelPayload{} },
	})
	if err != nil {
		panic("failed to register ModelPayload: " + err.Error())
	}
}

// ModelType is the message type for model entity payloads.
var ModelType = message.Type{Domain: "gocam", Category: "model", Version: "v1"}

// ModelPayload implements message.Payload for model entity ingestion.
type ModelPayload struct {
	EntityID_  string           `json:"id"`
	TripleData []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (p *ModelPayload) EntityID() string          { return p.EntityID_ }
func (p *ModelPayload) Triples() []message.Triple { return p.TripleData }
func (p *ModelPayload) Schema() message.Type      { return ModelType }

func (p *ModelPayload) Validate() error {
	if p.EntityID_ == "" {
		return errors.New("entity ID is required")
	}
	return nil
}

func (p *ModelPayload) MarshalJSON() ([]byte, error) {
	type Alias ModelPayload
	return json.Marshal((*Alias)(p))
}

func (p *ModelPayload) UnmarshalJSON(data []byte) error {
	type Alias ModelPayload
	return json.Unmarshal(data, (*Alias)(p))
}
