// Package publish streams models into the knowledge graph as triple
// entities over NATS.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/gocamtools/gocam/model"
	gocamvocab "github.com/gocamtools/gocam/vocabulary/gocam"
)

// GraphIngestSubject is the subject graph ingestion listens on.
const GraphIngestSubject = "graph.ingest.entity"

// tripleSource tags published triples with their producer.
const tripleSource = "gocam.publish"

// EntityIngestMessage is the message format for graph ingestion.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Entity is one graph entity ready to publish: an id plus its triples.
type Entity struct {
	ID      string
	Triples []message.Triple
}

// ModelEntityID generates a consistent entity ID for a model.
// Format: gocam.local.model.model.<local-id>
func ModelEntityID(modelID string) string {
	return "gocam.local.model.model." + localID(modelID)
}

// ActivityEntityID generates a consistent entity ID for an activity
// within a model.
// Format: gocam.local.model.activity.<local-id>-<term>
func ActivityEntityID(modelID, termCURIE string) string {
	return fmt.Sprintf("gocam.local.model.activity.%s-%s", localID(modelID), localID(termCURIE))
}

// AssociationEntityID generates a consistent entity ID for an evidenced
// association instance.
// Format: gocam.local.model.association.<association-id>
func AssociationEntityID(associationID string) string {
	return "gocam.local.model.association." + localID(associationID)
}

// localID strips the CURIE prefix and flattens separators so the id can
// ride inside a dotted entity id.
func localID(id string) string {
	if _, local, ok := strings.Cut(id, ":"); ok {
		id = local
	}
	return strings.ReplaceAll(id, ".", "-")
}

// ModelEntities flattens a model into graph entities: one for the model,
// one per activity, and one per evidenced association.
func ModelEntities(m *model.GOCam) []Entity {
	now := time.Now()
	modelID := ModelEntityID(m.ID)

	modelTriples := []message.Triple{
		{Subject: modelID, Predicate: gocamvocab.ModelTitle, Object: m.Title, Source: tripleSource, Timestamp: now, Confidence: 1.0},
		{Subject: modelID, Predicate: gocamvocab.ModelCreatedAt, Object: m.CreationDate.Format(time.RFC3339), Source: tripleSource, Timestamp: now, Confidence: 1.0},
		{Subject: modelID, Predicate: gocamvocab.ModelModifiedAt, Object: m.ModifiedDate.Format(time.RFC3339), Source: tripleSource, Timestamp: now, Confidence: 1.0},
	}
	for _, c := range m.Contributors() {
		modelTriples = append(modelTriples, message.Triple{
			Subject: modelID, Predicate: gocamvocab.ModelContributor, Object: c.ID,
			Source: tripleSource, Timestamp: now, Confidence: 1.0,
		})
	}

	entities := []Entity{{ID: modelID, Triples: modelTriples}}

	for _, a := range m.Activities() {
		activityID := ActivityEntityID(m.ID, a.ID)
		entities[0].Triples = append(entities[0].Triples, message.Triple{
			Subject: modelID, Predicate: gocamvocab.ModelActivity, Object: activityID,
			Source: tripleSource, Timestamp: now, Confidence: 1.0,
		})

		triples := []message.Triple{
			{Subject: activityID, Predicate: gocamvocab.ActivityTerm, Object: a.ID, Source: tripleSource, Timestamp: now, Confidence: 1.0},
			{Subject: activityID, Predicate: gocamvocab.ActivityLabel, Object: a.Label, Source: tripleSource, Timestamp: now, Confidence: 1.0},
		}

		if eb := a.EnabledBy(); eb != nil && eb.GeneProduct != nil {
			triples = append(triples, message.Triple{
				Subject: activityID, Predicate: gocamvocab.ActivityEnabledBy, Object: eb.GeneProduct.ID,
				Source: tripleSource, Timestamp: now, Confidence: 1.0,
			})
			if assoc := associationEntity(&eb.EvidencedRelationship, now); assoc != nil {
				entities = append(entities, *assoc)
			}
		}

		for _, link := range a.Contexts() {
			if link.Context == nil {
				continue
			}
			triples = append(triples, message.Triple{
				Subject: activityID, Predicate: link.ID, Object: link.Context.ID,
				Source: tripleSource, Timestamp: now, Confidence: 1.0,
			})
			if assoc := associationEntity(&link.EvidencedRelationship, now); assoc != nil {
				entities = append(entities, *assoc)
			}
		}

		entities = append(entities, Entity{ID: activityID, Triples: triples})
	}

	for _, edge := range m.Edges() {
		entities[0].Triples = append(entities[0].Triples, message.Triple{
			Subject:    ActivityEntityID(m.ID, edge.Source),
			Predicate:  edge.Relation,
			Object:     ActivityEntityID(m.ID, edge.Target),
			Source:     tripleSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	return entities
}

// associationEntity builds the provenance entity for an association, or
// nil when the association carries no evidence.
func associationEntity(rel *model.EvidencedRelationship, now time.Time) *Entity {
	evidences := rel.Evidences()
	if len(evidences) == 0 {
		return nil
	}

	entityID := AssociationEntityID(rel.AssociationID)
	var triples []message.Triple
	for _, e := range evidences {
		triples = append(triples,
			message.Triple{Subject: entityID, Predicate: gocamvocab.EvidenceCode, Object: e.ID, Source: tripleSource, Timestamp: now, Confidence: 1.0},
			message.Triple{Subject: entityID, Predicate: gocamvocab.EvidenceDate, Object: e.Date.Format(time.RFC3339), Source: tripleSource, Timestamp: now, Confidence: 1.0},
		)
		for _, c := range e.Contributors() {
			triples = append(triples, message.Triple{
				Subject: entityID, Predicate: gocamvocab.EvidenceContributor, Object: c.ID,
				Source: tripleSource, Timestamp: now, Confidence: 1.0,
			})
		}
	}
	return &Entity{ID: entityID, Triples: triples}
}

// PublishModel publishes a model's graph entities to the ingest subject.
// A nil client skips publishing so callers degrade gracefully when NATS
// is not configured.
func PublishModel(ctx context.Context, nc *natsclient.Client, m *model.GOCam) error {
	if nc == nil {
		return nil
	}

	now := time.Now()
	for _, entity := range ModelEntities(m) {
		msg := EntityIngestMessage{
			ID:        entity.ID,
			Triples:   entity.Triples,
			UpdatedAt: now,
		}
		data, err := json.Marshal(msg)
		if err != nil {
			publishErrors.Inc()
			return fmt.Errorf("marshal entity %s: %w", entity.ID, err)
		}
		if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
			publishErrors.Inc()
			return fmt.Errorf("publish entity %s: %w", entity.ID, err)
		}
		entitiesPublished.Inc()
		triplesPublished.Add(float64(len(entity.Triples)))
	}
	return nil
}
