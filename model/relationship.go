package model

import (
	"sort"

	"github.com/google/uuid"
)

// BasicRelationship is a relation identified by an ontology CURIE, e.g.
// "RO:0002333" with label "enabled by".
type BasicRelationship struct {
	TypedNamedEntity
}

// NewBasicRelationship creates a relationship entity.
func NewBasicRelationship(id, label string) *BasicRelationship {
	return &BasicRelationship{
		TypedNamedEntity: TypedNamedEntity{
			NamedEntity: NamedEntity{ID: id, Label: label},
			Kind:        KindRelationship,
		},
	}
}

// Same reports structural equality of two relationships.
func (r *BasicRelationship) Same(o *BasicRelationship) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.TypedNamedEntity.Same(o.TypedNamedEntity)
}

// EvidencedRelationship is a relationship carrying the evidence records
// that back it. Concrete associations embed it and pin down the subject and
// object types statically, so an activity can never be "enabled by" a
// location or "occur in" a protein.
type EvidencedRelationship struct {
	BasicRelationship

	// AssociationID identifies this association instance. Distinct
	// associations may share a relation CURIE (two has_input links, say),
	// so instances get their own id, generated at construction and
	// overridable when reassembling a model from an external document.
	// It never participates in structural equality.
	AssociationID string

	evidences map[string]*Evidence
}

func newEvidencedRelationship(id, label string) EvidencedRelationship {
	return EvidencedRelationship{
		BasicRelationship: *NewBasicRelationship(id, label),
		AssociationID:     uuid.NewString(),
		evidences:         make(map[string]*Evidence),
	}
}

// AddEvidence attaches an evidence record, keyed by evidence id. Re-adding
// an existing id replaces the record (upsert).
func (r *EvidencedRelationship) AddEvidence(e *Evidence) {
	r.evidences[e.ID] = e
}

// RemoveEvidence detaches an evidence record. Returns false without
// mutation if the id is absent.
func (r *EvidencedRelationship) RemoveEvidence(id string) bool {
	if _, ok := r.evidences[id]; !ok {
		return false
	}
	delete(r.evidences, id)
	return true
}

// HasEvidence reports whether an evidence id is attached.
func (r *EvidencedRelationship) HasEvidence(id string) bool {
	_, ok := r.evidences[id]
	return ok
}

// Evidences returns the attached evidence records sorted by id.
func (r *EvidencedRelationship) Evidences() []*Evidence {
	out := make([]*Evidence, 0, len(r.evidences))
	for _, e := range r.evidences {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// sameEvidences compares evidence sets pairwise by id.
func (r *EvidencedRelationship) sameEvidences(o *EvidencedRelationship) bool {
	if len(r.evidences) != len(o.evidences) {
		return false
	}
	for id, e := range r.evidences {
		oe, ok := o.evidences[id]
		if !ok || !e.Same(oe) {
			return false
		}
	}
	return true
}

// ActivityAssociation asserts that an activity is enabled by a gene
// product: the gene product carries out the molecular function.
type ActivityAssociation struct {
	EvidencedRelationship

	// Activity is the subject of the association.
	Activity *Activity

	// GeneProduct is the enabler.
	GeneProduct *GeneProduct
}

// NewActivityAssociation creates an enabled-by association between an
// activity and a gene product. relID is normally ro.EnabledBy.
func NewActivityAssociation(relID, relLabel string, activity *Activity, product *GeneProduct) *ActivityAssociation {
	return &ActivityAssociation{
		EvidencedRelationship: newEvidencedRelationship(relID, relLabel),
		Activity:              activity,
		GeneProduct:           product,
	}
}

// Same reports structural equality: relation identity, evidence set, and
// the enabling gene product. The subject activity is compared by identity
// fields only to avoid recursing through the activity's own associations.
func (a *ActivityAssociation) Same(o *ActivityAssociation) bool {
	if a == nil || o == nil {
		return a == o
	}
	if !a.BasicRelationship.Same(&o.BasicRelationship) {
		return false
	}
	if !a.GeneProduct.Same(o.GeneProduct) {
		return false
	}
	if (a.Activity == nil) != (o.Activity == nil) {
		return false
	}
	if a.Activity != nil && !a.Activity.TypedNamedEntity.Same(o.Activity.TypedNamedEntity) {
		return false
	}
	return a.sameEvidences(&o.EvidencedRelationship)
}

// ContextTargetAssociation asserts that an activity stands in a contextual
// relation (occurs in, part of, has input, has output) to a context term.
type ContextTargetAssociation struct {
	EvidencedRelationship

	// Context is the target context term.
	Context *Context
}

// NewContextTargetAssociation creates a contextual association targeting a
// context term. relID is a contextual relation CURIE such as ro.OccursIn.
func NewContextTargetAssociation(relID, relLabel string, target *Context) *ContextTargetAssociation {
	return &ContextTargetAssociation{
		EvidencedRelationship: newEvidencedRelationship(relID, relLabel),
		Context:               target,
	}
}

// Same reports structural equality: relation identity, evidence set, and
// target context.
func (a *ContextTargetAssociation) Same(o *ContextTargetAssociation) bool {
	if a == nil || o == nil {
		return a == o
	}
	if !a.BasicRelationship.Same(&o.BasicRelationship) {
		return false
	}
	if (a.Context == nil) != (o.Context == nil) {
		return false
	}
	if a.Context != nil && !a.Context.Term.Same(&o.Context.Term) {
		return false
	}
	return a.sameEvidences(&o.EvidencedRelationship)
}
