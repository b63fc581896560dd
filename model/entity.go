package model

import "fmt"

// Kind is the closed tag discriminating the concrete entity variants.
type Kind string

const (
	// KindTerm is a plain ontology term.
	KindTerm Kind = "term"

	// KindTaxon is an organism taxon.
	KindTaxon Kind = "taxon"

	// KindGeneProduct is a gene product (protein, RNA, complex).
	KindGeneProduct Kind = "gene_product"

	// KindRelationship is a relation between entities.
	KindRelationship Kind = "relationship"

	// KindActivity is a molecular-function term acting as a graph node.
	KindActivity Kind = "activity"

	// KindContext is a non-molecular-function term qualifying an activity.
	KindContext Kind = "context"

	// KindContributor is a human curator identified by ORCID.
	KindContributor Kind = "contributor"

	// KindGroup is a curation group a contributor belongs to.
	KindGroup Kind = "group"

	// KindEvidence is a provenance record backing a relationship.
	KindEvidence Kind = "evidence"
)

// NamedEntity is the identity shared by every entity in a model: a stable
// ontology id (CURIE), a human-readable label, and an optional externally
// assigned instance handle.
type NamedEntity struct {
	// ID is the stable ontology identifier, e.g. "GO:0016301".
	ID string

	// Label is the human-readable name, e.g. "kinase activity".
	Label string

	// InstanceRef is an opaque handle assigned by an external store.
	// It never participates in equality.
	InstanceRef string
}

// Same reports structural identity equality: id and label match.
// InstanceRef is deliberately ignored.
func (n NamedEntity) Same(o NamedEntity) bool {
	return n.ID == o.ID && n.Label == o.Label
}

// TypedNamedEntity is a NamedEntity carrying its variant tag.
type TypedNamedEntity struct {
	NamedEntity

	// Kind discriminates the entity variant.
	Kind Kind
}

// Same reports structural equality: id, label, and kind all match.
// This is value equality, independent of object identity.
func (t TypedNamedEntity) Same(o TypedNamedEntity) bool {
	return t.NamedEntity.Same(o.NamedEntity) && t.Kind == o.Kind
}

// String renders the entity as "<kind>:<label> [<id>]".
func (t TypedNamedEntity) String() string {
	return fmt.Sprintf("%s:%s [%s]", t.Kind, t.Label, t.ID)
}
