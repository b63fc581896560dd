// Package export moves models across process boundaries: a flat Document
// form with JSON and YAML codecs, and an RDF exporter for triple stores.
//
// Decoding always rebuilds the model through its constructors, so a
// document that violates a model rule fails the whole import instead of
// producing a half-valid model.
package export

import (
	"fmt"
	"time"

	"github.com/gocamtools/gocam/model"
	"github.com/gocamtools/gocam/vocabulary/geneontology"
)

// Document is the serialization form of a model. It is a plain tree:
// shared structures in the model (context catalog entries, contributor
// records) are flattened to references by id and resolved on decode.
type Document struct {
	ID         string    `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	ModifiedAt time.Time `json:"modified_at" yaml:"modified_at"`

	Contributors []ContributorRecord `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	Contexts     []ContextRecord     `json:"contexts,omitempty" yaml:"contexts,omitempty"`
	Activities   []ActivityRecord    `json:"activities,omitempty" yaml:"activities,omitempty"`
	Edges        []EdgeRecord        `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// ContributorRecord is a curator registered on the model.
type ContributorRecord struct {
	ORCID  string        `json:"orcid" yaml:"orcid"`
	Name   string        `json:"name" yaml:"name"`
	Groups []GroupRecord `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// GroupRecord is a curation group affiliation.
type GroupRecord struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// ContextRecord is a catalog entry: a non-molecular-function term.
type ContextRecord struct {
	Term   string `json:"term" yaml:"term"`
	Label  string `json:"label" yaml:"label"`
	Aspect string `json:"aspect,omitempty" yaml:"aspect,omitempty"`
}

// ActivityRecord is one node of the causal graph.
type ActivityRecord struct {
	Term      string              `json:"term" yaml:"term"`
	Label     string              `json:"label" yaml:"label"`
	Aspect    string              `json:"aspect" yaml:"aspect"`
	EnabledBy *EnabledByRecord    `json:"enabled_by,omitempty" yaml:"enabled_by,omitempty"`
	Contexts  []ContextLinkRecord `json:"contexts,omitempty" yaml:"contexts,omitempty"`
}

// EnabledByRecord links an activity to its enabling gene product.
type EnabledByRecord struct {
	AssociationID string            `json:"association_id,omitempty" yaml:"association_id,omitempty"`
	Relation      string            `json:"relation" yaml:"relation"`
	RelationLabel string            `json:"relation_label,omitempty" yaml:"relation_label,omitempty"`
	GeneProduct   GeneProductRecord `json:"gene_product" yaml:"gene_product"`
	Evidences     []EvidenceRecord  `json:"evidences,omitempty" yaml:"evidences,omitempty"`
}

// GeneProductRecord is the protein, RNA, or complex enabling an activity.
type GeneProductRecord struct {
	ID    string       `json:"id" yaml:"id"`
	Label string       `json:"label" yaml:"label"`
	Taxon *TaxonRecord `json:"taxon,omitempty" yaml:"taxon,omitempty"`
}

// TaxonRecord is the organism a gene product belongs to.
type TaxonRecord struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// ContextLinkRecord attaches a cataloged context to an activity through a
// contextual relation. Target references a ContextRecord by term CURIE.
type ContextLinkRecord struct {
	AssociationID string           `json:"association_id,omitempty" yaml:"association_id,omitempty"`
	Relation      string           `json:"relation" yaml:"relation"`
	RelationLabel string           `json:"relation_label,omitempty" yaml:"relation_label,omitempty"`
	Target        string           `json:"target" yaml:"target"`
	Evidences     []EvidenceRecord `json:"evidences,omitempty" yaml:"evidences,omitempty"`
}

// EvidenceRecord is a provenance record backing an association.
type EvidenceRecord struct {
	Code         string              `json:"code" yaml:"code"`
	Label        string              `json:"label,omitempty" yaml:"label,omitempty"`
	Date         time.Time           `json:"date" yaml:"date"`
	Contributors []ContributorRecord `json:"contributors" yaml:"contributors"`
}

// EdgeRecord is one directed causal edge between activity term CURIEs.
type EdgeRecord struct {
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	Relation string `json:"relation" yaml:"relation"`
}

// Encode flattens a model into its document form. Output ordering is
// deterministic: collections are sorted the way the model accessors sort
// them, so encoding the same model twice yields identical documents.
func Encode(m *model.GOCam) *Document {
	doc := &Document{
		ID:         m.ID,
		Title:      m.Title,
		CreatedAt:  m.CreationDate,
		ModifiedAt: m.ModifiedDate,
	}

	for _, c := range m.Contributors() {
		doc.Contributors = append(doc.Contributors, encodeContributor(c))
	}

	for _, c := range m.Contexts() {
		doc.Contexts = append(doc.Contexts, ContextRecord{
			Term:   c.ID,
			Label:  c.Label,
			Aspect: c.AspectID(),
		})
	}

	for _, a := range m.Activities() {
		rec := ActivityRecord{
			Term:   a.ID,
			Label:  a.Label,
			Aspect: a.AspectID(),
		}
		if eb := a.EnabledBy(); eb != nil {
			rec.EnabledBy = &EnabledByRecord{
				AssociationID: eb.AssociationID,
				Relation:      eb.ID,
				RelationLabel: eb.Label,
				GeneProduct:   encodeGeneProduct(eb.GeneProduct),
				Evidences:     encodeEvidences(eb.Evidences()),
			}
		}
		for _, link := range a.Contexts() {
			rec.Contexts = append(rec.Contexts, ContextLinkRecord{
				AssociationID: link.AssociationID,
				Relation:      link.ID,
				RelationLabel: link.Label,
				Target:        link.Context.ID,
				Evidences:     encodeEvidences(link.Evidences()),
			})
		}
		doc.Activities = append(doc.Activities, rec)
	}

	for _, e := range m.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{
			Source:   e.Source,
			Target:   e.Target,
			Relation: e.Relation,
		})
	}

	return doc
}

func encodeContributor(c *model.Contributor) ContributorRecord {
	rec := ContributorRecord{ORCID: c.ID, Name: c.Label}
	for _, g := range c.Groups() {
		rec.Groups = append(rec.Groups, GroupRecord{ID: g.ID, Label: g.Label})
	}
	return rec
}

func encodeGeneProduct(p *model.GeneProduct) GeneProductRecord {
	rec := GeneProductRecord{ID: p.ID, Label: p.Label}
	if p.Taxon != nil {
		rec.Taxon = &TaxonRecord{ID: p.Taxon.ID, Label: p.Taxon.Label}
	}
	return rec
}

func encodeEvidences(evidences []*model.Evidence) []EvidenceRecord {
	out := make([]EvidenceRecord, 0, len(evidences))
	for _, e := range evidences {
		rec := EvidenceRecord{Code: e.ID, Label: e.Label, Date: e.Date}
		for _, c := range e.Contributors() {
			rec.Contributors = append(rec.Contributors, encodeContributor(c))
		}
		out = append(out, rec)
	}
	return out
}

// Decode rebuilds a model from its document form through the model
// constructors. Any rule violation in the document fails the whole import:
// the returned model is nil and the error names the offending record.
// Decode(Encode(m)) always yields a model structurally equal to m.
func Decode(doc *Document) (*model.GOCam, error) {
	m := model.NewGOCam(doc.ID, doc.Title)

	for _, rec := range doc.Contributors {
		m.AddContributor(decodeContributor(rec))
	}

	for _, rec := range doc.Contexts {
		c, err := model.NewContext(model.NewTerm(rec.Term, rec.Label, aspectTerm(rec.Aspect)))
		if err != nil {
			return nil, fmt.Errorf("context %s: %w", rec.Term, err)
		}
		if !m.AddContext(c) {
			return nil, fmt.Errorf("context %s: duplicate catalog entry", rec.Term)
		}
	}

	for _, rec := range doc.Activities {
		a, err := decodeActivity(rec)
		if err != nil {
			return nil, err
		}
		if !m.AddActivity(a) {
			return nil, fmt.Errorf("activity %s: duplicate id", rec.Term)
		}
	}

	// Context links attach after all activities and catalog entries exist.
	for _, rec := range doc.Activities {
		for _, link := range rec.Contexts {
			target := m.Context(link.Target)
			if target == nil {
				return nil, fmt.Errorf("activity %s: context link targets uncataloged term %s", rec.Term, link.Target)
			}
			assoc := model.NewContextTargetAssociation(link.Relation, link.RelationLabel, target)
			if link.AssociationID != "" {
				assoc.AssociationID = link.AssociationID
			}
			if err := decodeEvidences(assoc.AddEvidence, link.Evidences); err != nil {
				return nil, fmt.Errorf("activity %s: %w", rec.Term, err)
			}
			if !m.AttachContext(rec.Term, assoc) {
				return nil, fmt.Errorf("activity %s: cannot attach context link %s", rec.Term, link.Target)
			}
		}
	}

	for _, rec := range doc.Edges {
		if !m.AddCausalRelationship(rec.Source, rec.Target, rec.Relation) {
			return nil, fmt.Errorf("edge %s -> %s: endpoint not registered", rec.Source, rec.Target)
		}
	}

	// Dates last: the rebuild itself bumps the modification time.
	if !doc.CreatedAt.IsZero() {
		m.CreationDate = doc.CreatedAt
	}
	if !doc.ModifiedAt.IsZero() {
		m.ModifiedDate = doc.ModifiedAt
	}
	return m, nil
}

func decodeActivity(rec ActivityRecord) (*model.Activity, error) {
	a, err := model.NewActivity(model.NewTerm(rec.Term, rec.Label, aspectTerm(rec.Aspect)))
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", rec.Term, err)
	}
	if rec.EnabledBy != nil {
		eb := rec.EnabledBy
		product := model.NewGeneProduct(eb.GeneProduct.ID, eb.GeneProduct.Label, decodeTaxon(eb.GeneProduct.Taxon))
		assoc := model.NewActivityAssociation(eb.Relation, eb.RelationLabel, a, product)
		if eb.AssociationID != "" {
			assoc.AssociationID = eb.AssociationID
		}
		if err := decodeEvidences(assoc.AddEvidence, eb.Evidences); err != nil {
			return nil, fmt.Errorf("activity %s: %w", rec.Term, err)
		}
		a.SetEnabledBy(assoc)
	}
	return a, nil
}

func decodeContributor(rec ContributorRecord) *model.Contributor {
	groups := make([]*model.Group, 0, len(rec.Groups))
	for _, g := range rec.Groups {
		groups = append(groups, model.NewGroup(g.ID, g.Label))
	}
	return model.NewContributor(rec.ORCID, rec.Name, groups...)
}

func decodeTaxon(rec *TaxonRecord) *model.Taxon {
	if rec == nil {
		return nil
	}
	return model.NewTaxon(rec.ID, rec.Label)
}

func decodeEvidences(attach func(*model.Evidence), records []EvidenceRecord) error {
	for _, rec := range records {
		contributors := make([]*model.Contributor, 0, len(rec.Contributors))
		for _, c := range rec.Contributors {
			contributors = append(contributors, decodeContributor(c))
		}
		e, err := model.NewEvidence(rec.Code, rec.Label, contributors...)
		if err != nil {
			return fmt.Errorf("evidence %s: %w", rec.Code, err)
		}
		if !rec.Date.IsZero() {
			e.Date = rec.Date
		}
		attach(e)
	}
	return nil
}

// aspectTerm resolves an aspect root CURIE to its root term. An empty
// CURIE means no aspect; unknown CURIEs pass through as bare roots so the
// role guards can reject them downstream.
func aspectTerm(curie string) *model.Term {
	switch curie {
	case "":
		return nil
	case geneontology.MolecularFunction:
		return model.MolecularFunctionRoot()
	case geneontology.BiologicalProcess:
		return model.BiologicalProcessRoot()
	case geneontology.CellularComponent:
		return model.CellularComponentRoot()
	default:
		return model.NewTerm(curie, geneontology.AspectLabels[curie], nil)
	}
}
