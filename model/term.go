package model

import "github.com/gocamtools/gocam/vocabulary/geneontology"

// Term is an ontology term together with the aspect root it descends from.
// The aspect decides what role the term may take in a model: molecular
// function terms become activities, the rest serve as context.
type Term struct {
	TypedNamedEntity

	// Aspect references one of the three ontology roots. Nil when the
	// aspect is unknown; such a term qualifies for no role.
	Aspect *Term
}

// NewTerm creates a plain term. aspect may be nil.
func NewTerm(id, label string, aspect *Term) *Term {
	return &Term{
		TypedNamedEntity: TypedNamedEntity{
			NamedEntity: NamedEntity{ID: id, Label: label},
			Kind:        KindTerm,
		},
		Aspect: aspect,
	}
}

// MolecularFunctionRoot returns a term for the molecular_function aspect
// root, GO:0003674.
func MolecularFunctionRoot() *Term {
	return NewTerm(geneontology.MolecularFunction, geneontology.MolecularFunctionLabel, nil)
}

// BiologicalProcessRoot returns a term for the biological_process aspect
// root, GO:0008150.
func BiologicalProcessRoot() *Term {
	return NewTerm(geneontology.BiologicalProcess, geneontology.BiologicalProcessLabel, nil)
}

// CellularComponentRoot returns a term for the cellular_component aspect
// root, GO:0005575.
func CellularComponentRoot() *Term {
	return NewTerm(geneontology.CellularComponent, geneontology.CellularComponentLabel, nil)
}

// IsMolecularFunction reports whether the term's aspect is the
// molecular_function root.
func (t *Term) IsMolecularFunction() bool {
	return t.Aspect != nil && t.Aspect.ID == geneontology.MolecularFunction
}

// IsBiologicalProcess reports whether the term's aspect is the
// biological_process root.
func (t *Term) IsBiologicalProcess() bool {
	return t.Aspect != nil && t.Aspect.ID == geneontology.BiologicalProcess
}

// IsCellularComponent reports whether the term's aspect is the
// cellular_component root.
func (t *Term) IsCellularComponent() bool {
	return t.Aspect != nil && t.Aspect.ID == geneontology.CellularComponent
}

// AspectID returns the CURIE of the term's aspect root, or "" when the
// aspect is unknown.
func (t *Term) AspectID() string {
	if t.Aspect == nil {
		return ""
	}
	return t.Aspect.ID
}

// Same reports structural equality: base identity plus aspect root.
func (t *Term) Same(o *Term) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.TypedNamedEntity.Same(o.TypedNamedEntity) && t.AspectID() == o.AspectID()
}
