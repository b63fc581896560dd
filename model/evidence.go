package model

import (
	"sort"
	"time"
)

// Evidence is a provenance record: an ECO evidence class plus the
// contributors who made the assertion and the date it was made. Evidence is
// never contributor-less; construction demands at least one and no
// operation can remove the last.
type Evidence struct {
	TypedNamedEntity

	// Date is when the assertion was made. Defaults to the construction
	// time.
	Date time.Time

	contributors map[string]*Contributor
}

// NewEvidence creates an evidence record. id is an ECO class CURIE.
// Returns ErrNoContributor unless at least one contributor is given;
// contributors sharing an ORCID collapse to the first occurrence.
func NewEvidence(id, label string, contributors ...*Contributor) (*Evidence, error) {
	if len(contributors) == 0 {
		return nil, ErrNoContributor
	}
	e := &Evidence{
		TypedNamedEntity: TypedNamedEntity{
			NamedEntity: NamedEntity{ID: id, Label: label},
			Kind:        KindEvidence,
		},
		Date:         time.Now(),
		contributors: make(map[string]*Contributor, len(contributors)),
	}
	for _, c := range contributors {
		if _, ok := e.contributors[c.ID]; !ok {
			e.contributors[c.ID] = c
		}
	}
	return e, nil
}

// AddContributor attributes the evidence to another curator. Returns false
// without mutation if the ORCID is already recorded — first write wins.
func (e *Evidence) AddContributor(c *Contributor) bool {
	if _, ok := e.contributors[c.ID]; ok {
		return false
	}
	e.contributors[c.ID] = c
	return true
}

// HasContributor reports whether the ORCID is recorded on this evidence.
func (e *Evidence) HasContributor(orcid string) bool {
	_, ok := e.contributors[orcid]
	return ok
}

// Contributors returns the evidence's contributors sorted by ORCID.
func (e *Evidence) Contributors() []*Contributor {
	out := make([]*Contributor, 0, len(e.contributors))
	for _, c := range e.contributors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ContributorCount returns the number of recorded contributors.
func (e *Evidence) ContributorCount() int {
	return len(e.contributors)
}

// Same reports structural equality: base identity, equal date, and equal
// contributor ORCID sets regardless of insertion order.
func (e *Evidence) Same(o *Evidence) bool {
	if e == nil || o == nil {
		return e == o
	}
	if !e.TypedNamedEntity.Same(o.TypedNamedEntity) {
		return false
	}
	if !e.Date.Equal(o.Date) {
		return false
	}
	if len(e.contributors) != len(o.contributors) {
		return false
	}
	for orcid := range e.contributors {
		if _, ok := o.contributors[orcid]; !ok {
			return false
		}
	}
	return true
}
