package model

import "sort"

// Group is a curation group, e.g. "http://geneontology.org" or a MOD.
type Group struct {
	TypedNamedEntity
}

// NewGroup creates a group entity.
func NewGroup(id, label string) *Group {
	return &Group{
		TypedNamedEntity: TypedNamedEntity{
			NamedEntity: NamedEntity{ID: id, Label: label},
			Kind:        KindGroup,
		},
	}
}

// Contributor is a human curator, identified by ORCID, optionally
// affiliated with one or more groups.
type Contributor struct {
	TypedNamedEntity

	groups map[string]*Group
}

// NewContributor creates a contributor. id is the curator's ORCID.
func NewContributor(id, label string, groups ...*Group) *Contributor {
	c := &Contributor{
		TypedNamedEntity: TypedNamedEntity{
			NamedEntity: NamedEntity{ID: id, Label: label},
			Kind:        KindContributor,
		},
		groups: make(map[string]*Group, len(groups)),
	}
	for _, g := range groups {
		c.groups[g.ID] = g
	}
	return c
}

// AddGroup records a group affiliation. Returns false without mutation if
// the group id is already present.
func (c *Contributor) AddGroup(g *Group) bool {
	if _, ok := c.groups[g.ID]; ok {
		return false
	}
	c.groups[g.ID] = g
	return true
}

// Groups returns the contributor's groups sorted by id.
func (c *Contributor) Groups() []*Group {
	out := make([]*Group, 0, len(c.groups))
	for _, g := range c.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Same reports structural equality: base identity plus group id set,
// regardless of insertion order.
func (c *Contributor) Same(o *Contributor) bool {
	if c == nil || o == nil {
		return c == o
	}
	if !c.TypedNamedEntity.Same(o.TypedNamedEntity) {
		return false
	}
	if len(c.groups) != len(o.groups) {
		return false
	}
	for id := range c.groups {
		if _, ok := o.groups[id]; !ok {
			return false
		}
	}
	return true
}
