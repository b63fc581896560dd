package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CausalEdge is one typed, directed edge of the causal multigraph. Parallel
// edges between the same ordered pair are permitted, including edges of the
// same relation: parallel identical-type edges can carry distinct evidence.
type CausalEdge struct {
	// ID identifies this edge instance.
	ID string

	// Source and Target are activity ids registered in the model.
	Source string
	Target string

	// Relation is the causal relation CURIE, e.g. "RO:0002413".
	Relation string
}

// GOCam is one causal activity model: a registry of contributors, a catalog
// of shared context terms, and a directed multigraph of activities joined
// by causal relations.
//
// A GOCam is not safe for unsynchronized concurrent mutation.
type GOCam struct {
	// ID is the model id, e.g. "gomodel:5fadbcf000000001".
	ID string

	// Title is the human-readable model title.
	Title string

	// CreationDate is when the model was created.
	CreationDate time.Time

	// ModifiedDate tracks the latest successful mutation.
	ModifiedDate time.Time

	contributors map[string]*Contributor
	contexts     map[string]*Context
	activities   map[string]*Activity
	edges        map[string][]CausalEdge
}

// NewGOCam creates an empty model. An empty id gets a generated
// "gomodel:" identifier.
func NewGOCam(id, title string) *GOCam {
	if id == "" {
		id = "gomodel:" + uuid.NewString()
	}
	now := time.Now()
	return &GOCam{
		ID:           id,
		Title:        title,
		CreationDate: now,
		ModifiedDate: now,
		contributors: make(map[string]*Contributor),
		contexts:     make(map[string]*Context),
		activities:   make(map[string]*Activity),
		edges:        make(map[string][]CausalEdge),
	}
}

func (g *GOCam) touch() {
	g.ModifiedDate = time.Now()
}

// AddActivity registers an activity as a graph node. Returns false without
// mutation if an activity with that id is already registered.
func (g *GOCam) AddActivity(a *Activity) bool {
	if _, ok := g.activities[a.ID]; ok {
		return false
	}
	g.activities[a.ID] = a
	g.touch()
	return true
}

// RemoveActivity unregisters an activity and drops every incident edge,
// outgoing and incoming. Returns false without mutation if the id is
// absent.
func (g *GOCam) RemoveActivity(id string) bool {
	if _, ok := g.activities[id]; !ok {
		return false
	}
	delete(g.activities, id)
	delete(g.edges, id)
	for src, out := range g.edges {
		kept := out[:0]
		for _, e := range out {
			if e.Target != id {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(g.edges, src)
		} else {
			g.edges[src] = kept
		}
	}
	g.touch()
	return true
}

// HasActivity reports whether an activity id is registered.
func (g *GOCam) HasActivity(id string) bool {
	_, ok := g.activities[id]
	return ok
}

// Activity returns the registered activity for an id, or nil.
func (g *GOCam) Activity(id string) *Activity {
	return g.activities[id]
}

// Activities returns all registered activities sorted by id.
func (g *GOCam) Activities() []*Activity {
	out := make([]*Activity, 0, len(g.activities))
	for _, a := range g.activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddCausalRelationship inserts a causal edge from src to dst. Returns
// false without mutation unless both endpoints are registered activities.
// No duplicate check is made: repeated calls with identical arguments
// insert parallel edges, each able to carry its own provenance.
func (g *GOCam) AddCausalRelationship(src, dst, relation string) bool {
	if !g.HasActivity(src) || !g.HasActivity(dst) {
		return false
	}
	g.edges[src] = append(g.edges[src], CausalEdge{
		ID:       uuid.NewString(),
		Source:   src,
		Target:   dst,
		Relation: relation,
	})
	g.touch()
	return true
}

// HasCausalRelationship reports whether at least one edge from src to dst
// carries the given relation, examining every parallel edge between the
// pair.
func (g *GOCam) HasCausalRelationship(src, dst, relation string) bool {
	for _, e := range g.edges[src] {
		if e.Target == dst && e.Relation == relation {
			return true
		}
	}
	return false
}

// CausalRelationships returns the outgoing edges of an activity in
// insertion order.
func (g *GOCam) CausalRelationships(src string) []CausalEdge {
	out := make([]CausalEdge, len(g.edges[src]))
	copy(out, g.edges[src])
	return out
}

// Edges returns every causal edge of the model, sorted by source, target,
// then relation.
func (g *GOCam) Edges() []CausalEdge {
	var out []CausalEdge
	for _, es := range g.edges {
		out = append(out, es...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		if out[i].Target != out[j].Target {
			return out[i].Target < out[j].Target
		}
		return out[i].Relation < out[j].Relation
	})
	return out
}

// EdgeCount returns the total number of causal edges.
func (g *GOCam) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n
}

// AddContext registers a context term in the model catalog. Returns false
// without mutation if the id is already cataloged. The catalog is the sole
// owner of context instances; activities reference catalog entries.
func (g *GOCam) AddContext(c *Context) bool {
	if _, ok := g.contexts[c.ID]; ok {
		return false
	}
	g.contexts[c.ID] = c
	g.touch()
	return true
}

// RemoveContext drops a context from the catalog. Returns false without
// mutation if the id is absent.
func (g *GOCam) RemoveContext(id string) bool {
	if _, ok := g.contexts[id]; !ok {
		return false
	}
	delete(g.contexts, id)
	g.touch()
	return true
}

// HasContext reports whether a context id is cataloged.
func (g *GOCam) HasContext(id string) bool {
	_, ok := g.contexts[id]
	return ok
}

// Context returns the cataloged context for an id, or nil.
func (g *GOCam) Context(id string) *Context {
	return g.contexts[id]
}

// Contexts returns the catalog sorted by id.
func (g *GOCam) Contexts() []*Context {
	out := make([]*Context, 0, len(g.contexts))
	for _, c := range g.contexts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AttachContext links a contextual association to a registered activity,
// validating that the association's target is a cataloged context. Returns
// false without mutation when the activity is unregistered, the target is
// absent from the catalog, or the association id is already attached.
func (g *GOCam) AttachContext(activityID string, assoc *ContextTargetAssociation) bool {
	a, ok := g.activities[activityID]
	if !ok {
		return false
	}
	if assoc.Context == nil || !g.HasContext(assoc.Context.ID) {
		return false
	}
	if !a.AddContext(assoc) {
		return false
	}
	g.touch()
	return true
}

// DetachContext removes a contextual association from a registered
// activity. Returns false without mutation when the activity is
// unregistered or the association id is absent.
func (g *GOCam) DetachContext(activityID, associationID string) bool {
	a, ok := g.activities[activityID]
	if !ok {
		return false
	}
	if !a.RemoveContext(associationID) {
		return false
	}
	g.touch()
	return true
}

// AddContributor registers a contributor, keyed by ORCID. Unlike evidence
// attribution this is an unconditional upsert: re-registering an ORCID
// keeps the latest record.
func (g *GOCam) AddContributor(c *Contributor) {
	g.contributors[c.ID] = c
	g.touch()
}

// HasContributor reports whether an ORCID is registered.
func (g *GOCam) HasContributor(orcid string) bool {
	_, ok := g.contributors[orcid]
	return ok
}

// Contributors returns the registry sorted by ORCID.
func (g *GOCam) Contributors() []*Contributor {
	out := make([]*Contributor, 0, len(g.contributors))
	for _, c := range g.contributors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Same reports structural equality of two models: id, title, contributor
// registry, context catalog, activities, and the causal edge multiset.
// Model dates and edge instance ids are not compared.
func (g *GOCam) Same(o *GOCam) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.ID != o.ID || g.Title != o.Title {
		return false
	}
	if len(g.contributors) != len(o.contributors) {
		return false
	}
	for orcid, c := range g.contributors {
		oc, ok := o.contributors[orcid]
		if !ok || !c.Same(oc) {
			return false
		}
	}
	if len(g.contexts) != len(o.contexts) {
		return false
	}
	for id, c := range g.contexts {
		oc, ok := o.contexts[id]
		if !ok || !c.Same(oc) {
			return false
		}
	}
	if len(g.activities) != len(o.activities) {
		return false
	}
	for id, a := range g.activities {
		oa, ok := o.activities[id]
		if !ok || !a.Same(oa) {
			return false
		}
	}
	return sameEdgeMultiset(g.Edges(), o.Edges())
}

// sameEdgeMultiset compares edge multisets by (source, target, relation)
// occurrence counts.
func sameEdgeMultiset(a, b []CausalEdge) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[CausalEdge]int, len(a))
	for _, e := range a {
		e.ID = ""
		counts[e]++
	}
	for _, e := range b {
		e.ID = ""
		counts[e]--
		if counts[e] < 0 {
			return false
		}
	}
	return true
}
