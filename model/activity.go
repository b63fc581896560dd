package model

import "sort"

// Activity is a molecular-function term acting as a node in the causal
// graph: the function, the gene product enabling it, and the contextual
// links qualifying it.
type Activity struct {
	Term

	enabledBy      *ActivityAssociation
	contextTargets map[string]*ContextTargetAssociation
}

// NewActivity promotes a term to an activity. The term's aspect must be
// molecular_function; anything else fails with ErrInvalidAspect. This is
// the only place the rule is enforced — the returned activity is valid for
// its lifetime.
func NewActivity(term *Term) (*Activity, error) {
	if !term.IsMolecularFunction() {
		return nil, ErrInvalidAspect
	}
	a := &Activity{
		Term: Term{
			TypedNamedEntity: TypedNamedEntity{
				NamedEntity: term.NamedEntity,
				Kind:        KindActivity,
			},
			Aspect: term.Aspect,
		},
		contextTargets: make(map[string]*ContextTargetAssociation),
	}
	return a, nil
}

// SetEnabledBy records the enabling gene product association. An activity
// holds at most one; setting overwrites unconditionally.
func (a *Activity) SetEnabledBy(assoc *ActivityAssociation) {
	a.enabledBy = assoc
}

// EnabledBy returns the enabling association, or nil when none is set.
func (a *Activity) EnabledBy() *ActivityAssociation {
	return a.enabledBy
}

// AddContext attaches a contextual association, keyed by association id.
// Returns false without mutation if the id is already attached.
func (a *Activity) AddContext(assoc *ContextTargetAssociation) bool {
	if _, ok := a.contextTargets[assoc.AssociationID]; ok {
		return false
	}
	a.contextTargets[assoc.AssociationID] = assoc
	return true
}

// RemoveContext detaches a contextual association. Returns false without
// mutation if the id is absent.
func (a *Activity) RemoveContext(associationID string) bool {
	if _, ok := a.contextTargets[associationID]; !ok {
		return false
	}
	delete(a.contextTargets, associationID)
	return true
}

// HasContext reports whether an association id is attached.
func (a *Activity) HasContext(associationID string) bool {
	_, ok := a.contextTargets[associationID]
	return ok
}

// Contexts returns the attached contextual associations sorted by
// association id.
func (a *Activity) Contexts() []*ContextTargetAssociation {
	out := make([]*ContextTargetAssociation, 0, len(a.contextTargets))
	for _, assoc := range a.contextTargets {
		out = append(out, assoc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssociationID < out[j].AssociationID })
	return out
}

// ContextCount returns the number of attached contextual associations.
func (a *Activity) ContextCount() int {
	return len(a.contextTargets)
}

// Same reports structural equality: term identity and aspect, the enabling
// association, and pairwise-equal context links. Context links are matched
// by relation and target rather than association id, since instance ids are
// not part of the model's value identity.
func (a *Activity) Same(o *Activity) bool {
	if a == nil || o == nil {
		return a == o
	}
	if !a.Term.Same(&o.Term) {
		return false
	}
	if !a.enabledBy.Same(o.enabledBy) {
		return false
	}
	if len(a.contextTargets) != len(o.contextTargets) {
		return false
	}
	matched := make(map[string]bool, len(o.contextTargets))
	for _, assoc := range a.contextTargets {
		found := false
		for id, other := range o.contextTargets {
			if matched[id] {
				continue
			}
			if assoc.Same(other) {
				matched[id] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Context is a non-molecular-function term referenced by activities: the
// process an activity is part of, the location it occurs in, or an entity
// it consumes or produces. Contexts are shared instances owned by the
// model's catalog; activities reference them, they do not copy them.
type Context struct {
	Term
}

// NewContext promotes a term to a context. Molecular-function terms are
// activities, never contexts, and fail with ErrInvalidAspect. Terms with no
// aspect are accepted: chemical entities referenced by has_input/has_output
// carry no GO aspect at all.
func NewContext(term *Term) (*Context, error) {
	if term.IsMolecularFunction() {
		return nil, ErrInvalidAspect
	}
	return &Context{
		Term: Term{
			TypedNamedEntity: TypedNamedEntity{
				NamedEntity: term.NamedEntity,
				Kind:        KindContext,
			},
			Aspect: term.Aspect,
		},
	}, nil
}

// Same reports structural equality of two contexts.
func (c *Context) Same(o *Context) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Term.Same(&o.Term)
}
