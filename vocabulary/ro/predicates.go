package ro

// EnabledBy links an activity to its enabling gene product.
const EnabledBy = "RO:0002333"

// Causal relation CURIEs. These are the edge types of the causal
// multigraph between activities.
const (
	// CausallyUpstreamOf is the most general causal relation, RO:0002411.
	CausallyUpstreamOf = "RO:0002411"

	// ImmediatelyCausallyUpstreamOf asserts no intervening activity, RO:0002412.
	ImmediatelyCausallyUpstreamOf = "RO:0002412"

	// ProvidesInputFor asserts the upstream activity produces what the
	// downstream one consumes, RO:0002413.
	ProvidesInputFor = "RO:0002413"

	// CausallyUpstreamOfOrWithin relaxes upstream-of to include
	// containment, RO:0002418.
	CausallyUpstreamOfOrWithin = "RO:0002418"

	// CausallyUpstreamOfPositiveEffect is upstream with a positive net
	// effect, RO:0002304.
	CausallyUpstreamOfPositiveEffect = "RO:0002304"

	// CausallyUpstreamOfNegativeEffect is upstream with a negative net
	// effect, RO:0002305.
	CausallyUpstreamOfNegativeEffect = "RO:0002305"

	// DirectlyPositivelyRegulates is direct positive regulation, RO:0002629.
	DirectlyPositivelyRegulates = "RO:0002629"

	// DirectlyNegativelyRegulates is direct negative regulation, RO:0002630.
	DirectlyNegativelyRegulates = "RO:0002630"
)

// Contextual relation CURIEs. These link an activity to the terms that
// qualify it rather than to another activity.
const (
	// PartOf places an activity within a biological process, BFO:0000050.
	PartOf = "BFO:0000050"

	// OccursIn places an activity in a cellular location, BFO:0000066.
	OccursIn = "BFO:0000066"

	// HasInput names a consumed entity, RO:0002233.
	HasInput = "RO:0002233"

	// HasOutput names a produced entity, RO:0002234.
	HasOutput = "RO:0002234"
)

// Labels maps relation CURIEs to their Relations Ontology labels.
var Labels = map[string]string{
	EnabledBy:                        "enabled by",
	CausallyUpstreamOf:               "causally upstream of",
	ImmediatelyCausallyUpstreamOf:    "immediately causally upstream of",
	ProvidesInputFor:                 "provides input for",
	CausallyUpstreamOfOrWithin:       "causally upstream of or within",
	CausallyUpstreamOfPositiveEffect: "causally upstream of, positive effect",
	CausallyUpstreamOfNegativeEffect: "causally upstream of, negative effect",
	DirectlyPositivelyRegulates:      "directly positively regulates",
	DirectlyNegativelyRegulates:      "directly negatively regulates",
	PartOf:                           "part of",
	OccursIn:                         "occurs in",
	HasInput:                         "has input",
	HasOutput:                        "has output",
}

var causal = map[string]bool{
	CausallyUpstreamOf:               true,
	ImmediatelyCausallyUpstreamOf:    true,
	ProvidesInputFor:                 true,
	CausallyUpstreamOfOrWithin:       true,
	CausallyUpstreamOfPositiveEffect: true,
	CausallyUpstreamOfNegativeEffect: true,
	DirectlyPositivelyRegulates:      true,
	DirectlyNegativelyRegulates:      true,
}

var contextual = map[string]bool{
	PartOf:    true,
	OccursIn:  true,
	HasInput:  true,
	HasOutput: true,
}

// IsCausal reports whether a relation CURIE is a known activity-to-activity
// causal relation.
func IsCausal(curie string) bool {
	return causal[curie]
}

// IsContextual reports whether a relation CURIE is a known
// activity-to-context relation.
func IsContextual(curie string) bool {
	return contextual[curie]
}

// Label returns the RO label for a relation CURIE, or the CURIE itself when
// the relation is not in the vocabulary.
func Label(curie string) string {
	if l, ok := Labels[curie]; ok {
		return l
	}
	return curie
}
