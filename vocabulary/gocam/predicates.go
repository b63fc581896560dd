package gocam

// Model predicates describe the aggregate model entity.
const (
	// ModelTitle is the model title.
	ModelTitle = "gocam.model.title"

	// ModelState is the editorial state of the model.
	ModelState = "gocam.model.state"

	// ModelContributor links the model to a contributor ORCID.
	ModelContributor = "gocam.model.contributor"

	// ModelCreatedAt is the RFC3339 creation timestamp.
	ModelCreatedAt = "gocam.model.created_at"

	// ModelModifiedAt is the RFC3339 last-modification timestamp.
	ModelModifiedAt = "gocam.model.modified_at"

	// ModelActivity links the model to an activity entity.
	ModelActivity = "gocam.model.activity"
)

// Activity predicates describe a single molecular activity.
const (
	// ActivityTerm is the molecular-function term CURIE.
	ActivityTerm = "gocam.activity.term"

	// ActivityLabel is the term label.
	ActivityLabel = "gocam.activity.label"

	// ActivityEnabledBy links the activity to its enabling gene product.
	ActivityEnabledBy = "gocam.activity.enabled_by"

	// ActivityContext links the activity to a context term CURIE.
	ActivityContext = "gocam.activity.context"

	// ActivityCauses is the generic causal link between activities.
	// Typed edges publish their RO relation CURIE as the predicate instead.
	ActivityCauses = "gocam.activity.causes"
)

// Context and provenance predicates.
const (
	// ContextTerm is the context term CURIE.
	ContextTerm = "gocam.context.term"

	// ContextAspect is the aspect root CURIE of the context term.
	ContextAspect = "gocam.context.aspect"

	// EvidenceCode is the ECO class CURIE of an evidence record.
	EvidenceCode = "gocam.evidence.code"

	// EvidenceDate is the RFC3339 evidence date.
	EvidenceDate = "gocam.evidence.date"

	// EvidenceContributor links evidence to a contributor ORCID.
	EvidenceContributor = "gocam.evidence.contributor"
)

// PredicateIRIMap maps dotted predicates to standard IRIs for RDF export.
var PredicateIRIMap = map[string]string{
	ModelTitle:          "http://purl.org/dc/terms/title",
	ModelContributor:    "http://purl.org/dc/terms/contributor",
	ModelCreatedAt:      "http://purl.org/dc/terms/created",
	ModelModifiedAt:     "http://purl.org/dc/terms/modified",
	ActivityEnabledBy:   "http://purl.obolibrary.org/obo/RO_0002333",
	ActivityContext:     "http://purl.obolibrary.org/obo/BFO_0000066",
	ActivityCauses:      "http://purl.obolibrary.org/obo/RO_0002411",
	EvidenceDate:        "http://purl.org/dc/terms/date",
	EvidenceContributor: "http://purl.org/dc/terms/contributor",
}

// Namespace is the fallback IRI prefix for unmapped dotted predicates.
const Namespace = "http://model.geneontology.org/vocabulary/"

// PredicateIRI returns the standard IRI for a dotted predicate, falling
// back to the gocam namespace when no mapping exists.
func PredicateIRI(predicate string) string {
	if iri, ok := PredicateIRIMap[predicate]; ok {
		return iri
	}
	return Namespace + predicate
}
