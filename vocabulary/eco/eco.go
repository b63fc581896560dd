// Package eco provides Evidence and Conclusion Ontology vocabulary
// constants. ECO classes identify the kind of evidence backing an
// assertion in a GO-CAM model.
package eco

// Common evidence class CURIEs.
const (
	// DirectAssay is evidence inferred from a direct assay, ECO:0000314.
	DirectAssay = "ECO:0000314"

	// MutantPhenotype is evidence inferred from a mutant phenotype,
	// ECO:0000315.
	MutantPhenotype = "ECO:0000315"

	// GeneticInteraction is evidence inferred from a genetic interaction,
	// ECO:0000316.
	GeneticInteraction = "ECO:0000316"

	// PhysicalInteraction is evidence inferred from a physical interaction,
	// ECO:0000353.
	PhysicalInteraction = "ECO:0000353"

	// SequenceOrthology is evidence inferred from sequence orthology,
	// ECO:0000266.
	SequenceOrthology = "ECO:0000266"

	// TraceableAuthorStatement is a traceable author statement, ECO:0000304.
	TraceableAuthorStatement = "ECO:0000304"
)

// Labels maps evidence class CURIEs to their ECO labels.
var Labels = map[string]string{
	DirectAssay:              "direct assay evidence used in manual assertion",
	MutantPhenotype:          "mutant phenotype evidence used in manual assertion",
	GeneticInteraction:       "genetic interaction evidence used in manual assertion",
	PhysicalInteraction:      "physical interaction evidence used in manual assertion",
	SequenceOrthology:        "sequence orthology evidence used in manual assertion",
	TraceableAuthorStatement: "traceable author statement",
}

// Label returns the ECO label for an evidence class CURIE, or the CURIE
// itself when the class is not in the vocabulary.
func Label(curie string) string {
	if l, ok := Labels[curie]; ok {
		return l
	}
	return curie
}
