package geneontology

import "strings"

// OBONamespace is the base IRI prefix for OBO Foundry term purls.
const OBONamespace = "http://purl.obolibrary.org/obo/"

// ModelNamespace is the base IRI for GO-CAM model instances.
const ModelNamespace = "http://model.geneontology.org/"

// Ontology aspect root CURIEs. Every GO term descends from exactly one of
// these three roots; a term's aspect reference points at the root it
// belongs under.
const (
	// MolecularFunction is the molecular_function root, GO:0003674.
	MolecularFunction = "GO:0003674"

	// BiologicalProcess is the biological_process root, GO:0008150.
	BiologicalProcess = "GO:0008150"

	// CellularComponent is the cellular_component root, GO:0005575.
	CellularComponent = "GO:0005575"
)

// Aspect root labels as published by the Gene Ontology.
const (
	MolecularFunctionLabel = "molecular_function"
	BiologicalProcessLabel = "biological_process"
	CellularComponentLabel = "cellular_component"
)

// AspectLabels maps the three aspect root CURIEs to their labels.
var AspectLabels = map[string]string{
	MolecularFunction: MolecularFunctionLabel,
	BiologicalProcess: BiologicalProcessLabel,
	CellularComponent: CellularComponentLabel,
}

// IsAspectRoot reports whether a CURIE names one of the three ontology
// aspect roots.
func IsAspectRoot(curie string) bool {
	_, ok := AspectLabels[curie]
	return ok
}

// IRI expands an OBO CURIE to its purl IRI.
// Example: "GO:0003674" -> "http://purl.obolibrary.org/obo/GO_0003674".
// Strings that already look like IRIs are returned unchanged.
func IRI(curie string) string {
	if strings.HasPrefix(curie, "http://") || strings.HasPrefix(curie, "https://") {
		return curie
	}
	return OBONamespace + strings.Replace(curie, ":", "_", 1)
}

// Curie contracts a purl IRI back to OBO CURIE notation.
// Strings outside the OBO namespace are returned unchanged.
func Curie(iri string) string {
	local, ok := strings.CutPrefix(iri, OBONamespace)
	if !ok {
		return iri
	}
	return strings.Replace(local, "_", ":", 1)
}

// ModelIRI returns the instance IRI for a GO-CAM model id.
// Example: "gomodel:5fadbcf000000001" -> "http://model.geneontology.org/5fadbcf000000001".
func ModelIRI(modelID string) string {
	local := strings.TrimPrefix(modelID, "gomodel:")
	return ModelNamespace + local
}
