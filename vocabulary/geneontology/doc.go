// Package geneontology provides Gene Ontology vocabulary constants for
// GO-CAM models.
//
// The Gene Ontology partitions its terms under three root classes, one per
// ontology aspect:
//
//	GO:0003674  molecular_function
//	GO:0008150  biological_process
//	GO:0005575  cellular_component
//
// The aspect of a term decides its role in a causal activity model:
// molecular-function terms become activities, everything else is context
// (a process the activity is part of, a location it occurs in, an input or
// output it touches).
//
// Identifiers use OBO CURIE notation ("GO:0003674"). IRI and Curie convert
// between CURIEs and their purl.obolibrary.org expansion for RDF export.
package geneontology
