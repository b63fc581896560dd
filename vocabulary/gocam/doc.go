// Package gocam provides the dotted predicate vocabulary used when
// publishing GO-CAM entities to the knowledge graph.
//
// Predicates use three-level dotted notation (domain.category.property) so
// NATS wildcard queries like "gocam.activity.*" work against the graph
// ingestion stream. PredicateIRI translates each dotted predicate to a
// standard OBO or Dublin Core IRI for RDF export.
package gocam
