// Package model implements the in-memory GO-CAM data model: typed ontology
// entities, evidenced associations, and the causal multigraph of molecular
// activities that makes up one model.
//
// # Roles
//
// Activities and contexts are both ontology terms; what separates them is
// the aspect of the term. NewActivity accepts only molecular-function
// terms, NewContext accepts everything but. The constructors are the single
// enforcement point for this rule — once built, a role is never re-checked.
//
// # Duplicate policy
//
// Collections are explicit about duplicates rather than uniform:
//
//   - Evidence contributors, activity context links, registered activities,
//     and catalog contexts insert-or-fail: adding an id that is already
//     present returns false and mutates nothing.
//   - Evidence attachment on a relationship upserts: re-adding an evidence
//     id replaces the record.
//   - The model contributor registry upserts: registering the same ORCID
//     twice keeps the latest record.
//
// # Concurrency
//
// A GOCam is a single-owner structure. Every operation is a synchronous
// mutation or pure query with no internal locking; a host that shares one
// model across goroutines must serialize access itself.
package model
