// Package ro provides Relations Ontology vocabulary constants for GO-CAM
// models.
//
// Two relation families matter to a causal activity model:
//
//   - Causal relations (RO:0002411 and descendants) connect one activity to
//     another and become the typed edges of the model's multigraph.
//   - Contextual relations (occurs_in, part_of, has_input, has_output) link
//     an activity to the process, location, or chemical entities that
//     qualify it.
//
// EnabledBy (RO:0002333) stands apart: it links an activity to the gene
// product that carries it out.
package ro
