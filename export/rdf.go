package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gocamtools/gocam/model"
	"github.com/gocamtools/gocam/vocabulary/geneontology"
)

// rdfType is the rdf:type predicate IRI.
const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// rdfsLabel is the rdfs:label predicate IRI.
const rdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"

// Dublin Core predicates used for model metadata.
const (
	dcTitle       = "http://purl.org/dc/terms/title"
	dcCreated     = "http://purl.org/dc/terms/created"
	dcModified    = "http://purl.org/dc/terms/modified"
	dcContributor = "http://purl.org/dc/terms/contributor"
)

// orcidNamespace prefixes contributor ORCIDs into resolvable IRIs.
const orcidNamespace = "https://orcid.org/"

// triple is one RDF statement. IRI objects render as <...>, literal
// objects as typed or plain literals.
type triple struct {
	subject   string
	predicate string
	object    any
	objectIRI bool
}

// RDFExporter serializes models to RDF. Provenance records stay with the
// document codec; the RDF view carries the ontology-facing structure of
// the model (terms, enablers, contexts, causal edges).
type RDFExporter struct {
	prefixes map[string]string
}

// NewRDFExporter creates an RDF exporter with the standard prefixes.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{prefixes: defaultPrefixes()}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
		"owl":     "http://www.w3.org/2002/07/owl#",
		"xsd":     "http://www.w3.org/2001/XMLSchema#",
		"dc":      "http://purl.org/dc/terms/",
		"obo":     geneontology.OBONamespace,
		"gomodel": geneontology.ModelNamespace,
		"orcid":   orcidNamespace,
	}
}

// SetPrefix sets a namespace prefix for Turtle and JSON-LD output.
func (e *RDFExporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// Export serializes a model to the requested RDF format.
func (e *RDFExporter) Export(m *model.GOCam, format Format) (string, error) {
	triples := modelTriples(m)
	switch format {
	case FormatTurtle:
		return e.toTurtle(triples), nil
	case FormatNTriples:
		return toNTriples(triples), nil
	case FormatJSONLD:
		return e.toJSONLD(triples), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// modelTriples flattens a model into RDF statements. Each activity is an
// individual under the model IRI, typed by its molecular-function term.
func modelTriples(m *model.GOCam) []triple {
	modelIRI := geneontology.ModelIRI(m.ID)

	triples := []triple{
		{modelIRI, dcTitle, m.Title, false},
		{modelIRI, dcCreated, m.CreationDate.Format(time.RFC3339), false},
		{modelIRI, dcModified, m.ModifiedDate.Format(time.RFC3339), false},
	}
	for _, c := range m.Contributors() {
		triples = append(triples, triple{modelIRI, dcContributor, orcidNamespace + c.ID, true})
	}

	for _, a := range m.Activities() {
		subject := individualIRI(m.ID, a.ID)
		triples = append(triples,
			triple{modelIRI, geneontology.ModelNamespace + "hasActivity", subject, true},
			triple{subject, rdfType, geneontology.IRI(a.ID), true},
			triple{subject, rdfsLabel, a.Label, false},
		)
		if eb := a.EnabledBy(); eb != nil && eb.GeneProduct != nil {
			triples = append(triples, triple{subject, geneontology.IRI(eb.ID), entityIRI(eb.GeneProduct.ID), true})
		}
		for _, link := range a.Contexts() {
			if link.Context == nil {
				continue
			}
			triples = append(triples, triple{subject, geneontology.IRI(link.ID), geneontology.IRI(link.Context.ID), true})
		}
	}

	for _, edge := range m.Edges() {
		triples = append(triples, triple{
			individualIRI(m.ID, edge.Source),
			geneontology.IRI(edge.Relation),
			individualIRI(m.ID, edge.Target),
			true,
		})
	}

	return triples
}

// individualIRI mints the model-scoped IRI of an activity individual.
func individualIRI(modelID, termCURIE string) string {
	return geneontology.ModelIRI(modelID) + "/" + strings.Replace(termCURIE, ":", "_", 1)
}

// oboPrefixes are CURIE prefixes resolved through OBO purls; everything
// else resolves through identifiers.org.
var oboPrefixes = map[string]bool{
	"GO": true, "RO": true, "BFO": true, "ECO": true,
	"CHEBI": true, "CL": true, "UBERON": true, "NCBITaxon": true,
}

// entityIRI resolves a CURIE to an IRI, routing non-OBO prefixes such as
// UniProtKB through identifiers.org.
func entityIRI(curie string) string {
	prefix, _, ok := strings.Cut(curie, ":")
	if ok && !oboPrefixes[prefix] && !strings.HasPrefix(curie, "http") {
		return "http://identifiers.org/" + strings.Replace(curie, ":", "/", 1)
	}
	return geneontology.IRI(curie)
}

// toTurtle serializes to Turtle, grouping statements by subject.
func (e *RDFExporter) toTurtle(triples []triple) string {
	var sb strings.Builder

	prefixKeys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		prefixKeys = append(prefixKeys, k)
	}
	sort.Strings(prefixKeys)
	for _, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, group := range groupBySubject(triples) {
		sb.WriteString(fmt.Sprintf("<%s>\n", group.subject))
		for i, t := range group.triples {
			terminator := " ;"
			if i == len(group.triples)-1 {
				terminator = " ."
			}
			sb.WriteString(fmt.Sprintf("    <%s> %s%s\n", t.predicate, formatObject(t), terminator))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// toNTriples serializes to N-Triples, one statement per line.
func toNTriples(triples []triple) string {
	var sb strings.Builder
	for _, t := range triples {
		sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", t.subject, t.predicate, formatObjectNTriples(t)))
	}
	return sb.String()
}

// toJSONLD serializes to JSON-LD with one graph node per subject.
func (e *RDFExporter) toJSONLD(triples []triple) string {
	var sb strings.Builder

	sb.WriteString("{\n")
	sb.WriteString("  \"@context\": {\n")
	prefixKeys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		prefixKeys = append(prefixKeys, k)
	}
	sort.Strings(prefixKeys)
	for i, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("    %q: %q", prefix, e.prefixes[prefix]))
		if i < len(prefixKeys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  },\n")
	sb.WriteString("  \"@graph\": [\n")

	groups := groupBySubject(triples)
	for i, group := range groups {
		sb.WriteString("    {\n")
		sb.WriteString(fmt.Sprintf("      \"@id\": %q", group.subject))
		for _, t := range group.triples {
			sb.WriteString(",\n")
			sb.WriteString(fmt.Sprintf("      %q: %s", t.predicate, formatObjectJSONLD(t)))
		}
		sb.WriteString("\n    }")
		if i < len(groups)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ]\n")
	sb.WriteString("}\n")

	return sb.String()
}

type subjectGroup struct {
	subject string
	triples []triple
}

// groupBySubject buckets triples per subject, preserving first-seen
// subject order and statement order within a subject.
func groupBySubject(triples []triple) []subjectGroup {
	index := make(map[string]int)
	var groups []subjectGroup
	for _, t := range triples {
		i, ok := index[t.subject]
		if !ok {
			i = len(groups)
			index[t.subject] = i
			groups = append(groups, subjectGroup{subject: t.subject})
		}
		groups[i].triples = append(groups[i].triples, t)
	}
	return groups
}

// formatObject formats an object value for Turtle output.
func formatObject(t triple) string {
	if t.objectIRI {
		return fmt.Sprintf("<%v>", t.object)
	}
	switch v := t.object.(type) {
	case string:
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^xsd:dateTime", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case float32, float64:
		return fmt.Sprintf("\"%f\"^^xsd:decimal", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(t triple) string {
	if t.objectIRI {
		return fmt.Sprintf("<%v>", t.object)
	}
	switch v := t.object.(type) {
	case string:
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#dateTime>", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case float32, float64:
		return fmt.Sprintf("\"%f\"^^<http://www.w3.org/2001/XMLSchema#decimal>", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectJSONLD formats an object value for JSON-LD output.
func formatObjectJSONLD(t triple) string {
	if t.objectIRI {
		return fmt.Sprintf("{\"@id\": %q}", t.object)
	}
	switch v := t.object.(type) {
	case string:
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("{\"@value\": %q, \"@type\": \"xsd:dateTime\"}", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%f", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
