package geneontology

import "testing"

func TestIRI(t *testing.T) {
	tests := []struct {
		curie string
		want  string
	}{
		{"GO:0003674", "http://purl.obolibrary.org/obo/GO_0003674"},
		{"RO:0002413", "http://purl.obolibrary.org/obo/RO_0002413"},
		{"BFO:0000066", "http://purl.obolibrary.org/obo/BFO_0000066"},
		{"http://purl.obolibrary.org/obo/GO_0016301", "http://purl.obolibrary.org/obo/GO_0016301"},
	}

	for _, tt := range tests {
		t.Run(tt.curie, func(t *testing.T) {
			if got := IRI(tt.curie); got != tt.want {
				t.Errorf("IRI(%q) = %q, want %q", tt.curie, got, tt.want)
			}
		})
	}
}

func TestCurie(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"http://purl.obolibrary.org/obo/GO_0003674", "GO:0003674"},
		{"http://purl.obolibrary.org/obo/NCBITaxon_9606", "NCBITaxon:9606"},
		{"https://example.org/other", "https://example.org/other"},
	}

	for _, tt := range tests {
		t.Run(tt.iri, func(t *testing.T) {
			if got := Curie(tt.iri); got != tt.want {
				t.Errorf("Curie(%q) = %q, want %q", tt.iri, got, tt.want)
			}
		})
	}
}

func TestCurieRoundtrip(t *testing.T) {
	curies := []string{"GO:0003674", "GO:0008150", "GO:0005575", "ECO:0000314"}
	for _, c := range curies {
		if got := Curie(IRI(c)); got != c {
			t.Errorf("Curie(IRI(%q)) = %q", c, got)
		}
	}
}

func TestIsAspectRoot(t *testing.T) {
	for _, root := range []string{MolecularFunction, BiologicalProcess, CellularComponent} {
		if !IsAspectRoot(root) {
			t.Errorf("IsAspectRoot(%q) = false", root)
		}
	}
	if IsAspectRoot("GO:0016301") {
		t.Error("IsAspectRoot should reject non-root terms")
	}
}

func TestModelIRI(t *testing.T) {
	if got := ModelIRI("gomodel:5fadbcf000000001"); got != "http://model.geneontology.org/5fadbcf000000001" {
		t.Errorf("unexpected model IRI: %q", got)
	}
	if got := ModelIRI("5fadbcf000000001"); got != "http://model.geneontology.org/5fadbcf000000001" {
		t.Errorf("unexpected model IRI without prefix: %q", got)
	}
}
