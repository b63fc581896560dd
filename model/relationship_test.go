package model

import (
	"testing"
	"time"

	"github.com/gocamtools/gocam/vocabulary/eco"
	"github.com/gocamtools/gocam/vocabulary/ro"
)

func testEvidence(t *testing.T, code string, orcid string) *Evidence {
	t.Helper()
	e, err := NewEvidence(code, eco.Label(code), testContributor(orcid))
	if err != nil {
		t.Fatalf("build evidence: %v", err)
	}
	return e
}

func testActivity(t *testing.T, id, label string) *Activity {
	t.Helper()
	a, err := NewActivity(NewTerm(id, label, MolecularFunctionRoot()))
	if err != nil {
		t.Fatalf("build activity: %v", err)
	}
	return a
}

func testContext(t *testing.T, id, label string, aspect *Term) *Context {
	t.Helper()
	c, err := NewContext(NewTerm(id, label, aspect))
	if err != nil {
		t.Fatalf("build context: %v", err)
	}
	return c
}

func TestEvidenceAttachment(t *testing.T) {
	activity := testActivity(t, "GO:0016301", "kinase activity")
	product := NewGeneProduct("UniProtKB:P31749", "AKT1", NewTaxon("NCBITaxon:9606", "Homo sapiens"))
	assoc := NewActivityAssociation(ro.EnabledBy, ro.Label(ro.EnabledBy), activity, product)

	e1 := testEvidence(t, eco.DirectAssay, "0000-0001-0000-0001")
	assoc.AddEvidence(e1)
	if !assoc.HasEvidence(e1.ID) {
		t.Fatal("evidence should be attached")
	}

	t.Run("add with existing id overwrites", func(t *testing.T) {
		replacement := testEvidence(t, eco.DirectAssay, "0000-0002-0000-0002")
		assoc.AddEvidence(replacement)

		evidences := assoc.Evidences()
		if len(evidences) != 1 {
			t.Fatalf("expected 1 evidence record, got %d", len(evidences))
		}
		if !evidences[0].HasContributor("0000-0002-0000-0002") {
			t.Error("upsert should have replaced the record")
		}
	})

	t.Run("remove absent id fails without mutation", func(t *testing.T) {
		before := len(assoc.Evidences())
		if assoc.RemoveEvidence("ECO:9999999") {
			t.Error("removing an absent evidence id should fail")
		}
		if len(assoc.Evidences()) != before {
			t.Error("failed removal must not mutate")
		}
	})

	t.Run("remove present id succeeds", func(t *testing.T) {
		if !assoc.RemoveEvidence(eco.DirectAssay) {
			t.Error("removing an attached evidence id should succeed")
		}
		if assoc.HasEvidence(eco.DirectAssay) {
			t.Error("evidence still attached after removal")
		}
	})
}

func TestActivityAssociationSame(t *testing.T) {
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	taxon := NewTaxon("NCBITaxon:9606", "Homo sapiens")

	build := func() *ActivityAssociation {
		activity := testActivity(t, "GO:0016301", "kinase activity")
		product := NewGeneProduct("UniProtKB:P31749", "AKT1", taxon)
		assoc := NewActivityAssociation(ro.EnabledBy, ro.Label(ro.EnabledBy), activity, product)
		e := testEvidence(t, eco.DirectAssay, "0000-0001-0000-0001")
		e.Date = date
		assoc.AddEvidence(e)
		return assoc
	}

	a := build()
	b := build()
	if !a.Same(b) {
		t.Error("structurally equal associations should be same")
	}
	if a.AssociationID == b.AssociationID {
		t.Error("association instances should have distinct ids")
	}

	t.Run("gene product compared via taxon", func(t *testing.T) {
		c := build()
		c.GeneProduct = NewGeneProduct("UniProtKB:P31749", "AKT1", NewTaxon("NCBITaxon:10090", "Mus musculus"))
		if a.Same(c) {
			t.Error("taxon change must flip Same to false")
		}
	})

	t.Run("evidence set compared", func(t *testing.T) {
		c := build()
		c.AddEvidence(testEvidence(t, eco.MutantPhenotype, "0000-0001-0000-0001"))
		if a.Same(c) {
			t.Error("evidence set change must flip Same to false")
		}
	})
}

func TestContextTargetAssociationSame(t *testing.T) {
	membrane := testContext(t, "GO:0005886", "plasma membrane", CellularComponentRoot())

	a := NewContextTargetAssociation(ro.OccursIn, ro.Label(ro.OccursIn), membrane)
	b := NewContextTargetAssociation(ro.OccursIn, ro.Label(ro.OccursIn), membrane)
	if !a.Same(b) {
		t.Error("structurally equal context associations should be same")
	}

	nucleus := testContext(t, "GO:0005634", "nucleus", CellularComponentRoot())
	c := NewContextTargetAssociation(ro.OccursIn, ro.Label(ro.OccursIn), nucleus)
	if a.Same(c) {
		t.Error("different targets should not be same")
	}

	d := NewContextTargetAssociation(ro.PartOf, ro.Label(ro.PartOf), membrane)
	if a.Same(d) {
		t.Error("different relations should not be same")
	}
}
