package model

import (
	"errors"
	"testing"

	"github.com/gocamtools/gocam/vocabulary/ro"
)

func TestNewActivityAspectGuard(t *testing.T) {
	tests := []struct {
		name    string
		term    *Term
		wantErr bool
	}{
		{
			name: "molecular function term accepted",
			term: NewTerm("GO:0016301", "kinase activity", MolecularFunctionRoot()),
		},
		{
			name:    "biological process term rejected",
			term:    NewTerm("GO:0007165", "signal transduction", BiologicalProcessRoot()),
			wantErr: true,
		},
		{
			name:    "cellular component term rejected",
			term:    NewTerm("GO:0005886", "plasma membrane", CellularComponentRoot()),
			wantErr: true,
		},
		{
			name:    "term without aspect rejected",
			term:    NewTerm("GO:0016301", "kinase activity", nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewActivity(tt.term)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAspect) {
					t.Fatalf("expected ErrInvalidAspect, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Kind != KindActivity {
				t.Errorf("kind = %s, want %s", a.Kind, KindActivity)
			}
			if !a.IsMolecularFunction() {
				t.Error("activity must keep its molecular function aspect")
			}
		})
	}
}

func TestNewContextAspectGuard(t *testing.T) {
	tests := []struct {
		name    string
		term    *Term
		wantErr bool
	}{
		{
			name:    "molecular function term rejected",
			term:    NewTerm("GO:0016301", "kinase activity", MolecularFunctionRoot()),
			wantErr: true,
		},
		{
			name: "biological process term accepted",
			term: NewTerm("GO:0007165", "signal transduction", BiologicalProcessRoot()),
		},
		{
			name: "cellular component term accepted",
			term: NewTerm("GO:0005886", "plasma membrane", CellularComponentRoot()),
		},
		{
			name: "chemical entity without aspect accepted",
			term: NewTerm("CHEBI:15422", "ATP", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContext(tt.term)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAspect) {
					t.Fatalf("expected ErrInvalidAspect, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Kind != KindContext {
				t.Errorf("kind = %s, want %s", c.Kind, KindContext)
			}
		})
	}
}

func TestActivitySetEnabledByOverwrites(t *testing.T) {
	activity := testActivity(t, "GO:0016301", "kinase activity")
	taxon := NewTaxon("NCBITaxon:9606", "Homo sapiens")

	first := NewActivityAssociation(ro.EnabledBy, ro.Label(ro.EnabledBy), activity,
		NewGeneProduct("UniProtKB:P31749", "AKT1", taxon))
	activity.SetEnabledBy(first)
	if activity.EnabledBy() != first {
		t.Fatal("enabling association not set")
	}

	second := NewActivityAssociation(ro.EnabledBy, ro.Label(ro.EnabledBy), activity,
		NewGeneProduct("UniProtKB:P27986", "PIK3R1", taxon))
	activity.SetEnabledBy(second)
	if activity.EnabledBy() != second {
		t.Error("SetEnabledBy must overwrite unconditionally")
	}
}

func TestActivityContextLinks(t *testing.T) {
	activity := testActivity(t, "GO:0016301", "kinase activity")
	membrane := testContext(t, "GO:0005886", "plasma membrane", CellularComponentRoot())
	signaling := testContext(t, "GO:0007165", "signal transduction", BiologicalProcessRoot())

	occursIn := NewContextTargetAssociation(ro.OccursIn, ro.Label(ro.OccursIn), membrane)
	partOf := NewContextTargetAssociation(ro.PartOf, ro.Label(ro.PartOf), signaling)

	if !activity.AddContext(occursIn) {
		t.Fatal("first AddContext should succeed")
	}
	if !activity.AddContext(partOf) {
		t.Fatal("second AddContext should succeed")
	}
	if activity.ContextCount() != 2 {
		t.Fatalf("expected 2 context links, got %d", activity.ContextCount())
	}

	t.Run("duplicate association id rejected", func(t *testing.T) {
		if activity.AddContext(occursIn) {
			t.Error("re-adding the same association should fail")
		}
		if activity.ContextCount() != 2 {
			t.Error("failed add must not mutate")
		}
	})

	t.Run("parallel links with same relation allowed", func(t *testing.T) {
		nucleus := testContext(t, "GO:0005634", "nucleus", CellularComponentRoot())
		second := NewContextTargetAssociation(ro.OccursIn, ro.Label(ro.OccursIn), nucleus)
		if !activity.AddContext(second) {
			t.Error("distinct association instances may share a relation")
		}
		if !activity.RemoveContext(second.AssociationID) {
			t.Error("cleanup removal should succeed")
		}
	})

	t.Run("remove absent id fails without mutation", func(t *testing.T) {
		before := activity.ContextCount()
		if activity.RemoveContext("no-such-association") {
			t.Error("removing an absent association should fail")
		}
		if activity.ContextCount() != before {
			t.Error("failed removal must not mutate")
		}
	})

	t.Run("remove present id succeeds", func(t *testing.T) {
		if !activity.RemoveContext(occursIn.AssociationID) {
			t.Error("removal should succeed")
		}
		if activity.HasContext(occursIn.AssociationID) {
			t.Error("association still attached after removal")
		}
	})
}
