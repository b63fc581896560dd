package model

import (
	"errors"
	"testing"
	"time"

	"github.com/gocamtools/gocam/vocabulary/eco"
)

func testContributor(orcid string) *Contributor {
	return NewContributor(orcid, "Curator "+orcid)
}

func TestNewEvidenceRequiresContributor(t *testing.T) {
	_, err := NewEvidence(eco.DirectAssay, eco.Label(eco.DirectAssay))
	if !errors.Is(err, ErrNoContributor) {
		t.Fatalf("expected ErrNoContributor, got %v", err)
	}

	e, err := NewEvidence(eco.DirectAssay, eco.Label(eco.DirectAssay), testContributor("0000-0001-0000-0001"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ContributorCount() != 1 {
		t.Errorf("expected 1 contributor, got %d", e.ContributorCount())
	}
	if e.Date.IsZero() {
		t.Error("date should default to creation time")
	}
}

func TestEvidenceAddContributor(t *testing.T) {
	e, err := NewEvidence(eco.DirectAssay, "direct assay", testContributor("0000-0001-0000-0001"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !e.AddContributor(testContributor("0000-0002-0000-0002")) {
		t.Error("adding a new contributor should succeed")
	}
	if e.ContributorCount() != 2 {
		t.Errorf("expected 2 contributors, got %d", e.ContributorCount())
	}

	// Duplicate ORCID: first write wins, count unchanged.
	if e.AddContributor(NewContributor("0000-0002-0000-0002", "Someone Else")) {
		t.Error("duplicate ORCID should be rejected")
	}
	if e.ContributorCount() != 2 {
		t.Errorf("contributor count changed on rejected add: %d", e.ContributorCount())
	}
}

func TestEvidenceSame(t *testing.T) {
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	build := func(orcids ...string) *Evidence {
		cs := make([]*Contributor, len(orcids))
		for i, o := range orcids {
			cs[i] = testContributor(o)
		}
		e, err := NewEvidence(eco.DirectAssay, "direct assay", cs...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e.Date = date
		return e
	}

	a := build("0000-0001-0000-0001", "0000-0002-0000-0002")

	if !a.Same(a) {
		t.Error("evidence should be same as itself")
	}

	t.Run("contributor order irrelevant", func(t *testing.T) {
		b := build("0000-0002-0000-0002", "0000-0001-0000-0001")
		if !a.Same(b) {
			t.Error("contributor insertion order must not matter")
		}
	})

	t.Run("contributor set membership compared", func(t *testing.T) {
		b := build("0000-0001-0000-0001", "0000-0003-0000-0003")
		if a.Same(b) {
			t.Error("different contributor sets should not be same")
		}
	})

	t.Run("date compared", func(t *testing.T) {
		b := build("0000-0001-0000-0001", "0000-0002-0000-0002")
		b.Date = date.Add(time.Hour)
		if a.Same(b) {
			t.Error("different dates should not be same")
		}
	})

	t.Run("code compared", func(t *testing.T) {
		b := build("0000-0001-0000-0001", "0000-0002-0000-0002")
		b.ID = eco.MutantPhenotype
		if a.Same(b) {
			t.Error("different evidence classes should not be same")
		}
	})
}
