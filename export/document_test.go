package export

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocamtools/gocam/model"
	"github.com/gocamtools/gocam/vocabulary/eco"
	"github.com/gocamtools/gocam/vocabulary/geneontology"
	"github.com/gocamtools/gocam/vocabulary/ro"
)

func buildModel(t *testing.T) *model.GOCam {
	t.Helper()

	m := model.NewGOCam("gomodel:5fadbcf000000001", "AKT1 kinase cascade")

	curator := model.NewContributor("0000-0001-0000-0001", "Test Curator",
		model.NewGroup("http://geneontology.org", "GO Central"))
	m.AddContributor(curator)

	membrane, err := model.NewContext(model.NewTerm("GO:0005886", "plasma membrane", model.CellularComponentRoot()))
	require.NoError(t, err)
	signaling, err := model.NewContext(model.NewTerm("GO:0007165", "signal transduction", model.BiologicalProcessRoot()))
	require.NoError(t, err)
	atp, err := model.NewContext(model.NewTerm("CHEBI:15422", "ATP", nil))
	require.NoError(t, err)
	require.True(t, m.AddContext(membrane))
	require.True(t, m.AddContext(signaling))
	require.True(t, m.AddContext(atp))

	a1, err := model.NewActivity(model.NewTerm("GO:0016301", "kinase activity", model.MolecularFunctionRoot()))
	require.NoError(t, err)
	a2, err := model.NewActivity(model.NewTerm("GO:0004674", "protein serine/threonine kinase activity", model.MolecularFunctionRoot()))
	require.NoError(t, err)

	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	directAssay, err := model.NewEvidence(eco.DirectAssay, eco.Label(eco.DirectAssay), curator)
	require.NoError(t, err)
	directAssay.Date = date

	taxon := model.NewTaxon("NCBITaxon:9606", "Homo sapiens")
	product := model.NewGeneProduct("UniProtKB:P31749", "AKT1", taxon)
	enabled := model.NewActivityAssociation(ro.EnabledBy, ro.Label(ro.EnabledBy), a1, product)
	enabled.AddEvidence(directAssay)
	a1.SetEnabledBy(enabled)

	require.True(t, m.AddActivity(a1))
	require.True(t, m.AddActivity(a2))

	occursIn := model.NewContextTargetAssociation(ro.OccursIn, ro.Label(ro.OccursIn), membrane)
	mutant, err := model.NewEvidence(eco.MutantPhenotype, eco.Label(eco.MutantPhenotype), curator)
	require.NoError(t, err)
	mutant.Date = date
	occursIn.AddEvidence(mutant)
	require.True(t, m.AttachContext(a1.ID, occursIn))

	partOf := model.NewContextTargetAssociation(ro.PartOf, ro.Label(ro.PartOf), signaling)
	require.True(t, m.AttachContext(a2.ID, partOf))

	hasInput := model.NewContextTargetAssociation(ro.HasInput, ro.Label(ro.HasInput), atp)
	require.True(t, m.AttachContext(a1.ID, hasInput))

	require.True(t, m.AddCausalRelationship(a1.ID, a2.ID, ro.ProvidesInputFor))
	// Second parallel edge of the same type must survive the round trip.
	require.True(t, m.AddCausalRelationship(a1.ID, a2.ID, ro.ProvidesInputFor))
	require.True(t, m.AddCausalRelationship(a2.ID, a1.ID, ro.DirectlyNegativelyRegulates))

	return m
}

func TestRoundTrip(t *testing.T) {
	m := buildModel(t)

	rebuilt, err := Decode(Encode(m))
	require.NoError(t, err)
	assert.True(t, rebuilt.Same(m), "decoded model must be structurally equal to the original")
	assert.True(t, m.Same(rebuilt), "structural equality must be symmetric")
}

func TestRoundTripSerialized(t *testing.T) {
	m := buildModel(t)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := EncodeModel(m, format)
			require.NoError(t, err)

			rebuilt, err := DecodeModel(data, format)
			require.NoError(t, err)
			assert.True(t, rebuilt.Same(m))
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	m := buildModel(t)

	first, err := Marshal(Encode(m), FormatJSON)
	require.NoError(t, err)
	second, err := Marshal(Encode(m), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	base := func(t *testing.T) *Document { return Encode(buildModel(t)) }

	t.Run("molecular function context", func(t *testing.T) {
		doc := base(t)
		doc.Contexts = append(doc.Contexts, ContextRecord{
			Term:   "GO:0016301",
			Label:  "kinase activity",
			Aspect: geneontology.MolecularFunction,
		})
		_, err := Decode(doc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidAspect))
	})

	t.Run("non molecular function activity", func(t *testing.T) {
		doc := base(t)
		doc.Activities = append(doc.Activities, ActivityRecord{
			Term:   "GO:0007165",
			Label:  "signal transduction",
			Aspect: geneontology.BiologicalProcess,
		})
		_, err := Decode(doc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidAspect))
	})

	t.Run("duplicate activity", func(t *testing.T) {
		doc := base(t)
		doc.Activities = append(doc.Activities, doc.Activities[0])
		_, err := Decode(doc)
		assert.ErrorContains(t, err, "duplicate id")
	})

	t.Run("edge with unregistered endpoint", func(t *testing.T) {
		doc := base(t)
		doc.Edges = append(doc.Edges, EdgeRecord{
			Source:   doc.Activities[0].Term,
			Target:   "GO:0000000",
			Relation: ro.ProvidesInputFor,
		})
		_, err := Decode(doc)
		assert.ErrorContains(t, err, "endpoint not registered")
	})

	t.Run("context link with uncataloged target", func(t *testing.T) {
		doc := base(t)
		doc.Activities[0].Contexts = append(doc.Activities[0].Contexts, ContextLinkRecord{
			Relation: ro.OccursIn,
			Target:   "GO:0000000",
		})
		_, err := Decode(doc)
		assert.ErrorContains(t, err, "uncataloged")
	})

	t.Run("evidence without contributors", func(t *testing.T) {
		doc := base(t)
		doc.Activities[0].EnabledBy.Evidences = append(doc.Activities[0].EnabledBy.Evidences, EvidenceRecord{
			Code: eco.DirectAssay,
			Date: time.Now(),
		})
		_, err := Decode(doc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNoContributor))
	})
}

func TestDecodeGeneratesAssociationIDs(t *testing.T) {
	doc := &Document{
		ID:    "gomodel:minimal01",
		Title: "minimal",
		Contexts: []ContextRecord{
			{Term: "GO:0005886", Label: "plasma membrane", Aspect: geneontology.CellularComponent},
		},
		Activities: []ActivityRecord{
			{
				Term:   "GO:0016301",
				Label:  "kinase activity",
				Aspect: geneontology.MolecularFunction,
				Contexts: []ContextLinkRecord{
					{Relation: ro.OccursIn, Target: "GO:0005886"},
				},
			},
		},
	}

	m, err := Decode(doc)
	require.NoError(t, err)

	contexts := m.Activity("GO:0016301").Contexts()
	require.Len(t, contexts, 1)
	assert.NotEmpty(t, contexts[0].AssociationID, "missing association ids are generated")
}
