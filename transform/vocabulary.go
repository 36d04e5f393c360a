package transform

import (
	"fmt"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// Local names of the dataset vocabulary.
const (
	DemonClassName       = "DemonSmt3"
	RaceClassName        = "Race"
	IsOfRaceName         = "isOfRace"
	HasBasedLevelName    = "hasBasedLevel"
	WithRace1Name        = "withRace1"
	WithRace2Name        = "withRace2"
	FusionRaceResultName = "fusionRaceResult"
)

// Vocabulary holds the fixed terms used by every transformer.
// Build it once per run with NewVocabulary and share it.
type Vocabulary struct {
	Namespace rdf.Namespace

	// Type is rdf:type.
	Type rdf.IRI
	// Name is schema:name.
	Name rdf.IRI

	DemonClass       rdf.IRI
	RaceClass        rdf.IRI
	IsOfRace         rdf.IRI
	HasBasedLevel    rdf.IRI
	WithRace1        rdf.IRI
	WithRace2        rdf.IRI
	FusionRaceResult rdf.IRI
}

// NewVocabulary resolves the vocabulary terms in ns.
func NewVocabulary(ns rdf.Namespace) (*Vocabulary, error) {
	v := &Vocabulary{Namespace: ns, Type: rdf.RDFType, Name: rdf.SchemaName}
	terms := []struct {
		local  string
		target *rdf.IRI
	}{
		{DemonClassName, &v.DemonClass},
		{RaceClassName, &v.RaceClass},
		{IsOfRaceName, &v.IsOfRace},
		{HasBasedLevelName, &v.HasBasedLevel},
		{WithRace1Name, &v.WithRace1},
		{WithRace2Name, &v.WithRace2},
		{FusionRaceResultName, &v.FusionRaceResult},
	}
	for _, term := range terms {
		iri, err := ns.Get(term.local)
		if err != nil {
			return nil, fmt.Errorf("vocabulary: %w", err)
		}
		*term.target = iri
	}
	return v, nil
}
