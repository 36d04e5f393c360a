package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

const (
	testDemonNS = "http://ex/d#"
	testVocabNS = "http://ex/v#"
	testRaceNS  = "http://ex/r#"
)

type fixture struct {
	demonNS rdf.Namespace
	raceNS  rdf.Namespace
	vocab   *Vocabulary
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	vocab, err := NewVocabulary(rdf.MustNamespace(testVocabNS))
	require.NoError(t, err)
	return fixture{
		demonNS: rdf.MustNamespace(testDemonNS),
		raceNS:  rdf.MustNamespace(testRaceNS),
		vocab:   vocab,
	}
}

func iri(value string) rdf.IRI { return rdf.IRI{Value: value} }
