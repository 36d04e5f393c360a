package transform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

func TestDemonTransformerPixie(t *testing.T) {
	f := newFixture(t)
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab)
	require.NoError(t, tr.Add(Demon{Name: "Pixie", Race: "Fairy", Level: "2"}))

	got, err := tr.Statements()
	require.NoError(t, err)

	pixie := iri("http://ex/d#Pixie")
	want := []rdf.Quad{
		{S: pixie, P: rdf.RDFType, O: iri("http://ex/v#DemonSmt3")},
		{S: pixie, P: iri("https://schema.org/name"), O: rdf.Literal{Lexical: "Pixie", Datatype: rdf.XSDString}},
		{S: pixie, P: iri("http://ex/v#isOfRace"), O: iri("http://ex/r#Fairy")},
		{S: pixie, P: iri("http://ex/v#hasBasedLevel"), O: rdf.Literal{Lexical: "2", Datatype: rdf.XSDInteger}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestDemonTransformerFourStatementsPerDemon(t *testing.T) {
	f := newFixture(t)
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab)
	demons := []Demon{
		{Name: "Pixie", Race: "Fairy", Level: "2"},
		{Name: "Jack Frost", Race: "Fairy", Level: "7"},
		{Name: "Cerberus", Race: "Beast", Level: "61"},
	}
	for _, d := range demons {
		require.NoError(t, tr.Add(d))
	}
	require.Equal(t, 3, tr.Len())

	got, err := tr.Statements()
	require.NoError(t, err)
	require.Len(t, got, 4*len(demons))
	for i, d := range demons {
		subject, err := Identify(f.demonNS, d.Name)
		require.NoError(t, err)
		for _, q := range got[4*i : 4*i+4] {
			assert.Equal(t, rdf.Term(subject), q.S)
			assert.True(t, q.InDefaultGraph())
		}
	}
	assert.Equal(t, rdf.Term(iri("http://ex/d#Jack_Frost")), got[4].S)
	assert.Equal(t, rdf.Term(rdf.NewStringLiteral("Jack Frost")), got[5].O)
}

func TestDemonTransformerRaceNotInRaceSet(t *testing.T) {
	f := newFixture(t)
	races := NewRaceTransformer(f.raceNS, f.vocab)
	demons := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab)
	require.NoError(t, demons.Add(Demon{Name: "Alice", Race: "Fiend", Level: "79"}))

	got, err := demons.Statements()
	require.NoError(t, err)
	want, err := races.Identifier("Fiend")
	require.NoError(t, err)
	assert.Equal(t, rdf.Term(want), got[2].O)
	assert.Zero(t, races.Len())
}

func TestDemonTransformerLevelPassthrough(t *testing.T) {
	f := newFixture(t)
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab)
	require.NoError(t, tr.Add(Demon{Name: "Mystery", Race: "Fairy", Level: "??"}))

	got, err := tr.Statements()
	require.NoError(t, err)
	assert.Equal(t, rdf.Term(rdf.NewIntegerLiteral("??")), got[3].O)
}

func TestDemonTransformerInvalidNameAborts(t *testing.T) {
	f := newFixture(t)
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab)
	require.NoError(t, tr.Add(Demon{Name: "Pixie", Race: "Fairy", Level: "2"}))
	require.NoError(t, tr.Add(Demon{Name: "Bad#Name", Race: "Fairy", Level: "3"}))

	got, err := tr.Statements()
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, rdf.ErrInvalidLocalName)
	assert.Contains(t, err.Error(), `demon 2 "Bad#Name"`)

	var iriErr *rdf.IRIError
	require.True(t, errors.As(err, &iriErr))
	assert.Equal(t, "Bad#Name", iriErr.Local)

	_, again := tr.Statements()
	assert.Equal(t, err, again)
}

func TestDemonTransformerInvalidRaceAborts(t *testing.T) {
	f := newFixture(t)
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab)
	require.NoError(t, tr.Add(Demon{Name: "Pixie", Race: "", Level: "2"}))

	_, err := tr.Statements()
	require.Error(t, err)
	assert.ErrorIs(t, err, rdf.ErrInvalidLocalName)
	assert.Contains(t, err.Error(), "race")
}

func TestDemonTransformerSealed(t *testing.T) {
	f := newFixture(t)
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab)
	require.NoError(t, tr.Add(Demon{Name: "Pixie", Race: "Fairy", Level: "2"}))

	first, err := tr.Statements()
	require.NoError(t, err)
	assert.ErrorIs(t, tr.Add(Demon{Name: "Jack Frost", Race: "Fairy", Level: "7"}), ErrSealed)

	first[0] = rdf.Quad{}
	second, err := tr.Statements()
	require.NoError(t, err)
	require.Len(t, second, 4)
	assert.False(t, second[0].IsZero())
}

func TestDemonTransformerWithGraph(t *testing.T) {
	f := newFixture(t)
	game := iri("http://ex/game/smt3")
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab, WithGraph(game))
	require.NoError(t, tr.Add(Demon{Name: "Pixie", Race: "Fairy", Level: "2"}))

	got, err := tr.Statements()
	require.NoError(t, err)
	for _, q := range got {
		assert.Equal(t, rdf.Term(game), q.G)
	}
	assert.True(t, rdf.HasNamedGraphs(got))
}

func TestDemonTransformerWithIdentifier(t *testing.T) {
	f := newFixture(t)
	calls := 0
	upper := func(ns rdf.Namespace, name string) (rdf.IRI, error) {
		calls++
		return ns.Get("x_" + LocalName(name))
	}
	tr := NewDemonTransformer(f.demonNS, f.raceNS, f.vocab, WithIdentifier(upper), WithIdentifier(nil))
	require.NoError(t, tr.Add(Demon{Name: "Pixie", Race: "Fairy", Level: "2"}))

	got, err := tr.Statements()
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, rdf.Term(iri("http://ex/d#x_Pixie")), got[0].S)
	assert.Equal(t, rdf.Term(iri("http://ex/r#x_Fairy")), got[2].O)
}
