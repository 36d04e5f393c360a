package transform

import (
	"fmt"
	"slices"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// RaceTransformer collects distinct race names.
type RaceTransformer struct {
	namespace rdf.Namespace
	vocab     *Vocabulary
	opts      options
	races     map[string]struct{}
	gen       generation
}

// NewRaceTransformer returns a transformer naming races in namespace.
func NewRaceTransformer(namespace rdf.Namespace, vocab *Vocabulary, opts ...Option) *RaceTransformer {
	return &RaceTransformer{
		namespace: namespace,
		vocab:     vocab,
		opts:      newOptions(opts),
		races:     make(map[string]struct{}),
	}
}

// Add inserts race into the set. Adding a known race is a no-op.
func (t *RaceTransformer) Add(race string) error {
	if t.gen.sealed() {
		return ErrSealed
	}
	t.races[race] = struct{}{}
	return nil
}

// Len returns the number of distinct races.
func (t *RaceTransformer) Len() int { return len(t.races) }

// Races returns the distinct races in sorted order.
func (t *RaceTransformer) Races() []string {
	races := make([]string, 0, len(t.races))
	for race := range t.races {
		races = append(races, race)
	}
	slices.Sort(races)
	return races
}

// Identifier returns the term of race using the transformer's naming authority.
func (t *RaceTransformer) Identifier(race string) (rdf.IRI, error) {
	return t.opts.identify(t.namespace, race)
}

// Statements returns a type and a name statement per race. Races are
// enumerated in sorted order; callers must not depend on it.
func (t *RaceTransformer) Statements() ([]rdf.Quad, error) {
	return t.gen.get(t.generate)
}

func (t *RaceTransformer) generate() ([]rdf.Quad, error) {
	quads := make([]rdf.Quad, 0, 2*len(t.races))
	for _, race := range t.Races() {
		subject, err := t.Identifier(race)
		if err != nil {
			return nil, fmt.Errorf("race %q: %w", race, err)
		}
		quads = append(quads,
			t.opts.quad(subject, t.vocab.Type, t.vocab.RaceClass),
			t.opts.quad(subject, t.vocab.Name, rdf.NewStringLiteral(race)),
		)
	}
	return quads, nil
}
