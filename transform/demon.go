package transform

import (
	"fmt"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// DemonTransformer collects demons in insertion order.
type DemonTransformer struct {
	namespace     rdf.Namespace
	raceNamespace rdf.Namespace
	vocab         *Vocabulary
	opts          options
	demons        []Demon
	gen           generation
}

// NewDemonTransformer returns a transformer naming demons in namespace and
// their races in raceNamespace.
func NewDemonTransformer(namespace, raceNamespace rdf.Namespace, vocab *Vocabulary, opts ...Option) *DemonTransformer {
	return &DemonTransformer{
		namespace:     namespace,
		raceNamespace: raceNamespace,
		vocab:         vocab,
		opts:          newOptions(opts),
	}
}

// Add appends a demon. Rows are not validated here.
func (t *DemonTransformer) Add(d Demon) error {
	if t.gen.sealed() {
		return ErrSealed
	}
	t.demons = append(t.demons, d)
	return nil
}

// Len returns the number of demons added.
func (t *DemonTransformer) Len() int { return len(t.demons) }

// Statements returns exactly four statements per demon, in insertion order:
// type, name, race and base level. The race term is computed by the naming
// authority whether or not a RaceTransformer ever saw that race. The level is
// tagged xsd:integer as-is, without checking that it is numeric.
func (t *DemonTransformer) Statements() ([]rdf.Quad, error) {
	return t.gen.get(t.generate)
}

func (t *DemonTransformer) generate() ([]rdf.Quad, error) {
	quads := make([]rdf.Quad, 0, 4*len(t.demons))
	for i, d := range t.demons {
		subject, err := t.opts.identify(t.namespace, d.Name)
		if err != nil {
			return nil, fmt.Errorf("demon %d %q: %w", i+1, d.Name, err)
		}
		race, err := t.opts.identify(t.raceNamespace, d.Race)
		if err != nil {
			return nil, fmt.Errorf("demon %d %q: race: %w", i+1, d.Name, err)
		}
		quads = append(quads,
			t.opts.quad(subject, t.vocab.Type, t.vocab.DemonClass),
			t.opts.quad(subject, t.vocab.Name, rdf.NewStringLiteral(d.Name)),
			t.opts.quad(subject, t.vocab.IsOfRace, race),
			t.opts.quad(subject, t.vocab.HasBasedLevel, rdf.NewIntegerLiteral(d.Level)),
		)
	}
	return quads, nil
}
