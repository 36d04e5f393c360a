package transform

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// FusionKeySeparator joins the two input races of a fusion pair key.
const FusionKeySeparator = "+"

// FusionPairKey returns the identity key of the ordered pair (demon1, demon2).
func FusionPairKey(demon1, demon2 string) string {
	return demon1 + FusionKeySeparator + demon2
}

// FusionBlankNode returns the blank node of the ordered pair (demon1, demon2).
// The label is a hash of FusionPairKey, so it is valid in every notation
// whatever characters the race names hold.
func FusionBlankNode(demon1, demon2 string) rdf.BlankNode {
	return rdf.BlankNode{ID: fmt.Sprintf("fusion%016x", xxhash.Sum64String(FusionPairKey(demon1, demon2)))}
}

// FusionRuleTransformer collects basic fusion rules in insertion order.
type FusionRuleTransformer struct {
	raceNamespace rdf.Namespace
	vocab         *Vocabulary
	opts          options
	rules         []FusionRule
	gen           generation
}

// NewFusionRuleTransformer returns a transformer whose rules refer to races
// in raceNamespace.
func NewFusionRuleTransformer(raceNamespace rdf.Namespace, vocab *Vocabulary, opts ...Option) *FusionRuleTransformer {
	return &FusionRuleTransformer{
		raceNamespace: raceNamespace,
		vocab:         vocab,
		opts:          newOptions(opts),
	}
}

// Add appends a rule. Duplicates are kept.
func (t *FusionRuleTransformer) Add(rule FusionRule) error {
	if t.gen.sealed() {
		return ErrSealed
	}
	t.rules = append(t.rules, rule)
	return nil
}

// Len returns the number of rules added, variable ones included.
func (t *FusionRuleTransformer) Len() int { return len(t.rules) }

// Statements skips variable rules and links one blank node per race pair to
// its inputs (withRace1, withRace2, emitted once per pair) and to the result
// of every rule on that pair (fusionRaceResult). A pair seen twice with two
// results ends up with two result statements.
func (t *FusionRuleTransformer) Statements() ([]rdf.Quad, error) {
	return t.gen.get(t.generate)
}

func (t *FusionRuleTransformer) generate() ([]rdf.Quad, error) {
	keys := make(map[rdf.BlankNode]string)
	quads := make([]rdf.Quad, 0, 3*len(t.rules))
	for i, rule := range t.rules {
		if rule.IsVariable() {
			continue
		}
		node := FusionBlankNode(rule.Demon1, rule.Demon2)
		key := FusionPairKey(rule.Demon1, rule.Demon2)
		result, err := t.race(i, rule.Result)
		if err != nil {
			return nil, err
		}

		seen, ok := keys[node]
		if ok && seen != key {
			return nil, fmt.Errorf("%w: %q and %q share %s", ErrBlankNodeCollision, seen, key, node)
		}
		if !ok {
			keys[node] = key
			race1, err := t.race(i, rule.Demon1)
			if err != nil {
				return nil, err
			}
			race2, err := t.race(i, rule.Demon2)
			if err != nil {
				return nil, err
			}
			quads = append(quads,
				t.opts.quad(node, t.vocab.WithRace1, race1),
				t.opts.quad(node, t.vocab.WithRace2, race2),
			)
		}
		quads = append(quads, t.opts.quad(node, t.vocab.FusionRaceResult, result))
	}
	return quads, nil
}

func (t *FusionRuleTransformer) race(i int, name string) (rdf.IRI, error) {
	iri, err := t.opts.identify(t.raceNamespace, name)
	if err != nil {
		return rdf.IRI{}, fmt.Errorf("fusion rule %d: %w", i+1, err)
	}
	return iri, nil
}
