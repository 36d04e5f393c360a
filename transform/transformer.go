package transform

import (
	"errors"
	"slices"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

var (
	// ErrSealed is returned by Add once statements have been generated.
	ErrSealed = errors.New("transform: records added after statements were generated")
	// ErrBlankNodeCollision is returned when two fusion pairs hash to one label.
	ErrBlankNodeCollision = errors.New("transform: blank node label collision")
)

// Transformer produces the statements for the records it accumulated.
type Transformer interface {
	// Statements generates the statements on the first call and returns a
	// copy of the same result on every later call.
	Statements() ([]rdf.Quad, error)
	// Len returns the number of accumulated records.
	Len() int
}

// generation memoizes a single statement generation.
type generation struct {
	done  bool
	quads []rdf.Quad
	err   error
}

func (g *generation) sealed() bool { return g.done }

func (g *generation) get(generate func() ([]rdf.Quad, error)) ([]rdf.Quad, error) {
	if !g.done {
		g.quads, g.err = generate()
		g.done = true
	}
	if g.err != nil {
		return nil, g.err
	}
	return slices.Clone(g.quads), nil
}
