package transform

import "github.com/geoknoesis/smt3-rdf/rdf"

// Option configures a transformer.
type Option func(*options)

type options struct {
	graph    rdf.Term
	identify IdentifierFunc
}

// WithGraph attaches graph to every statement the transformer produces.
// A nil graph keeps statements in the default graph.
func WithGraph(graph rdf.Term) Option {
	return func(o *options) {
		o.graph = graph
	}
}

// WithIdentifier replaces the naming authority. Intended for tests; all
// transformers of one run must share the same function.
func WithIdentifier(fn IdentifierFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.identify = fn
		}
	}
}

func newOptions(opts []Option) options {
	o := options{identify: Identify}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) quad(s rdf.Term, p rdf.IRI, obj rdf.Term) rdf.Quad {
	triple := rdf.Triple{S: s, P: p, O: obj}
	if o.graph == nil {
		return triple.ToQuad()
	}
	return triple.ToQuadInGraph(o.graph)
}
