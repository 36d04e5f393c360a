package rdf

import (
	"fmt"
	"io"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

const jsonGoldDefaultGraph = "@default"

// ReadNQuads parses an N-Triples or N-Quads document with json-gold's
// N-Quads parser. Graphs are returned in sorted order, default graph first,
// with statements in document order within each graph. Literals without a
// datatype come back tagged xsd:string, as RDF 1.1 defines them.
func ReadNQuads(r io.Reader) ([]Quad, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	serializer := &ld.NQuadRDFSerializer{}
	dataset, err := serializer.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("nquads: %w", err)
	}

	names := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == jsonGoldDefaultGraph || names[j] == jsonGoldDefaultGraph {
			return names[i] == jsonGoldDefaultGraph && names[j] != jsonGoldDefaultGraph
		}
		return names[i] < names[j]
	})

	var quads []Quad
	for _, name := range names {
		var graph Term
		if name != jsonGoldDefaultGraph {
			graph = fromJSONGoldName(name)
		}
		for _, q := range dataset.Graphs[name] {
			if q == nil {
				continue
			}
			pred, ok := q.Predicate.(ld.IRI)
			if !ok {
				return nil, fmt.Errorf("nquads: unexpected predicate %T", q.Predicate)
			}
			quads = append(quads, Quad{
				S: fromJSONGoldNode(q.Subject),
				P: IRI{Value: pred.Value},
				O: fromJSONGoldNode(q.Object),
				G: graph,
			})
		}
	}
	return quads, nil
}

func fromJSONGoldName(name string) Term {
	if strings.HasPrefix(name, "_:") {
		return BlankNode{ID: strings.TrimPrefix(name, "_:")}
	}
	return IRI{Value: name}
}

func fromJSONGoldNode(node ld.Node) Term {
	switch value := node.(type) {
	case ld.IRI:
		return IRI{Value: value.Value}
	case ld.BlankNode:
		return BlankNode{ID: strings.TrimPrefix(value.Attribute, "_:")}
	case ld.Literal:
		if value.Language != "" {
			return Literal{Lexical: value.Value, Lang: value.Language}
		}
		return Literal{Lexical: value.Value, Datatype: IRI{Value: value.Datatype}}
	default:
		return nil
	}
}
