package rdf

import (
	"bytes"
	"context"
	"testing"
)

func TestRoundTripNQuadsIsomorphic(t *testing.T) {
	quads := []Quad{
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "http://example.org/p"}, O: Literal{Lexical: "v", Lang: "en"}},
		{S: BlankNode{ID: "b1"}, P: IRI{Value: "http://example.org/p2"}, O: IRI{Value: "http://example.org/o"}, G: IRI{Value: "http://example.org/g"}},
		{S: IRI{Value: "http://example.org/s2"}, P: IRI{Value: "http://example.org/p3"}, O: NewIntegerLiteral("1")},
		{S: IRI{Value: "http://example.org/s2"}, P: IRI{Value: "http://example.org/p4"}, O: NewStringLiteral("say \"hi\"\nbye")},
		{S: IRI{Value: "http://example.org/s3"}, P: IRI{Value: "http://example.org/p"}, O: BlankNode{ID: "b2"}, G: IRI{Value: "http://example.org/g"}},
	}
	for _, format := range []Format{FormatNQuads, FormatNTriples} {
		input := quads
		if !format.SupportsNamedGraphs() {
			input = make([]Quad, len(quads))
			for i, q := range quads {
				input[i] = q.ToTriple().ToQuad()
			}
		}
		var buf bytes.Buffer
		if err := Serialize(context.Background(), &buf, format, input); err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		parsed, err := ReadNQuads(&buf)
		if err != nil {
			t.Fatalf("format %s: decode error %v", format, err)
		}
		if !isomorphicQuads(input, parsed) {
			t.Fatalf("format %s: roundtrip graphs are not isomorphic", format)
		}
	}
}

func TestReadNQuadsDefaultGraphFirst(t *testing.T) {
	input := "<http://example.org/a> <http://example.org/p> <http://example.org/b> <http://example.org/g> .\n" +
		"<http://example.org/c> <http://example.org/p> \"x\" .\n"
	parsed, err := ReadNQuads(bytes.NewBufferString(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 quads, got %d", len(parsed))
	}
	if !parsed[0].InDefaultGraph() {
		t.Fatalf("expected default graph first, got %v", parsed[0])
	}
	lit, ok := parsed[0].O.(Literal)
	if !ok || lit.Datatype != XSDString {
		t.Fatalf("expected xsd:string literal, got %#v", parsed[0].O)
	}
	if parsed[1].G != (IRI{Value: "http://example.org/g"}) {
		t.Fatalf("unexpected graph %v", parsed[1].G)
	}
}

func TestReadNQuadsRejectsGarbage(t *testing.T) {
	if _, err := ReadNQuads(bytes.NewBufferString("this is not nquads\n")); err == nil {
		t.Fatal("expected parse error")
	}
}

// isomorphicQuads compares two statement sets up to blank node relabeling.
func isomorphicQuads(a, b []Quad) bool {
	if len(a) != len(b) {
		return false
	}
	aBNodes := isoCollectBlankNodes(a)
	bBNodes := isoCollectBlankNodes(b)
	if len(aBNodes) != len(bBNodes) {
		return false
	}
	bCounts := quadCountMap(b, nil)
	if len(aBNodes) == 0 {
		return quadCountEquals(quadCountMap(a, nil), bCounts)
	}
	mapping := map[string]string{}
	used := map[string]bool{}

	var search func(idx int) bool
	search = func(idx int) bool {
		if idx == len(aBNodes) {
			return quadCountEquals(quadCountMap(a, mapping), bCounts)
		}
		source := aBNodes[idx]
		for _, target := range bBNodes {
			if used[target] {
				continue
			}
			mapping[source] = target
			if mappingConsistent(a, mapping, bCounts) {
				used[target] = true
				if search(idx + 1) {
					return true
				}
				used[target] = false
			}
			delete(mapping, source)
		}
		return false
	}

	return search(0)
}

func mappingConsistent(quads []Quad, mapping map[string]string, targetCounts map[string]int) bool {
	counts := map[string]int{}
	for _, quad := range quads {
		key, ok := isoQuadKey(quad, mapping, true)
		if !ok {
			continue
		}
		counts[key]++
		if counts[key] > targetCounts[key] {
			return false
		}
	}
	return true
}

func quadCountMap(quads []Quad, mapping map[string]string) map[string]int {
	counts := map[string]int{}
	for _, quad := range quads {
		key, ok := isoQuadKey(quad, mapping, mapping != nil)
		if !ok {
			return map[string]int{}
		}
		counts[key]++
	}
	return counts
}

func quadCountEquals(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for key, count := range a {
		if b[key] != count {
			return false
		}
	}
	return true
}

func isoQuadKey(q Quad, mapping map[string]string, requireMapped bool) (string, bool) {
	subject, ok := isoTermKey(q.S, mapping, requireMapped)
	if !ok {
		return "", false
	}
	object, ok := isoTermKey(q.O, mapping, requireMapped)
	if !ok {
		return "", false
	}
	graph := "G:default"
	if q.G != nil {
		graphTerm, ok := isoTermKey(q.G, mapping, requireMapped)
		if !ok {
			return "", false
		}
		graph = "G:" + graphTerm
	}
	return subject + "|I:" + q.P.Value + "|" + object + "|" + graph, true
}

func isoTermKey(term Term, mapping map[string]string, requireMapped bool) (string, bool) {
	switch value := term.(type) {
	case IRI:
		return "I:" + value.Value, true
	case BlankNode:
		if mapping == nil {
			return "B:" + value.ID, true
		}
		mapped, ok := mapping[value.ID]
		if !ok {
			return "", !requireMapped
		}
		return "B:" + mapped, true
	case Literal:
		return "L:" + value.Lexical + "|lang:" + value.Lang + "|dt:" + value.Datatype.Value, true
	default:
		return "", false
	}
}

func isoCollectBlankNodes(quads []Quad) []string {
	seen := map[string]bool{}
	for _, quad := range quads {
		for _, term := range []Term{quad.S, quad.O, quad.G} {
			if bnode, ok := term.(BlankNode); ok {
				seen[bnode.ID] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}
