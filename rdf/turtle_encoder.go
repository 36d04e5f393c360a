package rdf

import (
	"bufio"
	"fmt"
	"io"
)

// turtleEncoder writes Turtle, or TriG when quads is set.
//
// In pretty mode consecutive statements with the same subject share one
// subject with ';', and TriG statements with the same graph share one
// "graph { ... }" block. Grouping is purely a rendering choice: callers that
// interleave subjects get correct, just less compact, output.
type turtleEncoder struct {
	writer  *bufio.Writer
	err     error
	started bool
	opts    Options
	quads   bool
	name    string

	subject   Term
	inSubject bool
	graph     Term
	inGraph   bool
}

func newTurtleEncoder(w io.Writer, opts Options, quads bool) *turtleEncoder {
	name := "turtle"
	if quads {
		name = "trig"
	}
	return &turtleEncoder{writer: bufio.NewWriter(w), opts: opts, quads: quads, name: name}
}

func (e *turtleEncoder) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if err := checkQuad(e.name, q); err != nil {
		return err
	}
	if !e.quads && q.G != nil {
		return fmt.Errorf("%s: %w", e.name, ErrNamedGraphUnsupported)
	}
	if !e.started {
		if err := e.writeHeader(); err != nil {
			return err
		}
	}
	if e.opts.Pretty {
		return e.writePretty(q)
	}
	line := e.term(q.S) + " " + e.predicate(q.P) + " " + e.term(q.O) + " ."
	if q.G != nil {
		line = e.term(q.G) + " { " + line + " }"
	}
	return e.writeString(line + "\n")
}

func (e *turtleEncoder) writePretty(q Quad) error {
	if e.quads && !e.sameGraph(q.G) {
		if err := e.closeOpen(); err != nil {
			return err
		}
		if q.G != nil {
			if err := e.writeString("\n" + e.term(q.G) + " {\n"); err != nil {
				return err
			}
			e.inGraph = true
		}
		e.graph = q.G
	}

	base := ""
	if e.inGraph {
		base = e.opts.Indent
	}
	if e.inSubject && e.subject == q.S {
		return e.writeString(" ;\n" + base + e.opts.Indent + e.predicate(q.P) + " " + e.term(q.O))
	}
	if err := e.closeSubject(); err != nil {
		return err
	}
	e.subject = q.S
	e.inSubject = true
	return e.writeString(base + e.term(q.S) + " " + e.predicate(q.P) + " " + e.term(q.O))
}

func (e *turtleEncoder) sameGraph(g Term) bool {
	if g == nil || e.graph == nil {
		return g == nil && e.graph == nil && !e.inGraph
	}
	return e.inGraph && e.graph == g
}

func (e *turtleEncoder) closeSubject() error {
	if !e.inSubject {
		return nil
	}
	e.inSubject = false
	e.subject = nil
	return e.writeString(" .\n")
}

func (e *turtleEncoder) closeOpen() error {
	if err := e.closeSubject(); err != nil {
		return err
	}
	if !e.inGraph {
		return nil
	}
	e.inGraph = false
	e.graph = nil
	return e.writeString("}\n")
}

func (e *turtleEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.closeOpen(); err != nil {
		return err
	}
	if err := e.writer.Flush(); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *turtleEncoder) Close() error {
	if e.err != nil {
		if e.err == ErrWriterClosed {
			return nil
		}
		return e.err
	}
	if err := e.Flush(); err != nil {
		return err
	}
	e.err = ErrWriterClosed
	return nil
}

func (e *turtleEncoder) writeHeader() error {
	e.started = true
	if e.opts.BaseIRI != "" {
		if err := e.writeString("@base " + renderIRI(IRI{Value: e.opts.BaseIRI}) + " .\n"); err != nil {
			return err
		}
	}
	for _, prefix := range sortedPrefixKeys(e.opts.Prefixes) {
		ns := e.opts.Prefixes[prefix]
		if err := e.writeString("@prefix " + prefix + ": " + renderIRI(IRI{Value: ns}) + " .\n"); err != nil {
			return err
		}
	}
	if e.opts.Pretty && !e.quads && (e.opts.BaseIRI != "" || len(e.opts.Prefixes) > 0) {
		return e.writeString("\n")
	}
	return nil
}

func (e *turtleEncoder) writeString(s string) error {
	if _, err := e.writer.WriteString(s); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *turtleEncoder) term(t Term) string {
	return renderTermWithPrefixes(t, e.opts.Prefixes)
}

func (e *turtleEncoder) predicate(p IRI) string {
	if p == RDFType {
		return "a"
	}
	return renderIRIWithPrefixes(p, e.opts.Prefixes)
}
