package rdf

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// escapeString escapes a lexical form for STRING_LITERAL_QUOTE, shared by
// N-Triples, N-Quads, Turtle and TriG.
func escapeString(value string) string {
	value = strings.ToValidUTF8(value, "�")
	var b strings.Builder
	b.Grow(len(value) + 2)
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeIRI escapes characters that may not appear raw in an IRIREF.
func escapeIRI(value string) string {
	if !needsIRIEscape(value) {
		return value
	}
	value = strings.ToValidUTF8(value, "�")
	var b strings.Builder
	for _, r := range value {
		if isIRIRefExcluded(r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsIRIEscape(value string) bool {
	if !utf8.ValidString(value) {
		return true
	}
	for _, r := range value {
		if isIRIRefExcluded(r) {
			return true
		}
	}
	return false
}

func renderIRI(iri IRI) string {
	return "<" + escapeIRI(iri.Value) + ">"
}

func renderLiteral(lit Literal, datatype func(IRI) string) string {
	quoted := `"` + escapeString(lit.Lexical) + `"`
	if lit.Lang != "" {
		return quoted + "@" + lit.Lang
	}
	if lit.Datatype.Value != "" {
		return quoted + "^^" + datatype(lit.Datatype)
	}
	return quoted
}

// renderTerm renders a term in N-Triples syntax.
func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		return renderLiteral(value, renderIRI)
	default:
		return ""
	}
}

func renderIRIWithPrefixes(iri IRI, prefixes map[string]string) string {
	if qname, ok := abbreviateQName(iri.Value, prefixes); ok {
		return qname
	}
	return renderIRI(iri)
}

// renderTermWithPrefixes renders a term in Turtle syntax.
func renderTermWithPrefixes(term Term, prefixes map[string]string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRIWithPrefixes(value, prefixes)
	case Literal:
		return renderLiteral(value, func(dt IRI) string {
			return renderIRIWithPrefixes(dt, prefixes)
		})
	default:
		return renderTerm(term)
	}
}

func checkQuad(format string, q Quad) error {
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return fmt.Errorf("%s: %w", format, ErrMissingField)
	}
	if renderTerm(q.S) == "" || renderTerm(q.O) == "" || (q.G != nil && renderTerm(q.G) == "") {
		return fmt.Errorf("%s: %w: unknown term type", format, ErrMissingField)
	}
	return nil
}
