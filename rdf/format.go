package rdf

import (
	"path/filepath"
	"strings"
)

// Format identifies RDF serialization formats.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatTriG     Format = "trig"
	FormatNTriples Format = "ntriples"
	FormatNQuads   Format = "nquads"
	FormatJSONLD   Format = "jsonld"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "trig":
		return FormatTriG, true
	case "ntriples", "nt":
		return FormatNTriples, true
	case "nquads", "nq":
		return FormatNQuads, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// FormatFromPath infers the format from a filename extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl":
		return FormatTurtle, true
	case ".trig":
		return FormatTriG, true
	case ".nt":
		return FormatNTriples, true
	case ".nq":
		return FormatNQuads, true
	case ".jsonld":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// SupportsNamedGraphs reports whether the format can carry quads.
func (f Format) SupportsNamedGraphs() bool {
	switch f {
	case FormatTriG, FormatNQuads, FormatJSONLD:
		return true
	default:
		return false
	}
}

// Extension returns the conventional filename extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatTurtle:
		return ".ttl"
	case FormatTriG:
		return ".trig"
	case FormatNTriples:
		return ".nt"
	case FormatNQuads:
		return ".nq"
	case FormatJSONLD:
		return ".jsonld"
	default:
		return ""
	}
}

// QuadVariant returns the quad-capable format closest to f:
// Turtle becomes TriG, N-Triples becomes N-Quads.
func (f Format) QuadVariant() Format {
	switch f {
	case FormatTurtle:
		return FormatTriG
	case FormatNTriples:
		return FormatNQuads
	default:
		return f
	}
}

// ContentType returns the media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatTurtle:
		return "text/turtle"
	case FormatTriG:
		return "application/trig"
	case FormatNTriples:
		return "application/n-triples"
	case FormatNQuads:
		return "application/n-quads"
	case FormatJSONLD:
		return "application/ld+json"
	default:
		return ""
	}
}
