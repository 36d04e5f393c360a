package rdf

import (
	"context"
	"fmt"
	"io"
)

// Writer streams RDF statements to an output.
// Triple-only formats reject quads that carry a graph name.
type Writer interface {
	Write(Quad) error
	Flush() error
	Close() error
}

// Option configures writer behavior.
type Option func(*Options)

// Options configures encoder behavior.
type Options struct {
	// Prefixes maps prefix labels to namespace IRIs. Turtle and TriG declare
	// them and abbreviate matching IRIs; JSON-LD uses them as the compaction
	// context. Line-based formats ignore them.
	Prefixes map[string]string

	// Pretty groups consecutive statements about one subject (Turtle/TriG)
	// and indents JSON-LD output.
	Pretty bool

	// Indent is the indentation unit for pretty output.
	Indent string

	// BaseIRI is written as @base in Turtle/TriG.
	BaseIRI string
}

// OptPrefixes adds prefix declarations. Later calls override earlier labels.
func OptPrefixes(prefixes map[string]string) Option {
	return func(opts *Options) {
		if opts.Prefixes == nil {
			opts.Prefixes = make(map[string]string, len(prefixes))
		}
		for label, ns := range prefixes {
			opts.Prefixes[label] = ns
		}
	}
}

// OptPretty enables subject grouping and indentation.
func OptPretty() Option {
	return func(opts *Options) {
		opts.Pretty = true
	}
}

// OptBaseIRI sets the @base directive for Turtle/TriG.
func OptBaseIRI(base string) Option {
	return func(opts *Options) {
		opts.BaseIRI = base
	}
}

func defaultOptions() Options {
	return Options{Indent: "    "}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...Option) (Writer, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	for label := range options.Prefixes {
		if !isPrefixLabel(label) {
			return nil, fmt.Errorf("rdf: invalid prefix label %q", label)
		}
	}

	switch format {
	case FormatTurtle:
		return newTurtleEncoder(w, options, false), nil
	case FormatTriG:
		return newTurtleEncoder(w, options, true), nil
	case FormatNTriples:
		return newNTriplesEncoder(w), nil
	case FormatNQuads:
		return newNQuadsEncoder(w), nil
	case FormatJSONLD:
		return newJSONLDEncoder(w, options), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Serialize writes all quads to w using the selected format and closes the
// writer, which flushes any buffered output. The first error is returned.
func Serialize(ctx context.Context, w io.Writer, format Format, quads []Quad, opts ...Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !format.SupportsNamedGraphs() && HasNamedGraphs(quads) {
		return fmt.Errorf("%s: %w", format, ErrNamedGraphUnsupported)
	}
	enc, err := NewWriter(w, format, opts...)
	if err != nil {
		return err
	}
	for _, q := range quads {
		if err := ctx.Err(); err != nil {
			_ = enc.Close()
			return err
		}
		if err := enc.Write(q); err != nil {
			_ = enc.Close()
			return err
		}
	}
	return enc.Close()
}
