package rdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// jsonldEncoder buffers quads and converts them with json-gold on Close.
// JSON-LD has no streaming form for RDF input, so Flush only validates state.
type jsonldEncoder struct {
	w     io.Writer
	opts  Options
	quads []Quad
	err   error
}

func newJSONLDEncoder(w io.Writer, opts Options) *jsonldEncoder {
	return &jsonldEncoder{w: w, opts: opts}
}

func (e *jsonldEncoder) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if err := checkQuad("jsonld", q); err != nil {
		return err
	}
	e.quads = append(e.quads, q)
	return nil
}

func (e *jsonldEncoder) Flush() error {
	return e.err
}

func (e *jsonldEncoder) Close() error {
	if e.err == ErrWriterClosed {
		return nil
	}
	if e.err != nil {
		return e.err
	}
	doc, err := quadsToJSONLD(e.quads, e.opts.Prefixes)
	if err != nil {
		e.err = err
		return err
	}
	var out []byte
	if e.opts.Pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		e.err = fmt.Errorf("jsonld: %w", err)
		return e.err
	}
	out = append(out, '\n')
	if _, err := e.w.Write(out); err != nil {
		e.err = err
		return err
	}
	e.err = ErrWriterClosed
	return nil
}

// quadsToJSONLD converts quads through json-gold's FromRDF and compacts the
// result against a context made of the prefixes.
func quadsToJSONLD(quads []Quad, prefixes map[string]string) (interface{}, error) {
	nquads, err := quadsToNQuads(quads)
	if err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	expanded, err := proc.FromRDF(nquads, opts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: from rdf: %w", err)
	}

	context := map[string]interface{}{}
	for _, label := range sortedPrefixKeys(prefixes) {
		if label == "" {
			continue
		}
		context[label] = prefixes[label]
	}
	if len(context) == 0 {
		return expanded, nil
	}
	compacted, err := proc.Compact(expanded, map[string]interface{}{"@context": context}, ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, fmt.Errorf("jsonld: compact: %w", err)
	}
	return compacted, nil
}

func quadsToNQuads(quads []Quad) (string, error) {
	var buf bytes.Buffer
	enc := newNQuadsEncoder(&buf)
	for _, q := range quads {
		if err := enc.Write(q); err != nil {
			_ = enc.Close()
			return "", err
		}
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
