// Package rdf provides a compact RDF model with namespaces and streaming encoders.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// It focuses on producing byte-exact, standards-compliant output for generated datasets:
//   - Model: IRI, BlankNode and Literal terms; Triple and Quad statements.
//   - Namespace: NewNamespace() validates a base IRI and Get() appends local names,
//     failing instead of escaping or truncating anything invalid.
//   - Encode: NewWriter() returns a push-style writer for Turtle, TriG, N-Triples,
//     N-Quads or JSON-LD; Serialize() writes a whole statement slice.
//   - Read back: ReadNQuads() parses N-Triples/N-Quads with json-gold, for
//     verification of written output.
//
// Triple formats (Turtle, N-Triples) reject quads that carry a graph name with
// ErrNamedGraphUnsupported; quad formats (TriG, N-Quads, JSON-LD) accept both.
//
// Example (writing TriG):
//
//	ns, err := rdf.NewNamespace("http://example.org/demon/")
//	if err != nil {
//	    // handle error
//	}
//	pixie, err := ns.Get("Pixie")
//	if err != nil {
//	    // handle error
//	}
//	quads := []rdf.Quad{{
//	    S: pixie,
//	    P: rdf.SchemaName,
//	    O: rdf.NewStringLiteral("Pixie"),
//	    G: rdf.IRI{Value: "http://example.org/game/smt3"},
//	}}
//	err = rdf.Serialize(ctx, w, rdf.FormatTriG, quads, rdf.OptPretty(), rdf.OptPrefixes(rdf.StandardPrefixes()))
//
// Errors carry a programmatic code, see Code(). Namespace failures wrap
// ErrInvalidNamespace or ErrInvalidLocalName inside an *IRIError; output
// failures are reported as *IOError by the callers that own the files.
package rdf
