package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeInvalidNamespace indicates a namespace base that is not an absolute IRI.
	ErrCodeInvalidNamespace ErrorCode = "INVALID_NAMESPACE"
	// ErrCodeInvalidLocalName indicates a local name that cannot extend a namespace.
	ErrCodeInvalidLocalName ErrorCode = "INVALID_LOCAL_NAME"
	// ErrCodeInvalidStatement indicates a statement that cannot be encoded.
	ErrCodeInvalidStatement ErrorCode = "INVALID_STATEMENT"
	// ErrCodeIOError indicates an I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeInternal is returned for errors outside this taxonomy.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrInvalidNamespace indicates a namespace base that is not an absolute IRI.
	ErrInvalidNamespace = errors.New("rdf: invalid namespace")
	// ErrInvalidLocalName indicates a local name that does not form a valid IRI.
	ErrInvalidLocalName = errors.New("rdf: invalid local name")
	// ErrMissingField indicates a statement without subject, predicate or object.
	ErrMissingField = errors.New("rdf: missing statement fields")
	// ErrNamedGraphUnsupported indicates a quad with a graph name sent to a triple format.
	ErrNamedGraphUnsupported = errors.New("rdf: format does not support named graphs")
	// ErrWriterClosed indicates a write after Close.
	ErrWriterClosed = errors.New("rdf: writer closed")
)

// Code returns the error code for an error, or ErrCodeInternal if unknown.
// Returns empty string for nil errors or io.EOF.
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrInvalidNamespace):
		return ErrCodeInvalidNamespace
	case errors.Is(err, ErrInvalidLocalName):
		return ErrCodeInvalidLocalName
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrNamedGraphUnsupported):
		return ErrCodeInvalidStatement
	}

	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ErrCodeIOError
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeContextCanceled
	}

	return ErrCodeInternal
}

// IRIError reports a namespace base or local name that cannot form an IRI.
type IRIError struct {
	Base  string // Namespace base IRI
	Local string // Local name, empty when the base itself is invalid
	Err   error  // Underlying error, wraps ErrInvalidNamespace or ErrInvalidLocalName
}

func (e *IRIError) Error() string {
	var msg strings.Builder
	if e.Local != "" || errors.Is(e.Err, ErrInvalidLocalName) {
		fmt.Fprintf(&msg, "local name %q in <%s>", e.Local, e.Base)
	} else {
		fmt.Fprintf(&msg, "namespace <%s>", e.Base)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	return msg.String()
}

func (e *IRIError) Unwrap() error { return e.Err }

// IOError reports a failure opening, writing or committing an output.
type IOError struct {
	Op   string // Operation, e.g. "create", "write", "rename"
	Path string // Path involved
	Err  error  // Underlying error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

func invalidNamespace(base, reason string) error {
	return &IRIError{Base: base, Err: fmt.Errorf("%w: %s", ErrInvalidNamespace, reason)}
}

func invalidLocalName(base, local, reason string) error {
	return &IRIError{Base: base, Local: local, Err: fmt.Errorf("%w: %s", ErrInvalidLocalName, reason)}
}
