package rdf

import "golang.org/x/text/unicode/norm"

// Namespace is a validated IRI prefix that local names are appended to.
// The zero value has no base and rejects every local name.
type Namespace struct {
	base string
}

// NewNamespace validates base as an absolute IRI.
// The error wraps ErrInvalidNamespace.
func NewNamespace(base string) (Namespace, error) {
	if err := ValidateIRI(base); err != nil {
		return Namespace{}, invalidNamespace(base, err.Error())
	}
	return Namespace{base: base}, nil
}

// MustNamespace is like NewNamespace but panics on an invalid base.
// Use it for compile-time constants only.
func MustNamespace(base string) Namespace {
	ns, err := NewNamespace(base)
	if err != nil {
		panic(err)
	}
	return ns
}

// Base returns the namespace IRI.
func (n Namespace) Base() string { return n.base }

// IRI returns the namespace itself as an IRI term.
func (n Namespace) IRI() IRI { return IRI{Value: n.base} }

// IsZero reports whether the namespace was never initialized.
func (n Namespace) IsZero() bool { return n.base == "" }

// Get appends local to the namespace and returns the resulting IRI.
// The local name is NFC-normalized. Whitespace, control characters, '#',
// characters excluded from IRIREF and broken percent-encodings are rejected
// with an error wrapping ErrInvalidLocalName; nothing is truncated or escaped.
func (n Namespace) Get(local string) (IRI, error) {
	if n.base == "" {
		return IRI{}, invalidNamespace(n.base, "namespace not initialized")
	}
	if err := validateLocalName(local); err != nil {
		return IRI{}, invalidLocalName(n.base, local, err.Error())
	}
	value := n.base + norm.NFC.String(local)
	if err := ValidateIRI(value); err != nil {
		return IRI{}, invalidLocalName(n.base, local, err.Error())
	}
	return IRI{Value: value}, nil
}

// String returns the namespace base.
func (n Namespace) String() string { return n.base }
