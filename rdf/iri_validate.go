package rdf

import (
	"fmt"
	"net/url"
	"unicode"
	"unicode/utf8"
)

// ValidateIRI validates an absolute IRI string.
// Returns an error if the IRI is invalid, nil otherwise.
//
// The check covers what the encoders rely on:
//   - a scheme starting with a letter, followed by letters, digits, '+', '-' or '.'
//   - a structure accepted by url.Parse
//   - no whitespace, control characters or characters excluded from IRIREF
//     (<, >, ", {, }, |, ^, `, \)
//   - every '%' starts a percent-encoded octet
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	if err := checkIRIChars(iri); err != nil {
		return err
	}

	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("relative IRI without scheme: %s", iri)
	}
	first := parsed.Scheme[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("scheme must start with a letter: %s", iri)
	}
	if parsed.Opaque == "" && parsed.Host == "" && parsed.Path == "" && parsed.Fragment == "" {
		return fmt.Errorf("IRI has a scheme but nothing after it: %s", iri)
	}
	return nil
}

// validateLocalName checks a segment appended to a namespace base.
// Local names may not introduce a fragment or query delimiter that would change
// how the base is read.
func validateLocalName(local string) error {
	if local == "" {
		return fmt.Errorf("empty local name")
	}
	if err := checkIRIChars(local); err != nil {
		return err
	}
	for i, r := range local {
		if r == '#' {
			return fmt.Errorf("invalid character '#' at position %d", i)
		}
	}
	return nil
}

func checkIRIChars(value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("invalid UTF-8")
	}
	for i, r := range value {
		switch {
		case unicode.IsSpace(r):
			return fmt.Errorf("whitespace at position %d", i)
		case unicode.IsControl(r):
			return fmt.Errorf("invalid control character at position %d", i)
		case isIRIRefExcluded(r):
			return fmt.Errorf("invalid character '%c' at position %d (should be percent-encoded)", r, i)
		case r == '%':
			if i+2 >= len(value) || !isHex(value[i+1]) || !isHex(value[i+2]) {
				return fmt.Errorf("malformed percent-encoding at position %d", i)
			}
		}
	}
	return nil
}

func isIRIRefExcluded(r rune) bool {
	switch r {
	case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
		return true
	}
	return r <= 0x20
}

func isHex(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
