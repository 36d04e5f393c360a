package rdf

import (
	"strings"
	"testing"
)

func TestValidateIRI(t *testing.T) {
	tests := []struct {
		name    string
		iri     string
		wantErr bool
	}{
		// Valid IRIs
		{
			name:    "valid absolute IRI with http scheme",
			iri:     "http://example.org/resource",
			wantErr: false,
		},
		{
			name:    "valid absolute IRI with https scheme",
			iri:     "https://example.org/resource",
			wantErr: false,
		},
		{
			name:    "valid absolute IRI with custom scheme",
			iri:     "urn:example:resource",
			wantErr: false,
		},
		{
			name:    "valid IRI with query",
			iri:     "http://example.org/resource?param=value",
			wantErr: false,
		},
		{
			name:    "valid IRI with fragment",
			iri:     "http://example.org/resource#fragment",
			wantErr: false,
		},
		{
			name:    "valid IRI with unicode",
			iri:     "http://example.org/悪魔",
			wantErr: false,
		},

		// Invalid IRIs
		{
			name:    "empty IRI",
			iri:     "",
			wantErr: true,
		},
		{
			name:    "relative IRI",
			iri:     "/path/to/resource",
			wantErr: true,
		},
		{
			name:    "network path without scheme",
			iri:     "//example.org/resource",
			wantErr: true,
		},
		{
			name:    "IRI with space",
			iri:     "http://example.org/a b",
			wantErr: true,
		},
		{
			name:    "IRI with newline",
			iri:     "http://example.org/a\nb",
			wantErr: true,
		},
		{
			name:    "IRI with angle bracket",
			iri:     "http://example.org/<resource>",
			wantErr: true,
		},
		{
			name:    "IRI with backslash",
			iri:     `http://example.org/a\b`,
			wantErr: true,
		},
		{
			name:    "IRI with invalid UTF-8",
			iri:     "http://example.org/\xff",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIRI(tt.iri)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIRI(%q) error = %v, wantErr %v", tt.iri, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIRIErrorMessages(t *testing.T) {
	err := ValidateIRI("http://example.org/<x>")
	if err == nil || !strings.Contains(err.Error(), "percent-encoded") {
		t.Fatalf("expected percent-encoding hint, got %v", err)
	}
	err = ValidateIRI("/relative")
	if err == nil || !strings.Contains(err.Error(), "without scheme") {
		t.Fatalf("expected missing scheme message, got %v", err)
	}
}
