// Package templates instantiates the Turtle templates of the vocabulary and
// game documents. A template is plain text where every "{}" stands for a
// namespace IRI.
package templates

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// Placeholder is replaced by the namespace in every template.
const Placeholder = "{}"

// Names of the embedded default templates.
const (
	Vocabulary = "vocabulary.ttl_template"
	Game       = "game.ttl_template"
)

// defaultFS embeds the default templates at build time.
//
//go:embed *.ttl_template
var defaultFS embed.FS

// Load returns the template at path, or the embedded template name when path
// is empty.
func Load(path, name string) (string, error) {
	if path == "" {
		data, err := defaultFS.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("template %s: %w", name, err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &rdf.IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// Instantiate replaces every placeholder in template with namespace.
func Instantiate(template, namespace string) string {
	return strings.ReplaceAll(template, Placeholder, namespace)
}

// Render loads a template and instantiates it.
func Render(path, name, namespace string) (string, error) {
	template, err := Load(path, name)
	if err != nil {
		return "", err
	}
	return Instantiate(template, namespace), nil
}
