package transform

import (
	"strings"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

// IdentifierFunc names an entity within a namespace.
type IdentifierFunc func(ns rdf.Namespace, name string) (rdf.IRI, error)

// LocalName derives the IRI segment of a display name: every space becomes
// an underscore. Distinct names that normalize to the same segment name the
// same resource.
func LocalName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// Identify is the naming authority for demons and races: the resource named
// name in ns. It is deterministic and has no side effects.
func Identify(ns rdf.Namespace, name string) (rdf.IRI, error) {
	return ns.Get(LocalName(name))
}

// RaceIdentifier returns the race term for race. Every transformer that
// refers to a race goes through it.
func RaceIdentifier(ns rdf.Namespace, race string) (rdf.IRI, error) {
	return Identify(ns, race)
}
