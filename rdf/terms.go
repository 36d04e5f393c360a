package rdf

// Well-known namespace IRIs.
const (
	RDFNamespace    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace   = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace    = "http://www.w3.org/2001/XMLSchema#"
	SchemaNamespace = "https://schema.org/"
)

// Fixed terms shared by every encoder and transformer. They are plain values
// and must not be modified.
var (
	RDFType    = IRI{Value: RDFNamespace + "type"}
	XSDString  = IRI{Value: XSDNamespace + "string"}
	XSDInteger = IRI{Value: XSDNamespace + "integer"}
	SchemaName = IRI{Value: SchemaNamespace + "name"}
)

// StandardPrefixes returns the prefix map for the namespaces above.
func StandardPrefixes() map[string]string {
	return map[string]string{
		"rdf":    RDFNamespace,
		"rdfs":   RDFSNamespace,
		"xsd":    XSDNamespace,
		"schema": SchemaNamespace,
	}
}
