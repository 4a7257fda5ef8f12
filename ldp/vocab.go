package ldp

// Namespace is a vocabulary base IRI. Term appends a local name to it.
type Namespace string

// Term returns the full IRI for a local name in the namespace.
func (n Namespace) Term(local string) string { return string(n) + local }

// Well-known namespaces used by LDP servers.
const (
	// NSLDP is the Linked Data Platform vocabulary.
	NSLDP Namespace = "http://www.w3.org/ns/ldp#"
	// NSRDF is the RDF syntax vocabulary.
	NSRDF Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// NSSolid is the Solid terms vocabulary.
	NSSolid Namespace = "http://www.w3.org/ns/solid/terms#"
	// NSStat is the POSIX stat vocabulary used for container metadata.
	NSStat Namespace = "http://www.w3.org/ns/posix/stat#"
)

// namespaces maps a short prefix to its namespace, for lookup-by-prefix
// callers (e.g. Vocab("ldp", "contains")).
var namespaces = map[string]Namespace{
	"ldp":   NSLDP,
	"rdf":   NSRDF,
	"solid": NSSolid,
	"stat":  NSStat,
}

// Vocab resolves a prefixed name to a full IRI. The second return is false
// when the prefix is not registered.
func Vocab(prefix, local string) (string, bool) {
	ns, ok := namespaces[prefix]
	if !ok {
		return "", false
	}
	return ns.Term(local), true
}

// IRIs the models consult directly.
const (
	// RDFType is the rdf:type predicate.
	RDFType = string(NSRDF) + "type"
	// LDPContains is the containment predicate linking a container to its
	// immediate children.
	LDPContains = string(NSLDP) + "contains"
	// LDPContainer is the generic container class.
	LDPContainer = string(NSLDP) + "Container"
	// LDPBasicContainer is the basic container class.
	LDPBasicContainer = string(NSLDP) + "BasicContainer"
	// LDPResource is the generic resource class.
	LDPResource = string(NSLDP) + "Resource"
)

// Media types exchanged with LDP servers.
const (
	TextTurtle        = "text/turtle"
	ApplicationLDJSON = "application/ld+json"
	ApplicationSPARQL = "application/sparql-update"
)
