package ldp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Graph answers triple-pattern queries over a parsed RDF document. A nil
// term in a pattern is a wildcard.
type Graph interface {
	// StatementsMatching returns every triple matching the pattern.
	StatementsMatching(s, p, o rdf.Term) []rdf.Triple
	// Each returns the terms occupying the unbound position of the
	// pattern: objects when o is nil, else subjects when s is nil, else
	// predicates.
	Each(s, p, o rdf.Term) []rdf.Term
	// TypeIRIs returns the set of rdf:type IRIs asserted for a node.
	TypeIRIs(node rdf.Term) map[string]bool
}

// GraphEngine parses an RDF document into a queryable Graph. The content
// type is mandatory: there is no fallback format, and an empty content type
// is a hard failure (ErrNoContentType).
type GraphEngine interface {
	Parse(source, baseURI, contentType string) (Graph, error)
}

// MemoryEngine is the default GraphEngine. It parses with rdf-go, keyed off
// the HTTP content type, and resolves relative IRIs in the result against
// the document base (servers routinely emit Turtle with <> and <child>
// references relative to the request URL).
type MemoryEngine struct {
	// Options is passed through to the rdf-go parser.
	Options []rdf.Option
}

// NewMemoryEngine returns a MemoryEngine with default parser options.
func NewMemoryEngine() *MemoryEngine { return &MemoryEngine{} }

// contentTypeFormats maps the RDF media types LDP servers emit to rdf-go
// format names.
var contentTypeFormats = map[string]string{
	"text/turtle":           "turtle",
	"application/n-triples": "ntriples",
	"application/trig":      "trig",
	"application/n-quads":   "nquads",
	"application/rdf+xml":   "rdfxml",
	"application/xml":       "rdfxml",
	"text/xml":              "rdfxml",
	"application/ld+json":   "jsonld",
}

// formatForContentType resolves a content type, parameters included, to an
// rdf-go format.
func formatForContentType(contentType string) (rdf.Format, bool) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	name, ok := contentTypeFormats[strings.ToLower(strings.TrimSpace(mediaType))]
	if !ok {
		return "", false
	}
	return rdf.ParseFormat(name)
}

// Parse implements GraphEngine.
func (m *MemoryEngine) Parse(source, baseURI, contentType string) (Graph, error) {
	if strings.TrimSpace(contentType) == "" {
		return nil, ErrNoContentType
	}
	format, ok := formatForContentType(contentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	g := &memoryGraph{}
	err := rdf.Parse(context.Background(), strings.NewReader(source), format, func(stmt rdf.Statement) error {
		t := stmt.AsTriple()
		t.S = resolveTerm(baseURI, t.S)
		t.P = rdf.IRI{Value: resolveIRI(baseURI, t.P.Value)}
		t.O = resolveTerm(baseURI, t.O)
		g.statements = append(g.statements, t)
		return nil
	}, m.Options...)
	if err != nil {
		return nil, fmt.Errorf("ldp: parsing %s body: %w", format, err)
	}
	return g, nil
}

// resolveTerm absolutizes IRI terms; other term kinds pass through.
func resolveTerm(base string, term rdf.Term) rdf.Term {
	iri, ok := term.(rdf.IRI)
	if !ok {
		return term
	}
	return rdf.IRI{Value: resolveIRI(base, iri.Value)}
}

// resolveIRI resolves a possibly-relative IRI against a base, RFC 3986
// where the inputs parse and simple concatenation where they do not.
func resolveIRI(base, iri string) string {
	if base == "" {
		return iri
	}
	ref, err := url.Parse(iri)
	if err != nil {
		return iri
	}
	if ref.IsAbs() {
		return iri
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		if strings.HasSuffix(base, "/") {
			return base + iri
		}
		return base + "/" + iri
	}
	return baseURL.ResolveReference(ref).String()
}

type memoryGraph struct {
	statements []rdf.Triple
}

func (g *memoryGraph) StatementsMatching(s, p, o rdf.Term) []rdf.Triple {
	var out []rdf.Triple
	for _, t := range g.statements {
		if termMatches(s, t.S) && termMatches(p, t.P) && termMatches(o, t.O) {
			out = append(out, t)
		}
	}
	return out
}

func (g *memoryGraph) Each(s, p, o rdf.Term) []rdf.Term {
	matched := g.StatementsMatching(s, p, o)
	out := make([]rdf.Term, 0, len(matched))
	for _, t := range matched {
		switch {
		case o == nil:
			out = append(out, t.O)
		case s == nil:
			out = append(out, t.S)
		default:
			out = append(out, t.P)
		}
	}
	return out
}

func (g *memoryGraph) TypeIRIs(node rdf.Term) map[string]bool {
	types := map[string]bool{}
	for _, term := range g.Each(node, rdf.IRI{Value: RDFType}, nil) {
		if iri, ok := term.(rdf.IRI); ok {
			types[iri.Value] = true
		}
	}
	return types
}

// termMatches reports whether a concrete term satisfies a pattern term.
// A nil pattern matches anything.
func termMatches(pattern, term rdf.Term) bool {
	if pattern == nil {
		return true
	}
	return pattern.Kind() == term.Kind() && pattern.String() == term.String()
}
