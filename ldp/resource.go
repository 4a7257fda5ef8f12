package ldp

import (
	"sort"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Entry is an element of an LDP tree: either a *Resource or a *Container.
// IsContainer distinguishes the two without a type switch.
type Entry interface {
	URI() string
	Name() string
	IsType(class string) bool
	IsContainer() bool
}

// Resource represents a single LDP resource: its absolute URI, short name,
// RDF types, and (when built from a response) the graph parsed from its
// body. Immutable after construction.
type Resource struct {
	uri   string
	name  string
	types map[string]bool
	graph Graph
	resp  *Response
}

// NewResource builds a Resource. When a response is supplied its resolved
// URL overrides the given uri (the response reflects any server-side
// redirect), the body is parsed through the response's shared graph parse,
// and the resource's types are read from the graph. A response without a
// usable content type fails construction; there is no fallback format.
func NewResource(uri string, resp *Response) (*Resource, error) {
	r := &Resource{uri: uri, types: map[string]bool{}}
	if err := r.initFromResponse(resp); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resource) initFromResponse(resp *Response) error {
	if resp != nil {
		if u := resp.URL(); u != "" {
			r.uri = u
		}
	}
	r.name = PathBaseName(r.uri)
	if resp == nil {
		return nil
	}
	g, err := resp.ParsedGraph()
	if err != nil {
		return err
	}
	r.resp = resp
	r.graph = g
	for class := range g.TypeIRIs(rdf.IRI{Value: r.uri}) {
		r.types[class] = true
	}
	return nil
}

// newChildResource builds a bare resource for a container entry whose body
// has not been fetched. Types come from the parent container's graph.
func newChildResource(uri string, types map[string]bool) *Resource {
	r := &Resource{uri: uri, name: PathBaseName(uri), types: map[string]bool{}}
	for class := range types {
		r.types[class] = true
	}
	return r
}

// URI returns the absolute identifier of the resource.
func (r *Resource) URI() string { return r.uri }

// Name returns the last non-empty path segment of the URI.
func (r *Resource) Name() string { return r.name }

// Types returns the resource's RDF class IRIs, sorted.
func (r *Resource) Types() []string {
	out := make([]string, 0, len(r.types))
	for class := range r.types {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// IsType reports whether the resource carries the exact class IRI. No URI
// normalization is performed; callers must match the form the graph engine
// returned.
func (r *Resource) IsType(class string) bool { return r.types[class] }

// IsContainer reports whether the entry is a container.
func (r *Resource) IsContainer() bool { return false }

// Graph returns the graph parsed from the resource's body, or nil when the
// resource was built without a response.
func (r *Resource) Graph() Graph { return r.graph }

// Response returns the originating response, if any. Provenance only: the
// resource neither owns nor controls it.
func (r *Resource) Response() *Response { return r.resp }
