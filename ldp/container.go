package ldp

import (
	"sort"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Container is a Resource that holds children. The tree of children is
// extracted from ldp:contains triples in the container's graph: entries
// whose graph node carries an ldp:Container (or ldp:BasicContainer) type
// become nested *Containers, everything else a plain *Resource.
type Container struct {
	Resource

	contentURIs []string
	containers  map[string]*Container
	resources   map[string]*Resource
}

// NewContainer builds a Container. Construction follows NewResource, then,
// when a parsed graph is present, runs one extraction pass over it.
func NewContainer(uri string, resp *Response) (*Container, error) {
	base, err := NewResource(uri, resp)
	if err != nil {
		return nil, err
	}
	c := newContainerAround(*base)
	if c.graph != nil {
		c.AppendFromGraph(c.graph)
	}
	return c, nil
}

func newContainerAround(base Resource) *Container {
	return &Container{
		Resource:   base,
		containers: map[string]*Container{},
		resources:  map[string]*Resource{},
	}
}

// newChildContainer builds a nested container for which no body is
// available yet; its types are the ones the parent's graph reported.
func newChildContainer(uri string, types map[string]bool) *Container {
	c := newContainerAround(Resource{uri: uri, name: PathBaseName(uri), types: map[string]bool{}})
	for class := range types {
		c.types[class] = true
	}
	return c
}

// AppendFromGraph extracts container contents from a graph fragment. It is
// cumulative: each call appends to the existing contents, so a paginated
// container can be populated fragment by fragment without losing state.
//
// The pass reads the container's own types, collects the deduplicated and
// lexicographically sorted batch of ldp:contains objects, classifies every
// graph subject typed as a container into nested *Containers, and turns the
// rest of the batch into *Resources. The container's own URI is excluded
// from both maps; the comparison is exact string equality, so a self link
// emitted in an equivalent-but-different URI form is not filtered.
func (c *Container) AppendFromGraph(g Graph) {
	for class := range g.TypeIRIs(rdf.IRI{Value: c.uri}) {
		c.types[class] = true
	}

	batch := containsBatch(g)
	c.contentURIs = append(c.contentURIs, batch...)

	for _, class := range []string{LDPContainer, LDPBasicContainer} {
		for _, stmt := range g.StatementsMatching(nil, rdf.IRI{Value: RDFType}, rdf.IRI{Value: class}) {
			iri, ok := stmt.S.(rdf.IRI)
			if !ok || iri.Value == c.uri {
				continue
			}
			if _, exists := c.containers[iri.Value]; exists {
				continue
			}
			c.containers[iri.Value] = newChildContainer(iri.Value, g.TypeIRIs(iri))
		}
	}

	for _, uri := range batch {
		if uri == c.uri {
			continue
		}
		if _, isContainer := c.containers[uri]; isContainer {
			continue
		}
		if _, exists := c.resources[uri]; exists {
			continue
		}
		c.resources[uri] = newChildResource(uri, g.TypeIRIs(rdf.IRI{Value: uri}))
	}
}

// containsBatch returns the deduplicated, sorted IRI objects of every
// ldp:contains triple in the graph.
func containsBatch(g Graph) []string {
	seen := map[string]bool{}
	var batch []string
	for _, term := range g.Each(nil, rdf.IRI{Value: LDPContains}, nil) {
		iri, ok := term.(rdf.IRI)
		if !ok || seen[iri.Value] {
			continue
		}
		seen[iri.Value] = true
		batch = append(batch, iri.Value)
	}
	sort.Strings(batch)
	return batch
}

// IsContainer reports true.
func (c *Container) IsContainer() bool { return true }

// IsEmpty reports whether no content URIs have been extracted.
func (c *Container) IsEmpty() bool { return len(c.contentURIs) == 0 }

// ContentURIs returns every child URI found so far, sorted within each
// extraction batch and concatenated across batches.
func (c *Container) ContentURIs() []string { return c.contentURIs }

// Containers returns the nested containers keyed by absolute URI. The map
// is owned by the container; callers must not modify it.
func (c *Container) Containers() map[string]*Container { return c.containers }

// Resources returns the non-container children keyed by absolute URI. The
// map is owned by the container; callers must not modify it.
func (c *Container) Resources() map[string]*Resource { return c.resources }

// FindByType returns every child entry carrying the exact class IRI,
// containers first. Order among same-type matches is unspecified (map
// iteration order).
func (c *Container) FindByType(class string) []Entry {
	var out []Entry
	for _, child := range c.containers {
		if child.IsType(class) {
			out = append(out, child)
		}
	}
	for _, res := range c.resources {
		if res.IsType(class) {
			out = append(out, res)
		}
	}
	return out
}
