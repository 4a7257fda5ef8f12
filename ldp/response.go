package ldp

import (
	"strings"

	"github.com/pquerna/cachecontrol/cacheobject"
)

// Response wraps a completed HTTP exchange against an LDP server.
//
// Construction is two-phase. NewResponse runs the cheap, total phase:
// header parsing (Link relations, URL resolution, allowed methods) that
// cannot fail. The possibly-failing phase (parsing the body into a graph
// and building the Resource or Container) runs on the first call to
// ParsedGraph or Entry and is cached, error included, for later calls.
type Response struct {
	engine GraphEngine
	result TransportResult
	method string

	url            string
	linkHeaders    map[string][]string
	types          []string
	acl            string
	meta           string
	allowedMethods map[string]bool

	graphDone bool
	graph     Graph
	graphErr  error

	entryDone bool
	entry     Entry
	entryErr  error
}

// NewResponse wraps a transport result. The method is the lowercase HTTP
// verb of the originating request, supplied by the caller because the
// transport result does not retain it. A nil result yields an empty
// response with every field at its safe default and Exists() == false.
// A nil engine defaults to a MemoryEngine.
func NewResponse(engine GraphEngine, result TransportResult, method string) *Response {
	if engine == nil {
		engine = NewMemoryEngine()
	}
	r := &Response{
		engine:         engine,
		method:         strings.ToLower(method),
		linkHeaders:    map[string][]string{},
		allowedMethods: map[string]bool{},
	}
	if result == nil {
		return r
	}
	r.result = result

	r.linkHeaders = ParseLinkHeader(result.Header("Link"))

	// A Location header may be origin-relative; it resolves against the
	// response's own scheme+host, never against the response path. An
	// absolute Location wins verbatim.
	if loc := result.Header("Location"); loc != "" {
		r.url = AbsoluteURL(Hostname(result.ResponseURL()), loc)
	} else {
		r.url = result.ResponseURL()
	}

	seen := map[string]bool{}
	for _, class := range r.linkHeaders["type"] {
		if !seen[class] {
			seen[class] = true
			r.types = append(r.types, class)
		}
	}

	if targets := r.linkHeaders["acl"]; len(targets) > 0 {
		r.acl = targets[0]
	}
	if targets := r.linkHeaders["meta"]; len(targets) > 0 {
		r.meta = targets[0]
	} else if targets := r.linkHeaders["describedBy"]; len(targets) > 0 {
		r.meta = targets[0]
	}

	// GET is never preflighted, so Allow/Accept-Patch only carry meaning
	// on other verbs.
	if r.method != "get" && r.method != "" {
		for _, verb := range strings.Split(result.Header("Allow"), ",") {
			if verb = strings.ToLower(strings.TrimSpace(verb)); verb != "" {
				r.allowedMethods[verb] = true
			}
		}
		if result.Header("Accept-Patch") != "" {
			r.allowedMethods["patch"] = true
		}
	}
	return r
}

// URL returns the resolved absolute URL of the exchange: the Location
// header resolved against the response origin when present, else the
// transport-reported final URL.
func (r *Response) URL() string { return r.url }

// Method returns the lowercase HTTP verb of the originating request.
func (r *Response) Method() string { return r.method }

// Status returns the HTTP status code, 0 for an empty response.
func (r *Response) Status() int {
	if r.result == nil {
		return 0
	}
	return r.result.Status()
}

// Raw returns the raw response body, "" for an empty response.
func (r *Response) Raw() string {
	if r.result == nil {
		return ""
	}
	return r.result.Body()
}

// LinkHeaders returns the parsed Link relations.
func (r *Response) LinkHeaders() map[string][]string { return r.linkHeaders }

// Types returns the deduplicated rel="type" link targets.
func (r *Response) Types() []string { return r.types }

// IsContainer reports whether the link types declare an LDP container.
func (r *Response) IsContainer() bool {
	for _, class := range r.types {
		if class == LDPContainer || class == LDPBasicContainer {
			return true
		}
	}
	return false
}

// Exists reports whether a transport result is present with a status in
// [200, 400). 3xx counts: a redirect is not absence.
func (r *Response) Exists() bool {
	if r.result == nil {
		return false
	}
	status := r.result.Status()
	return status >= 200 && status < 400
}

// ContentType returns the media type of the body with any ";"-delimited
// parameters stripped, "" for an empty response or absent header.
func (r *Response) ContentType() string {
	if r.result == nil {
		return ""
	}
	mediaType, _, _ := strings.Cut(r.result.Header("Content-Type"), ";")
	return strings.TrimSpace(mediaType)
}

// Allows reports whether the server advertised the verb via Allow or
// Accept-Patch. Only populated on non-GET responses.
func (r *Response) Allows(verb string) bool { return r.allowedMethods[strings.ToLower(verb)] }

// AllowedMethods returns the advertised verbs, lowercase.
func (r *Response) AllowedMethods() map[string]bool { return r.allowedMethods }

// AclAbsoluteURL returns the absolute URL of the resource's ACL companion,
// "" when the acl link relation is absent. A relative target resolves
// against the parent path of the response URL; an absolute one passes
// through unchanged.
func (r *Response) AclAbsoluteURL() string {
	if r.acl == "" {
		return ""
	}
	return AbsoluteURL(parentPath(r.url), r.acl)
}

// MetaAbsoluteURL returns the absolute URL of the descriptive metadata
// companion (meta, falling back to describedBy), "" when absent.
func (r *Response) MetaAbsoluteURL() string {
	if r.meta == "" {
		return ""
	}
	return AbsoluteURL(parentPath(r.url), r.meta)
}

// User returns the webid the server authenticated the request as, "" when
// the User header is absent.
func (r *Response) User() string {
	if r.result == nil {
		return ""
	}
	return r.result.Header("User")
}

// UpdatesVia returns the live-update channel advertised by the server, ""
// when the Updates-Via header is absent.
func (r *Response) UpdatesVia() string {
	if r.result == nil {
		return ""
	}
	return r.result.Header("Updates-Via")
}

// CacheControl returns the parsed response Cache-Control directives, nil
// when the header is absent.
func (r *Response) CacheControl() (*cacheobject.ResponseCacheDirectives, error) {
	if r.result == nil {
		return nil, nil
	}
	header := r.result.Header("Cache-Control")
	if header == "" {
		return nil, nil
	}
	return cacheobject.ParseResponseCacheControl(header)
}

// ParsedGraph parses the body into a graph with base URI = URL() and the
// declared content type. The first call does the work; its result, error
// included, is cached for every later call. A response without a transport
// result fails with ErrNoBody; a missing content type fails with
// ErrNoContentType; parse errors propagate from the graph engine.
func (r *Response) ParsedGraph() (Graph, error) {
	if r.graphDone {
		return r.graph, r.graphErr
	}
	r.graphDone = true
	if r.result == nil {
		r.graphErr = ErrNoBody
		return nil, r.graphErr
	}
	r.graph, r.graphErr = r.engine.Parse(r.result.Body(), r.url, r.ContentType())
	return r.graph, r.graphErr
}

// Entry builds the Resource or Container modeled by a GET response,
// choosing the variant from IsContainer(). Like ParsedGraph, the first
// call's outcome is cached. Non-GET responses yield (nil, nil): only GET
// bodies model a resource.
func (r *Response) Entry() (Entry, error) {
	if r.entryDone {
		return r.entry, r.entryErr
	}
	r.entryDone = true
	if r.method != "get" || r.result == nil {
		return nil, nil
	}
	if r.IsContainer() {
		r.entry, r.entryErr = NewContainer(r.url, r)
	} else {
		r.entry, r.entryErr = NewResource(r.url, r)
	}
	if r.entryErr != nil {
		r.entry = nil
	}
	return r.entry, r.entryErr
}
