package ldp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client issues CRUD operations against an LDP server and wraps every
// completed exchange in a Response. It carries no retry, auth or proxy
// policy; customize those on the injected http.Client.
type Client struct {
	httpClient *http.Client
	engine     GraphEngine
	agent      string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient injects the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithEngine injects the graph engine used to parse response bodies.
func WithEngine(engine GraphEngine) ClientOption {
	return func(c *Client) { c.engine = engine }
}

// WithAgent sets the User-Agent header on every request.
func WithAgent(agent string) ClientOption {
	return func(c *Client) { c.agent = agent }
}

// NewClient returns a Client backed by http.DefaultClient and a
// MemoryEngine unless options say otherwise.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{httpClient: http.DefaultClient, engine: NewMemoryEngine()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, url, body string, header map[string]string) (*Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &OperationError{Method: strings.ToLower(method), URL: url, Err: err}
	}
	for name, value := range header {
		req.Header.Set(name, value)
	}
	if c.agent != "" {
		req.Header.Set("User-Agent", c.agent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &OperationError{Method: strings.ToLower(method), URL: url, Err: err}
	}
	result, err := NewHTTPResult(resp)
	if err != nil {
		return nil, &OperationError{Method: strings.ToLower(method), URL: url, Status: resp.StatusCode, Err: err}
	}
	return NewResponse(c.engine, result, method), nil
}

// Get fetches a resource, asking for Turtle.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, "", map[string]string{"Accept": TextTurtle})
}

// Head probes a resource without transferring its body.
func (c *Client) Head(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodHead, url, "", nil)
}

// Options asks the server which methods the resource supports.
func (c *Client) Options(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodOptions, url, "", nil)
}

// Delete removes a resource.
func (c *Client) Delete(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, url, "", nil)
}

// Put writes a resource body at a known URL.
func (c *Client) Put(ctx context.Context, url, body, contentType string) (*Response, error) {
	return c.do(ctx, http.MethodPut, url, body, map[string]string{
		"Content-Type": contentType,
		"Link":         fmt.Sprintf("<%s>; rel=\"type\"", LDPResource),
	})
}

// Post creates a resource inside a container; the server picks the final
// URL, hinted by the slug. The created location is on the returned
// Response's URL.
func (c *Client) Post(ctx context.Context, container, slug, body, contentType string) (*Response, error) {
	return c.do(ctx, http.MethodPost, container, body, map[string]string{
		"Content-Type": contentType,
		"Slug":         slug,
		"Link":         fmt.Sprintf("<%s>; rel=\"type\"", LDPResource),
	})
}

// CreateContainer creates a child container inside a parent container.
func (c *Client) CreateContainer(ctx context.Context, parent, name string) (*Response, error) {
	return c.do(ctx, http.MethodPost, parent, "", map[string]string{
		"Content-Type": TextTurtle,
		"Slug":         name,
		"Link":         fmt.Sprintf("<%s>; rel=\"type\"", LDPBasicContainer),
	})
}

// Patch applies a SPARQL update to a resource.
func (c *Client) Patch(ctx context.Context, url, update string) (*Response, error) {
	return c.do(ctx, http.MethodPatch, url, update, map[string]string{
		"Content-Type": ApplicationSPARQL,
	})
}

// PatchUpdate composes and applies an Update.
func (c *Client) PatchUpdate(ctx context.Context, url string, u Update) (*Response, error) {
	return c.Patch(ctx, url, u.String())
}

// GetContainer fetches a URL and returns its Container model. It fails
// when the resource is absent or is not a container.
func (c *Client) GetContainer(ctx context.Context, url string) (*Container, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if !resp.Exists() {
		return nil, &OperationError{Method: "get", URL: url, Status: resp.Status(), Err: errors.New("resource does not exist")}
	}
	entry, err := resp.Entry()
	if err != nil {
		return nil, &OperationError{Method: "get", URL: url, Status: resp.Status(), Err: err}
	}
	container, ok := entry.(*Container)
	if !ok {
		return nil, &OperationError{Method: "get", URL: url, Status: resp.Status(), Err: errors.New("resource is not a container")}
	}
	return container, nil
}

// LoadEntries fetches the body of every child of a container and models
// it. A failed child load (transport error, missing resource, unparseable
// body) records a nil placeholder under the child's URI and
// never fails the aggregate; all siblings still load.
func (c *Client) LoadEntries(ctx context.Context, container *Container) map[string]Entry {
	entries := make(map[string]Entry, len(container.ContentURIs()))
	for _, uri := range container.ContentURIs() {
		resp, err := c.Get(ctx, uri)
		if err != nil || !resp.Exists() {
			entries[uri] = nil
			continue
		}
		entry, err := resp.Entry()
		if err != nil {
			entries[uri] = nil
			continue
		}
		entries[uri] = entry
	}
	return entries
}
