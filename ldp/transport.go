package ldp

import (
	"io"
	"net/http"
)

// TransportResult is the shape of a completed HTTP exchange as the models
// consume it. The transport itself (redirects, timeouts, proxies) is a
// collaborator; the models only read the finished result.
type TransportResult interface {
	// Status returns the HTTP status code.
	Status() int
	// StatusText returns the status line text.
	StatusText() string
	// ResponseURL returns the final URL after redirects.
	ResponseURL() string
	// Body returns the raw response body text.
	Body() string
	// Header returns a response header value, "" when absent.
	Header(name string) string
}

type httpResult struct {
	status     int
	statusText string
	url        string
	body       string
	header     http.Header
}

// NewHTTPResult adapts a net/http response into a TransportResult, draining
// and closing its body. The final URL comes from the request attached to
// the response, which net/http rewrites across redirects.
func NewHTTPResult(resp *http.Response) (TransportResult, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	url := ""
	if resp.Request != nil && resp.Request.URL != nil {
		url = resp.Request.URL.String()
	}
	return &httpResult{
		status:     resp.StatusCode,
		statusText: resp.Status,
		url:        url,
		body:       string(body),
		header:     resp.Header,
	}, nil
}

func (h *httpResult) Status() int { return h.status }

func (h *httpResult) StatusText() string { return h.statusText }

func (h *httpResult) ResponseURL() string { return h.url }

func (h *httpResult) Body() string { return h.body }

func (h *httpResult) Header(name string) string { return h.header.Get(name) }
