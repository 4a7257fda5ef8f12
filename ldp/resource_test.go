package ldp

import (
	"errors"
	"testing"
)

func TestNewResourceWithoutResponse(t *testing.T) {
	r, err := NewResource("https://foo.example/docs/note.ttl", nil)
	if err != nil {
		t.Fatalf("construction: %v", err)
	}
	if r.URI() != "https://foo.example/docs/note.ttl" {
		t.Fatalf("URI() = %q", r.URI())
	}
	if r.Name() != "note.ttl" {
		t.Fatalf("Name() = %q", r.Name())
	}
	if r.Graph() != nil || r.Response() != nil {
		t.Fatal("expected no graph or response")
	}
	if r.IsContainer() {
		t.Fatal("plain resource must not be a container")
	}
	if len(r.Types()) != 0 {
		t.Fatalf("expected no types, got %v", r.Types())
	}
}

func TestNewResourceFromResponse(t *testing.T) {
	resp := NewResponse(nil, &fakeResult{
		status: 200,
		url:    "https://foo.example/docs/note.ttl",
		body: `<> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/ldp#Resource> .
<> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://ex.org/Note> .
`,
		header: map[string]string{"Content-Type": "text/turtle; charset=UTF-8"},
	}, "get")

	// The caller-supplied URI loses to the response's resolved URL.
	r, err := NewResource("https://foo.example/old-location", resp)
	if err != nil {
		t.Fatalf("construction: %v", err)
	}
	if r.URI() != "https://foo.example/docs/note.ttl" {
		t.Fatalf("URI() = %q, want the response URL", r.URI())
	}
	if r.Name() != "note.ttl" {
		t.Fatalf("Name() = %q", r.Name())
	}
	if !r.IsType(LDPResource) || !r.IsType("http://ex.org/Note") {
		t.Fatalf("missing graph types: %v", r.Types())
	}
	if r.IsType("http://ex.org/note") {
		t.Fatal("IsType must be exact string membership, no normalization")
	}
	if r.Graph() == nil {
		t.Fatal("expected the parsed graph to be attached")
	}
	if r.Response() != resp {
		t.Fatal("expected the originating response as provenance")
	}
}

func TestNewResourceFailsWithoutContentType(t *testing.T) {
	resp := NewResponse(nil, &fakeResult{
		status: 200,
		url:    "https://foo.example/docs/note.ttl",
		body:   "some body",
	}, "get")
	if _, err := NewResource("https://foo.example/docs/note.ttl", resp); !errors.Is(err, ErrNoContentType) {
		t.Fatalf("expected ErrNoContentType, got %v", err)
	}
}
