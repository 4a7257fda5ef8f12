package ldp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-go/rdf"
)

const basicContainerLink = `<http://www.w3.org/ns/ldp#BasicContainer>; rel="type"`

func TestClientGetContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, TextTurtle, r.Header.Get("Accept"))

		switch r.URL.Path {
		case "/docs/":
			w.Header().Set("Content-Type", "text/turtle")
			w.Header().Set("Link", basicContainerLink)
			io.WriteString(w, `<> <http://www.w3.org/ns/ldp#contains> <note.ttl> .
<> <http://www.w3.org/ns/ldp#contains> <sub/> .
<sub/> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/ldp#Container> .
`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient()
	folder, err := client.GetContainer(context.Background(), server.URL+"/docs/")
	require.NoError(t, err)

	assert.False(t, folder.IsEmpty())
	assert.Len(t, folder.ContentURIs(), 2)
	assert.Contains(t, folder.Resources(), server.URL+"/docs/note.ttl")
	assert.Contains(t, folder.Containers(), server.URL+"/docs/sub/")
}

func TestClientGetContainerRejectsPlainResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/turtle")
		w.Header().Set("Link", `<http://www.w3.org/ns/ldp#Resource>; rel="type"`)
		io.WriteString(w, "")
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.GetContainer(context.Background(), server.URL+"/note.ttl")
	require.Error(t, err)

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "get", opErr.Method)
}

func TestClientGetContainerMissing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := NewClient()
	_, err := client.GetContainer(context.Background(), server.URL+"/gone/")
	require.Error(t, err)

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, http.StatusNotFound, opErr.Status)
}

func TestClientLoadEntriesPartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/docs/":
			w.Header().Set("Content-Type", "text/turtle")
			w.Header().Set("Link", basicContainerLink)
			io.WriteString(w, `<> <http://www.w3.org/ns/ldp#contains> <good.ttl> .
<> <http://www.w3.org/ns/ldp#contains> <bad.ttl> .
`)
		case "/docs/good.ttl":
			w.Header().Set("Content-Type", "text/turtle")
			io.WriteString(w, `<> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://ex.org/Note> .`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient()
	folder, err := client.GetContainer(context.Background(), server.URL+"/docs/")
	require.NoError(t, err)

	entries := client.LoadEntries(context.Background(), folder)
	require.Len(t, entries, 2)

	good := entries[server.URL+"/docs/good.ttl"]
	require.NotNil(t, good)
	assert.True(t, good.IsType("http://ex.org/Note"))

	// The failed sibling is recorded as nil; it does not fail the batch.
	bad, present := entries[server.URL+"/docs/bad.ttl"]
	assert.True(t, present)
	assert.Nil(t, bad)
}

func TestClientPut(t *testing.T) {
	var gotMethod, gotContentType, gotLink, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotLink = r.Header.Get("Link")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.Put(context.Background(), server.URL+"/docs/note.ttl", "<http://a> <http://b> <http://c> .", TextTurtle)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, TextTurtle, gotContentType)
	assert.Contains(t, gotLink, LDPResource)
	assert.Equal(t, "<http://a> <http://b> <http://c> .", gotBody)
	assert.True(t, resp.Exists())
	assert.Equal(t, "put", resp.Method())
}

func TestClientCreateContainer(t *testing.T) {
	var gotSlug, gotLink string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSlug = r.Header.Get("Slug")
		gotLink = r.Header.Get("Link")
		w.Header().Set("Location", "/docs/reports/")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.CreateContainer(context.Background(), server.URL+"/docs/", "reports")
	require.NoError(t, err)

	assert.Equal(t, "reports", gotSlug)
	assert.Contains(t, gotLink, LDPBasicContainer)
	assert.Equal(t, server.URL+"/docs/reports/", resp.URL())
}

func TestClientPatchUpdate(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	update := Update{Insertions: []rdf.Triple{{
		S: rdf.IRI{Value: "http://ex.org/s"},
		P: rdf.IRI{Value: "http://ex.org/p"},
		O: rdf.IRI{Value: "http://ex.org/o"},
	}}}
	_, err := client.PatchUpdate(context.Background(), server.URL+"/docs/note.ttl", update)
	require.NoError(t, err)

	assert.Equal(t, ApplicationSPARQL, gotContentType)
	assert.Contains(t, gotBody, "INSERT DATA")
	assert.Contains(t, gotBody, "<http://ex.org/s>")
}

func TestClientDelete(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.Delete(context.Background(), server.URL+"/docs/note.ttl")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.True(t, resp.Exists())
}
