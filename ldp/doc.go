// Package ldp is a client library for Linked Data Platform (LDP) servers.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
//
// It issues the usual CRUD operations over HTTP and turns the raw responses
// into typed models:
//   - Response wraps a completed HTTP exchange: parsed Link relations,
//     allowed methods, ACL/meta companion URLs, content type, existence.
//   - Resource represents a single LDP resource: identity, RDF types, and
//     the graph parsed from its body.
//   - Container extends Resource with the tree of children extracted from
//     ldp:contains triples, classified into sub-containers and resources.
//
// The RDF machinery is injected through the GraphEngine interface; the
// default MemoryEngine parses Turtle, JSON-LD, RDF/XML and N-Triples bodies
// with github.com/geoknoesis/rdf-go and answers triple-pattern queries from
// an in-memory statement list.
//
// Construction is two-phase. Creating a Response only parses headers and
// never fails; the possibly-failing work (parsing the body, building the
// Resource or Container) happens on the first call to ParsedGraph or Entry
// and is cached, error included, for every later call.
//
// Example (listing a container):
//
//	client := ldp.NewClient()
//	folder, err := client.GetContainer(ctx, "https://pod.example/docs/")
//	if err != nil {
//	    // handle error
//	}
//	for uri := range folder.Resources() {
//	    fmt.Println(uri)
//	}
//
// The modeling core performs no I/O: header parsing, graph querying and
// tree extraction are synchronous transformations over already-fetched
// data. All network activity lives in Client, which takes a context on
// every call.
package ldp
