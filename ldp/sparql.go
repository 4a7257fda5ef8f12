package ldp

import (
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Update is a SPARQL update sent as an LDP PATCH body: the deletions run
// before the insertions, matching application/sparql-update semantics.
type Update struct {
	Deletions  []rdf.Triple
	Insertions []rdf.Triple
}

// String composes the update query. Empty sections are omitted; a fully
// empty update composes to "".
func (u Update) String() string {
	var b strings.Builder
	if len(u.Deletions) > 0 {
		writeData(&b, "DELETE DATA", u.Deletions)
	}
	if len(u.Insertions) > 0 {
		writeData(&b, "INSERT DATA", u.Insertions)
	}
	return b.String()
}

func writeData(b *strings.Builder, keyword string, triples []rdf.Triple) {
	if b.Len() > 0 {
		b.WriteString(";\n")
	}
	b.WriteString(keyword)
	b.WriteString(" {\n")
	for _, t := range triples {
		b.WriteString("  ")
		b.WriteString(formatTerm(t.S))
		b.WriteString(" ")
		b.WriteString(formatTerm(t.P))
		b.WriteString(" ")
		b.WriteString(formatTerm(t.O))
		b.WriteString(" .\n")
	}
	b.WriteString("}")
}

// formatTerm renders a term in N-Triples syntax: IRIs in angle brackets,
// literals and blank nodes in their canonical string forms.
func formatTerm(term rdf.Term) string {
	if iri, ok := term.(rdf.IRI); ok {
		return "<" + iri.Value + ">"
	}
	return term.String()
}
