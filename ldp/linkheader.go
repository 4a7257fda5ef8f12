package ldp

import (
	"regexp"
	"sort"
	"strings"
)

// RFC 5988 grammar. linkSegment matches one comma-separated link-value,
// keeping quoted parameter values and angle-bracketed URIs intact across
// embedded commas and semicolons. linkParam matches one key=value parameter
// inside a segment.
var (
	linkSegment = regexp.MustCompile(`<[^>]*>\s*(\s*;\s*[^()<>@,;:"/\[\]?={} \t]+=(([^()<>@,;:"/\[\]?={} \t]+)|("[^"]*")))*(,|$)`)
	linkParam   = regexp.MustCompile(`[^()<>@,;:"/\[\]?={} \t]+=(([^()<>@,;:"/\[\]?={} \t]+)|("[^"]*"))`)
)

// ParseLinkHeader parses a raw Link header value into a mapping from
// relation name to target URIs. An empty or absent header yields an empty
// map. Unrecognized parameters are ignored; segments the grammar cannot
// match are skipped.
//
// A relation's list is re-sorted lexicographically every time it grows past
// one entry, so relations with two or more targets come back in
// lexicographic order while single-target relations keep first-seen order.
func ParseLinkHeader(header string) map[string][]string {
	rels := map[string][]string{}
	if strings.TrimSpace(header) == "" {
		return rels
	}

	for _, segment := range linkSegment.FindAllString(header, -1) {
		end := strings.Index(segment, ">")
		if !strings.HasPrefix(segment, "<") || end < 0 {
			continue
		}
		uri := segment[1:end]

		for _, param := range linkParam.FindAllString(segment[end+1:], -1) {
			key, value, ok := strings.Cut(param, "=")
			if !ok || key != "rel" {
				continue
			}
			value = strings.Trim(value, `"`)
			rels[value] = append(rels[value], uri)
			if len(rels[value]) > 1 {
				sort.Strings(rels[value])
			}
		}
	}
	return rels
}
