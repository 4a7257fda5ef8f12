package ldp

import "strings"

// AbsoluteURL joins a base URL and a path. A path that already starts with
// "http" is returned unchanged. Otherwise one leading slash is stripped from
// the path and one trailing slash from the base, and the two are joined with
// a single "/". The join is deliberately textual, not RFC 3986 reference
// resolution: LDP related-resource links are either absolute or simple
// same-directory names.
func AbsoluteURL(base, pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http") {
		return pathOrURL
	}
	pathOrURL = strings.TrimPrefix(pathOrURL, "/")
	base = strings.TrimSuffix(base, "/")
	return base + "/" + pathOrURL
}

// Hostname returns the scheme and host of a URL, with any path dropped:
// "https://foo.example/a/b" yields "https://foo.example". A
// protocol-relative input ("//foo.example/a") keeps its "//" prefix. Inputs
// without "//" are returned unchanged.
func Hostname(url string) string {
	proto, rest, ok := strings.Cut(url, "//")
	if !ok {
		return url
	}
	host, _, _ := strings.Cut(rest, "/")
	return proto + "//" + host
}

// PathBaseName returns the last non-empty path segment of a URI. One
// trailing slash is skipped, so containers ("…/docs/") and resources
// ("…/docs") both yield "docs". An empty or root-only input yields "".
func PathBaseName(uri string) string {
	uri = strings.TrimSuffix(uri, "/")
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// parentPath returns the URL truncated just after its last "/", the base
// against which ACL and meta links resolve.
func parentPath(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[:i+1]
	}
	return url
}
