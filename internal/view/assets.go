package view

import "strings"

// Assets resolves image references returned by the API into fetchable URLs.
type Assets struct {
	BaseURL string
}

// URL joins relative paths onto the base; absolute URLs pass through.
func (a Assets) URL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	base := strings.TrimRight(a.BaseURL, "/")
	if base == "" {
		return ref
	}
	return base + "/" + strings.TrimLeft(ref, "/")
}

// URLs resolves every reference, keeping order.
func (a Assets) URLs(refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = a.URL(ref)
	}
	return out
}
