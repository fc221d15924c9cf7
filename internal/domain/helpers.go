package domain

import "strings"

// SplitTags turns the stored comma-separated tag string into a trimmed list,
// dropping empties.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}

// NormalizeTags is SplitTags plus inner-whitespace collapsing, used for
// client-entered tag strings.
func NormalizeTags(s string) []string {
	tags := SplitTags(s)
	for i, t := range tags {
		tags[i] = strings.Join(strings.Fields(t), " ")
	}
	return tags
}

// NormalizeLinks splits a newline-separated URL list, trimming and dropping
// empty lines.
func NormalizeLinks(s string) []string {
	lines := strings.Split(s, "\n")
	links := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		links = append(links, l)
	}
	return links
}
