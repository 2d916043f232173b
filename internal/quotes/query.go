package quotes

import (
	"sort"
	"strings"

	"quotehub/pkg/models"
)

// Filter returns the quotes matching both criteria, preserving input
// order. search matches case-insensitively against text or author; tag
// must appear verbatim in a quote's tag list. Empty criteria match
// everything, so Filter(qs, "", "") is the identity.
func Filter(qs []models.Quote, search, tag string) []models.Quote {
	if search == "" && tag == "" {
		return qs
	}

	needle := strings.ToLower(search)
	out := make([]models.Quote, 0, len(qs))
	for _, q := range qs {
		if search != "" &&
			!strings.Contains(strings.ToLower(q.Text), needle) &&
			!strings.Contains(strings.ToLower(q.Author), needle) {
			continue
		}
		if tag != "" && !hasTag(q, tag) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func hasTag(q models.Quote, tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ComputeStats counts quotes and the distinct authors and tags among
// them. An empty input yields all zeros.
func ComputeStats(qs []models.Quote) models.Stats {
	authors := make(map[string]struct{})
	tags := make(map[string]struct{})
	for _, q := range qs {
		authors[q.Author] = struct{}{}
		for _, t := range q.Tags {
			tags[t] = struct{}{}
		}
	}
	return models.Stats{
		TotalQuotes:   len(qs),
		UniqueAuthors: len(authors),
		UniqueTags:    len(tags),
	}
}

// ListTags returns the distinct tags across all quotes, sorted
// ascending.
func ListTags(qs []models.Quote) []string {
	seen := make(map[string]struct{})
	for _, q := range qs {
		for _, t := range q.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
