package quotes

import (
	"reflect"
	"testing"
	"time"

	"quotehub/pkg/models"
)

func sampleQuotes() []models.Quote {
	now := time.Now().UTC()
	return []models.Quote{
		{ID: 1, Text: "The world is a book.", Author: "Augustine", Tags: []string{"travel", "books"}, Page: 1, ScrapedAt: now},
		{ID: 2, Text: "Be yourself.", Author: "Oscar Wilde", Tags: []string{"life"}, Page: 1, ScrapedAt: now},
		{ID: 3, Text: "Stay hungry.", Author: "Steve Jobs", Tags: nil, Page: 2, ScrapedAt: now},
		{ID: 4, Text: "BOOKS are a uniquely portable magic.", Author: "Stephen King", Tags: []string{"books", "magic"}, Page: 2, ScrapedAt: now},
	}
}

func ids(qs []models.Quote) []int {
	out := make([]int, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	qs := sampleQuotes()
	got := Filter(qs, "", "")
	if !reflect.DeepEqual(ids(got), []int{1, 2, 3, 4}) {
		t.Errorf("Filter identity ids = %v, want [1 2 3 4]", ids(got))
	}
}

func TestFilterSearch(t *testing.T) {
	qs := sampleQuotes()

	tests := []struct {
		name   string
		search string
		tag    string
		want   []int
	}{
		{"case-insensitive text match", "books", "", []int{1, 4}},
		{"author match", "wilde", "", []int{2}},
		{"no match", "nonexistent", "", []int{}},
		{"tag exact", "", "books", []int{1, 4}},
		{"tag is case-sensitive", "", "Books", []int{}},
		{"tag must match verbatim", "", "book", []int{}},
		{"search and tag combined", "magic", "books", []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(qs, tt.search, tt.tag))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q, %q) ids = %v, want %v", tt.search, tt.tag, got, tt.want)
			}
		})
	}
}

// Filter output must always be an order-preserving subsequence of its
// input.
func TestFilterPreservesOrder(t *testing.T) {
	qs := sampleQuotes()
	got := Filter(qs, "a", "")
	last := 0
	for _, q := range got {
		if q.ID <= last {
			t.Fatalf("result ids %v are not strictly increasing", ids(got))
		}
		last = q.ID
	}
}

func TestComputeStats(t *testing.T) {
	if got := ComputeStats(nil); got != (models.Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zeros", got)
	}

	sameAuthor := make([]models.Quote, 5)
	for i := range sameAuthor {
		sameAuthor[i] = models.Quote{ID: i + 1, Text: "t", Author: "One Author"}
	}
	got := ComputeStats(sameAuthor)
	want := models.Stats{TotalQuotes: 5, UniqueAuthors: 1, UniqueTags: 0}
	if got != want {
		t.Errorf("ComputeStats = %+v, want %+v", got, want)
	}

	got = ComputeStats(sampleQuotes())
	want = models.Stats{TotalQuotes: 4, UniqueAuthors: 4, UniqueTags: 4}
	if got != want {
		t.Errorf("ComputeStats(sample) = %+v, want %+v", got, want)
	}
}

func TestListTags(t *testing.T) {
	if got := ListTags(nil); len(got) != 0 {
		t.Errorf("ListTags(nil) = %v, want empty", got)
	}

	qs := []models.Quote{
		{ID: 1, Text: "t", Author: "a", Tags: []string{"b", "a"}},
		{ID: 2, Text: "t", Author: "a", Tags: []string{"a", "c"}},
	}
	got := ListTags(qs)
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("ListTags = %v, want [a b c]", got)
	}
}
