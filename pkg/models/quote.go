package models

import "time"

// Quote is the canonical form of one scraped quotation. The scraper maps
// every quote container it accepts into this structure; the store, query
// and export layers all operate on it.
type Quote struct {
	ID        int       `json:"id"`        // 1-based, strictly increasing within a run
	Text      string    `json:"text"`      // quotation body, never empty
	Author    string    `json:"author"`    // never empty
	Tags      []string  `json:"tags"`      // source order preserved, may be empty
	Page      int       `json:"page"`      // page number the quote was extracted from
	ScrapedAt time.Time `json:"timestamp"` // capture time, UTC
}

// Stats summarizes a collection of quotes.
type Stats struct {
	TotalQuotes   int `json:"total_quotes"`
	UniqueAuthors int `json:"unique_authors"`
	UniqueTags    int `json:"unique_tags"`
}
