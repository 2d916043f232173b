package sync

import "time"

const (
	ScrapeStartedEvent  = "scrape.started"
	ScrapePageEvent     = "scrape.page"
	ScrapeFinishedEvent = "scrape.finished"
)

// ScrapeEvent is broadcast to all connected clients as a scraping run
// progresses. Purely observational: the run does not depend on anyone
// listening.
type ScrapeEvent struct {
	Type        string    `json:"type"`
	RunID       string    `json:"run_id"`
	Page        int       `json:"page,omitempty"`
	PageQuotes  int       `json:"page_quotes,omitempty"`
	TotalQuotes int       `json:"total_quotes"`
	At          time.Time `json:"at"`
}
