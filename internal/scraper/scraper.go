package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"quotehub/internal/quotes"
	synchub "quotehub/internal/sync"
	"quotehub/pkg/models"
)

// Scraper drives pagination: fetch, extract, append, delay, repeat.
// It owns the only write path into the store; a new run always replaces
// the previous run's quotes.
type Scraper struct {
	Fetcher Fetcher
	Store   *quotes.Store
	BaseURL string

	// PageDelay is the politeness pause between consecutive page
	// fetches (never after the last). Zero disables it, which tests
	// rely on.
	PageDelay time.Duration

	// StopOnEmptyPage halts the run when a page fetches fine but yields
	// no quotes, on the assumption the site ran out of pages. Fetch
	// errors never trigger this.
	StopOnEmptyPage bool

	// Events receives progress broadcasts. Nil is fine.
	Events *synchub.Hub
}

func New(fetcher Fetcher, store *quotes.Store, baseURL string) *Scraper {
	return &Scraper{
		Fetcher:         fetcher,
		Store:           store,
		BaseURL:         baseURL,
		PageDelay:       1 * time.Second,
		StopOnEmptyPage: true,
	}
}

// PageURL builds the fetch URL for a page: the site root for page 1,
// /page/<n>/ beyond that.
func (s *Scraper) PageURL(page int) string {
	if page <= 1 {
		return s.BaseURL
	}
	return fmt.Sprintf("%s/page/%d/", s.BaseURL, page)
}

// Run scrapes pages 1..maxPages into the store, replacing whatever the
// previous run collected. Per-page fetch failures are logged and count
// as zero quotes; the only error Run itself returns is ctx.Err() when
// the caller cancels between pages, and even then the quotes collected
// so far stay in the store.
func (s *Scraper) Run(ctx context.Context, maxPages int) ([]models.Quote, error) {
	runID := uuid.NewString()

	s.Store.Reset()
	log.Printf("[scraper] run %s: scraping up to %d pages from %s", runID, maxPages, s.BaseURL)

	s.Events.BroadcastJSON(synchub.ScrapeEvent{
		Type:  synchub.ScrapeStartedEvent,
		RunID: runID,
		At:    time.Now().UTC(),
	})

	for page := 1; page <= maxPages; page++ {
		if page > 1 && s.PageDelay > 0 {
			if err := sleepCtx(ctx, s.PageDelay); err != nil {
				return s.finish(runID, err)
			}
		}
		if err := ctx.Err(); err != nil {
			return s.finish(runID, err)
		}

		pageQuotes, fetchErr := s.scrapePage(ctx, page)
		if fetchErr != nil {
			log.Printf("[scraper] run %s: page %d failed: %v", runID, page, fetchErr)
			continue
		}

		s.Store.Append(pageQuotes...)
		log.Printf("[scraper] run %s: page %d: %d quotes (total %d)", runID, page, len(pageQuotes), s.Store.Len())

		s.Events.BroadcastJSON(synchub.ScrapeEvent{
			Type:        synchub.ScrapePageEvent,
			RunID:       runID,
			Page:        page,
			PageQuotes:  len(pageQuotes),
			TotalQuotes: s.Store.Len(),
			At:          time.Now().UTC(),
		})

		if len(pageQuotes) == 0 && s.StopOnEmptyPage {
			log.Printf("[scraper] run %s: page %d empty, stopping", runID, page)
			break
		}
	}

	return s.finish(runID, nil)
}

// scrapePage fetches and extracts one page. Returns an error only for
// transport problems; extraction rejections are logged and swallowed.
func (s *Scraper) scrapePage(ctx context.Context, page int) ([]models.Quote, error) {
	body, err := s.Fetcher.Fetch(ctx, s.PageURL(page))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page %d: %w", page, err)
	}

	pageQuotes, skipped := ExtractPage(doc, page, s.Store.NextID())
	for _, serr := range skipped {
		log.Printf("[scraper] skipped: %v", serr)
	}
	return pageQuotes, nil
}

func (s *Scraper) finish(runID string, err error) ([]models.Quote, error) {
	all := s.Store.All()
	log.Printf("[scraper] run %s: finished with %d quotes", runID, len(all))

	s.Events.BroadcastJSON(synchub.ScrapeEvent{
		Type:        synchub.ScrapeFinishedEvent,
		RunID:       runID,
		TotalQuotes: len(all),
		At:          time.Now().UTC(),
	})
	return all, err
}

// sleepCtx waits for d or returns early when ctx is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
