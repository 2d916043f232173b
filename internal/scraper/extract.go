package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"quotehub/pkg/models"
)

// Selectors for quotes.toscrape.com-shaped pages: each quotation lives in a
// div.quote block holding its text, author and tag links.
const (
	quoteBlockSel = "div.quote"
	quoteTextSel  = "span.text"
	authorSel     = "small.author"
	tagLinkSel    = "a.tag"
)

// ExtractError records why one quote container on a page was rejected.
// Rejections never abort the page; callers get them alongside the quotes
// that did parse.
type ExtractError struct {
	Page   int
	Index  int // container position on the page, 0-based
	Reason string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("page %d quote %d: %s", e.Page, e.Index, e.Reason)
}

// ExtractPage maps every quote container in doc to a models.Quote. A
// container is accepted only when both its text and author are non-empty
// after trimming; rejected containers are reported in the second return
// value and skipped.
//
// IDs continue from nextID so numbering stays strictly increasing across
// pages regardless of how many containers each page rejects. Timestamps
// are taken once per page at extraction time.
func ExtractPage(doc *goquery.Document, page, nextID int) ([]models.Quote, []error) {
	now := time.Now().UTC()

	var (
		out     []models.Quote
		skipped []error
	)

	doc.Find(quoteBlockSel).Each(func(i int, blk *goquery.Selection) {
		q, err := extractQuote(blk, page, i)
		if err != nil {
			skipped = append(skipped, err)
			return
		}
		q.ID = nextID + len(out)
		q.ScrapedAt = now
		out = append(out, q)
	})

	return out, skipped
}

func extractQuote(blk *goquery.Selection, page, index int) (models.Quote, error) {
	text := strings.TrimSpace(blk.Find(quoteTextSel).First().Text())
	if text == "" {
		return models.Quote{}, &ExtractError{Page: page, Index: index, Reason: "missing quote text"}
	}

	author := strings.TrimSpace(blk.Find(authorSel).First().Text())
	if author == "" {
		return models.Quote{}, &ExtractError{Page: page, Index: index, Reason: "missing author"}
	}

	tags := make([]string, 0, 4)
	blk.Find(tagLinkSel).Each(func(_ int, a *goquery.Selection) {
		if t := strings.TrimSpace(a.Text()); t != "" {
			tags = append(tags, t)
		}
	})

	return models.Quote{
		Text:   text,
		Author: author,
		Tags:   tags,
		Page:   page,
	}, nil
}
