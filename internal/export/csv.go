package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"quotehub/pkg/models"
)

// ErrNoQuotes is returned when an export is requested for zero quotes.
// Exports never produce header-only files; the caller surfaces this to
// the user and moves on.
var ErrNoQuotes = errors.New("no quotes to export")

// TimestampLayout is the ISO-8601 instant format used in the timestamp
// column, microsecond precision, no zone suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// TagSeparator joins a quote's tags into the single tags column.
const TagSeparator = "; "

var header = []string{"id", "text", "author", "tags", "page", "timestamp"}

// Encode renders quotes as CSV: an id,text,author,tags,page,timestamp
// header followed by one row per quote, RFC 4180 quoting throughout.
func Encode(qs []models.Quote) ([]byte, error) {
	if len(qs) == 0 {
		return nil, ErrNoQuotes
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, q := range qs {
		row := []string{
			strconv.Itoa(q.ID),
			q.Text,
			q.Author,
			strings.Join(q.Tags, TagSeparator),
			strconv.Itoa(q.Page),
			q.ScrapedAt.Format(TimestampLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write quote %d: %w", q.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds the conventional export name,
// quotes_export_<YYYYMMDD>_<HHMMSS>.csv.
func Filename(t time.Time) string {
	return "quotes_export_" + t.Format("20060102_150405") + ".csv"
}
