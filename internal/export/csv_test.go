package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"quotehub/pkg/models"
)

func TestEncodeEmptyIsAnError(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, ErrNoQuotes) {
		t.Fatalf("Encode(nil) err = %v, want ErrNoQuotes", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 123456000, time.UTC)
	qs := []models.Quote{
		{ID: 1, Text: `She said, "hello".`, Author: "A, Author", Tags: []string{"life", "wisdom"}, Page: 1, ScrapedAt: ts},
		{ID: 2, Text: "Plain text\nwith newline", Author: "Someone", Tags: nil, Page: 3, ScrapedAt: ts},
	}

	data, err := Encode(qs)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("re-parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}

	wantHeader := []string{"id", "text", "author", "tags", "page", "timestamp"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	for i, q := range qs {
		row := rows[i+1]
		if row[0] != strconv.Itoa(q.ID) {
			t.Errorf("row %d id = %q, want %d", i, row[0], q.ID)
		}
		if row[1] != q.Text {
			t.Errorf("row %d text = %q, want %q", i, row[1], q.Text)
		}
		if row[2] != q.Author {
			t.Errorf("row %d author = %q, want %q", i, row[2], q.Author)
		}
		if row[4] != strconv.Itoa(q.Page) {
			t.Errorf("row %d page = %q, want %d", i, row[4], q.Page)
		}
		if row[5] != "2024-01-15T10:30:00.123456" {
			t.Errorf("row %d timestamp = %q, want ISO-8601 instant", i, row[5])
		}
	}

	// Tags column splits back to the original list.
	gotTags := strings.Split(rows[1][3], TagSeparator)
	if !reflect.DeepEqual(gotTags, []string{"life", "wisdom"}) {
		t.Errorf("tags = %v, want [life wisdom]", gotTags)
	}
	if rows[2][3] != "" {
		t.Errorf("empty tag list rendered as %q, want empty field", rows[2][3])
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC)
	got := Filename(ts)
	if got != "quotes_export_20240115_103005.csv" {
		t.Errorf("Filename = %q", got)
	}
	if ok, _ := regexp.MatchString(`^quotes_export_\d{8}_\d{6}\.csv$`, got); !ok {
		t.Errorf("Filename %q does not match convention", got)
	}
}
