package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"quotehub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type quotesResponse struct {
	Success bool           `json:"success"`
	Quotes  []models.Quote `json:"quotes"`
	Total   int            `json:"total"`
}

type scrapeResponse struct {
	Success bool           `json:"success"`
	Quotes  []models.Quote `json:"quotes"`
	Stats   models.Stats   `json:"stats"`
	Message string         `json:"message"`
}

type statsResponse struct {
	Success bool         `json:"success"`
	Stats   models.Stats `json:"stats"`
}

type tagsResponse struct {
	Success bool     `json:"success"`
	Tags    []string `json:"tags"`
}

func main() {
	global := flag.NewFlagSet("quotehub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 120 * time.Second}

	switch args[0] {
	case "scrape":
		handleScrape(ctx, client, *baseURL, args[1:])
	case "quotes":
		handleQuotes(ctx, client, *baseURL, args[1:])
	case "stats":
		handleStats(ctx, client, *baseURL)
	case "tags":
		handleTags(ctx, client, *baseURL)
	case "export":
		handleExport(ctx, client, *baseURL, args[1:])
	case "watch":
		handleWatch(*baseURL, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleScrape(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	pages := fs.Int("pages", 3, "pages to scrape")
	_ = fs.Parse(args)

	payload := map[string]int{"max_pages": *pages}
	var resp scrapeResponse
	if err := doJSON(ctx, client, http.MethodPost, baseURL+"/api/scrape", payload, &resp); err != nil {
		log.Fatalf("scrape failed: %v", err)
	}

	fmt.Println(resp.Message)
	fmt.Printf("authors: %d, tags: %d\n", resp.Stats.UniqueAuthors, resp.Stats.UniqueTags)
}

func handleQuotes(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("quotes", flag.ExitOnError)
	search := fs.String("search", "", "substring to match in text or author")
	tag := fs.String("tag", "", "exact tag to filter by")
	_ = fs.Parse(args)

	var resp quotesResponse
	if err := doJSON(ctx, client, http.MethodGet, listURL(baseURL, "/api/quotes", *search, *tag), nil, &resp); err != nil {
		log.Fatalf("quotes failed: %v", err)
	}

	for _, q := range resp.Quotes {
		tags := ""
		if len(q.Tags) > 0 {
			tags = " [" + strings.Join(q.Tags, ", ") + "]"
		}
		fmt.Printf("#%d %s - %s%s\n", q.ID, q.Text, q.Author, tags)
	}
	fmt.Printf("total: %d\n", resp.Total)
}

func handleStats(ctx context.Context, client *http.Client, baseURL string) {
	var resp statsResponse
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/stats", nil, &resp); err != nil {
		log.Fatalf("stats failed: %v", err)
	}
	fmt.Printf("quotes: %d\nauthors: %d\ntags: %d\n",
		resp.Stats.TotalQuotes, resp.Stats.UniqueAuthors, resp.Stats.UniqueTags)
}

func handleTags(ctx context.Context, client *http.Client, baseURL string) {
	var resp tagsResponse
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/tags", nil, &resp); err != nil {
		log.Fatalf("tags failed: %v", err)
	}
	for _, t := range resp.Tags {
		fmt.Println(t)
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	search := fs.String("search", "", "substring to match in text or author")
	tag := fs.String("tag", "", "exact tag to filter by")
	out := fs.String("out", "quotes.csv", "output CSV path")
	_ = fs.Parse(args)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL(baseURL, "/api/export", *search, *tag), nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("export failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := os.WriteFile(*out, body, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("exported to %s\n", *out)
}

// handleWatch streams scrape-progress events, either over the raw TCP
// listener or the /ws endpoint.
func handleWatch(baseURL string, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	tcpAddr := fs.String("tcp", "", "TCP event listener address (e.g. 127.0.0.1:7070)")
	_ = fs.Parse(args)

	if *tcpAddr != "" {
		for {
			if err := watchTCP(*tcpAddr); err != nil {
				log.Printf("[watch] disconnected: %v", err)
			}
			time.Sleep(1 * time.Second) // auto reconnect
		}
	}

	endpoint, err := websocketURL(baseURL, "/ws")
	if err != nil {
		log.Fatalf("ws url: %v", err)
	}
	if err := watchWS(endpoint); err != nil {
		log.Fatalf("watch failed: %v", err)
	}
}

func watchTCP(addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	log.Printf("[watch] connected to %s", addr)
	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		printEvent(sc.Bytes())
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return os.ErrClosed
}

func watchWS(endpoint string) error {
	conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", endpoint, err)
	}
	defer conn.Close()

	log.Printf("[watch] connected to %s", endpoint)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		printEvent(msg)
	}
}

func printEvent(line []byte) {
	var obj map[string]any
	if err := json.Unmarshal(line, &obj); err != nil {
		fmt.Println(string(line))
		return
	}
	b, _ := json.MarshalIndent(obj, "", "  ")
	fmt.Println(string(b))
}

func doJSON(ctx context.Context, client *http.Client, method, rawURL string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = path
	return u.String(), nil
}

func listURL(baseURL, path, search, tag string) string {
	u := baseURL + path
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if tag != "" {
		q.Set("tag", tag)
	}
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func printUsage() {
	fmt.Println(`usage: quotehub [-api URL] <command>

commands:
  scrape  -pages N              trigger a scraping run
  quotes  -search S -tag T      list quotes, optionally filtered
  stats                         show collection statistics
  tags                          list all tags
  export  -search S -tag T -out F   download a CSV export
  watch   [-tcp ADDR]           stream scrape-progress events`)
}
