package utils

import (
	"os"
	"strconv"
	"time"
)

type ScraperConfig struct {
	BaseURL      string        // site to scrape
	UserAgent    string        // sent on every fetch
	PageDelay    time.Duration // politeness delay between consecutive pages
	DefaultPages int           // pages to scrape when the caller gives none
}

type ServerConfig struct {
	HTTPAddr string
	TCPAddr  string // progress event listener
}

func LoadScraperConfig() ScraperConfig {
	base := os.Getenv("QUOTEHUB_BASE_URL")
	if base == "" {
		base = "https://quotes.toscrape.com"
	}

	ua := os.Getenv("QUOTEHUB_USER_AGENT")
	if ua == "" {
		ua = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}

	delay := 1 * time.Second
	if ms := os.Getenv("QUOTEHUB_PAGE_DELAY_MS"); ms != "" {
		// if parse fails, keep the 1s default
		if n, err := strconv.Atoi(ms); err == nil && n >= 0 {
			delay = time.Duration(n) * time.Millisecond
		}
	}

	pages := 3
	if p := os.Getenv("QUOTEHUB_DEFAULT_PAGES"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			pages = n
		}
	}

	return ScraperConfig{
		BaseURL:      base,
		UserAgent:    ua,
		PageDelay:    delay,
		DefaultPages: pages,
	}
}

func LoadServerConfig() ServerConfig {
	httpAddr := os.Getenv("QUOTEHUB_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	tcpAddr := os.Getenv("QUOTEHUB_TCP_ADDR")
	if tcpAddr == "" {
		tcpAddr = ":7070"
	}

	return ServerConfig{
		HTTPAddr: httpAddr,
		TCPAddr:  tcpAddr,
	}
}
