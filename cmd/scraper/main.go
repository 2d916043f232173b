package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quotehub/internal/export"
	"quotehub/internal/quotes"
	"quotehub/internal/scraper"
	"quotehub/pkg/models"
	"quotehub/pkg/utils"
)

func main() {
	cfg := utils.LoadScraperConfig()

	var (
		pagesArg = flag.String("pages", "", "number of pages to scrape")
		baseURL  = flag.String("base", cfg.BaseURL, "base URL of the quotes site")
		outPath  = flag.String("out", "", "output CSV path (default quotes_export_<ts>.csv)")
	)
	flag.Parse()

	// Non-numeric page counts fall back to the default instead of
	// failing the run.
	pages := cfg.DefaultPages
	if *pagesArg != "" {
		if n, err := strconv.Atoi(*pagesArg); err == nil && n > 0 {
			pages = n
		} else {
			log.Printf("[scraper] invalid page count %q, using default: %d", *pagesArg, cfg.DefaultPages)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := quotes.NewStore()
	scr := scraper.New(scraper.NewHTTPFetcher(cfg.UserAgent), store, *baseURL)
	scr.PageDelay = cfg.PageDelay

	collected, err := scr.Run(ctx, pages)
	if err != nil {
		log.Printf("[scraper] run ended early: %v", err)
	}

	printStats(collected)

	if len(collected) == 0 {
		log.Println("[scraper] nothing to export")
		return
	}

	data, err := export.Encode(collected)
	if err != nil {
		log.Fatalf("encode csv: %v", err)
	}

	path := *outPath
	if path == "" {
		path = export.Filename(time.Now())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("[scraper] exported %d quotes to %s", len(collected), path)
}

func printStats(collected []models.Quote) {
	stats := quotes.ComputeStats(collected)
	fmt.Println("==================================================")
	fmt.Printf("Total quotes:   %d\n", stats.TotalQuotes)
	fmt.Printf("Unique authors: %d\n", stats.UniqueAuthors)
	fmt.Printf("Unique tags:    %d\n", stats.UniqueTags)
	for i, q := range collected {
		if i == 3 {
			break
		}
		text := q.Text
		if len(text) > 80 {
			text = text[:80] + "..."
		}
		fmt.Printf("%d. %s - %s\n", i+1, text, q.Author)
	}
	fmt.Println("==================================================")
}
