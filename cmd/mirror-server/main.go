package main

import (
	"flag"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// Serves quotes.toscrape.com-shaped pages from a built-in sample set so
// the scraper, API server and CLI can all run without touching the real
// site. Page numbers past the sample set render with no quote blocks,
// which is exactly how the scraper detects the end of a site.

const pageSize = 4

type quote struct {
	Text   string
	Author string
	Tags   []string
}

var samples = []quote{
	{"The world as we have created it is a process of our thinking. It cannot be changed without changing our thinking.", "Albert Einstein", []string{"change", "deep-thoughts", "thinking", "world"}},
	{"It is our choices, Harry, that show what we truly are, far more than our abilities.", "J.K. Rowling", []string{"abilities", "choices"}},
	{"There are only two ways to live your life. One is as though nothing is a miracle. The other is as though everything is a miracle.", "Albert Einstein", []string{"inspirational", "life", "live", "miracle", "miracles"}},
	{"The person, be it gentleman or lady, who has not pleasure in a good novel, must be intolerably stupid.", "Jane Austen", []string{"aliteracy", "books", "classic", "humor"}},
	{"Imperfection is beauty, madness is genius and it's better to be absolutely ridiculous than absolutely boring.", "Marilyn Monroe", []string{"be-yourself", "inspirational"}},
	{"Try not to become a man of success. Rather become a man of value.", "Albert Einstein", []string{"adulthood", "success", "value"}},
	{"It is better to be hated for what you are than to be loved for what you are not.", "André Gide", []string{"life", "love"}},
	{"I have not failed. I've just found 10,000 ways that won't work.", "Thomas A. Edison", []string{"edison", "failure", "inspirational", "paraphrased"}},
	{"A woman is like a tea bag; you never know how strong it is until it's in hot water.", "Eleanor Roosevelt", []string{"misattributed-eleanor-roosevelt"}},
	{"A day without sunshine is like, you know, night.", "Steve Martin", []string{"humor", "obvious", "simile"}},
	{"This is the day your life will surely change.", "Anonymous", []string{"change", "courage"}},
	{"Be yourself; everyone else is already taken.", "Oscar Wilde", []string{"be-yourself", "honesty", "inspirational"}},
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><title>Quotes to Scrape (mirror)</title></head>
<body>
<div class="container">
{{range .Quotes}}    <div class="quote">
        <span class="text">{{.Text}}</span>
        <span>by <small class="author">{{.Author}}</small></span>
        <div class="tags">
            Tags:
{{range .Tags}}            <a class="tag" href="/tag/{{.}}/">{{.}}</a>
{{end}}        </div>
    </div>
{{end}}{{if not .Quotes}}    <p>No quotes found!</p>
{{end}}</div>
</body>
</html>
`))

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	flag.Parse()

	http.HandleFunc("/", servePage)

	log.Printf("[mirror] quotes mirror listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func servePage(w http.ResponseWriter, r *http.Request) {
	page := 1
	if path := strings.Trim(r.URL.Path, "/"); path != "" {
		parts := strings.Split(path, "/")
		if len(parts) != 2 || parts[0] != "page" {
			http.NotFound(w, r)
			return
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			http.NotFound(w, r)
			return
		}
		page = n
	}

	start := (page - 1) * pageSize
	var pageQuotes []quote
	if start < len(samples) {
		end := start + pageSize
		if end > len(samples) {
			end = len(samples)
		}
		pageQuotes = samples[start:end]
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, struct{ Quotes []quote }{pageQuotes}); err != nil {
		log.Printf("[mirror] render page %d: %v", page, err)
	}
}
