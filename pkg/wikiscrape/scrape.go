// Package wikiscrape collects words tagged with final-syllable synizesis
// from the Greek Wiktionary category pages.
//
// The pronoun category is deliberately not scraped: it only contains
// τέτοιος, which the curated word list already covers.
package wikiscrape

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Label identifies a scraped part-of-speech category.
type Label string

const (
	LabelAdjective     Label = "adj"
	LabelMasculineNoun Label = "noun_masc"
	LabelFeminineNoun  Label = "noun_fem"
	LabelNeuterNoun    Label = "noun_neut"
)

// Category is one Wiktionary category to scrape. Title is the page title as
// it appears in the wiki URL (underscores, no escaping); Suffixes are the
// word endings accepted for the category during postprocessing.
type Category struct {
	Label    Label
	Title    string
	Suffixes []string
}

// Categories returns the scraped category list. Neuter nouns in -ιος are
// left out on purpose: only το βιος qualifies and it is curated separately.
func Categories() []Category {
	return []Category{
		{
			Label:    LabelAdjective,
			Title:    "Κατηγορία:Επίθετα_με_συνίζηση_στην_κατάληξη_(νέα_ελληνικά)",
			Suffixes: []string{"ιος"},
		},
		{
			Label:    LabelMasculineNoun,
			Title:    "Κατηγορία:Ουσιαστικά_αρσενικά_με_συνίζηση_στην_κατάληξη_(νέα_ελληνικά)",
			Suffixes: []string{"ιας", "ιος"},
		},
		{
			Label:    LabelFeminineNoun,
			Title:    "Κατηγορία:Ουσιαστικά_θηλυκά_με_συνίζηση_στην_κατάληξη_(νέα_ελληνικά)",
			Suffixes: []string{"ια"},
		},
		{
			Label:    LabelNeuterNoun,
			Title:    "Κατηγορία:Ουσιαστικά_ουδέτερα_με_συνίζηση_στην_κατάληξη_(νέα_ελληνικά)",
			Suffixes: []string{"ιο", "ια"},
		},
	}
}

// Client scrapes category listings from a MediaWiki instance.
type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
	// Logf receives per-page progress lines; nil silences them.
	Logf func(format string, args ...any)
}

// NewClient returns a Client for the wiki at baseURL.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		HTTP:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

func (c *Client) fetch(pageURL string) (*html.Node, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return html.Parse(resp.Body)
}

// pageGuard remembers digests of listing pages already visited within one
// category. MediaWiki silently wraps pagination back to the first page past
// an internal limit instead of returning an empty page, so "stop when empty"
// would loop forever; "seen before, stop" terminates.
type pageGuard struct {
	seen map[[sha256.Size]byte]bool
}

func newPageGuard() *pageGuard {
	return &pageGuard{seen: make(map[[sha256.Size]byte]bool)}
}

// Visit records the page content and reports whether it was already seen.
func (g *pageGuard) Visit(pageText string) bool {
	digest := sha256.Sum256([]byte(pageText))
	if g.seen[digest] {
		return true
	}
	g.seen[digest] = true
	return false
}

// ScrapeCategory walks every listing page of cat and returns the member
// words. A failed page fetch aborts the category but keeps the words
// collected so far, so one flaky page does not discard a whole run; callers
// get both the partial slice and the error.
func (c *Client) ScrapeCategory(cat Category) ([]string, error) {
	pageURL := c.BaseURL + "/wiki/" + cat.Title
	// The pagination anchor titles carry spaces where the URL has
	// underscores.
	categoryText := strings.ReplaceAll(cat.Title, "_", " ")

	var words []string
	guard := newPageGuard()
	for pageURL != "" {
		if u, err := url.PathUnescape(pageURL); err == nil {
			c.logf("requesting %s", u)
		}
		doc, err := c.fetch(pageURL)
		if err != nil {
			return words, fmt.Errorf("wikiscrape: category %s: %w", cat.Label, err)
		}

		pageWords := memberWords(doc)
		if guard.Visit(strings.Join(pageWords, "\n")) {
			c.logf("category %s: page repeated, stopping", cat.Label)
			break
		}
		words = append(words, pageWords...)

		pageURL = ""
		if href := nextPageHref(doc, categoryText); href != "" {
			pageURL = c.BaseURL + href
		}
	}
	return words, nil
}

// ScrapeAll scrapes every category, returning sorted deduplicated words per
// label. Partial categories are kept; the first error is reported.
func (c *Client) ScrapeAll() (map[Label][]string, error) {
	out := make(map[Label][]string)
	var firstErr error
	for _, cat := range Categories() {
		words, err := c.ScrapeCategory(cat)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out[cat.Label] = sortUnique(words)
	}
	return out, firstErr
}

func sortUnique(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// Postprocess filters scraped words down to the endings each category
// accepts and regroups them by label plus suffix, mirroring the grouping of
// the committed word list files (adj_ιος, noun_neut_ια, ...).
func Postprocess(byLabel map[Label][]string) map[string][]string {
	suffixes := make(map[Label][]string)
	for _, cat := range Categories() {
		suffixes[cat.Label] = cat.Suffixes
	}

	out := make(map[string][]string)
	for label, words := range byLabel {
		for _, suf := range suffixes[label] {
			var kept []string
			for _, word := range words {
				if keepWord(word, suf) {
					kept = append(kept, word)
				}
			}
			if len(kept) > 0 {
				sort.Strings(kept)
				out[string(label)+"_"+suf] = kept
			}
		}
	}
	return out
}

func keepWord(word, suffix string) bool {
	first, _ := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError || unicode.IsUpper(first) || first == '-' {
		return false
	}
	if utf8.RuneCountInString(word) < 2 {
		return false
	}
	return strings.HasSuffix(word, suffix)
}

// memberWords extracts the member links of a category listing: the
// <a> elements of the <ul><li> lists inside .mw-category-group under
// <div id="mw-pages">. Group headings carry anchors of their own, so only
// list items count.
func memberWords(doc *html.Node) []string {
	pages := findByID(doc, "mw-pages")
	if pages == nil {
		return nil
	}
	var words []string
	walk(pages, func(n *html.Node) {
		if n.Type != html.ElementNode || !hasClass(n, "mw-category-group") {
			return
		}
		walk(n, func(ul *html.Node) {
			if ul.Type != html.ElementNode || ul.Data != "ul" {
				return
			}
			walk(ul, func(li *html.Node) {
				if li.Type != html.ElementNode || li.Data != "li" {
					return
				}
				walk(li, func(a *html.Node) {
					if a.Type == html.ElementNode && a.Data == "a" {
						if text := nodeText(a); text != "" {
							words = append(words, text)
						}
					}
				})
			})
		})
	})
	return words
}

// nextPageHref finds the pagination link to the next listing page: an
// anchor titled with the category name whose text mentions the next page.
func nextPageHref(doc *html.Node, categoryText string) string {
	var href string
	walk(doc, func(n *html.Node) {
		if href != "" || n.Type != html.ElementNode || n.Data != "a" {
			return
		}
		if attr(n, "title") != categoryText {
			return
		}
		if strings.Contains(nodeText(n), "επόμενη σελίδα") {
			href = attr(n, "href")
		}
	})
	return href
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(m *html.Node) {
		if m.Type == html.TextNode {
			b.WriteString(m.Data)
		}
	})
	return strings.TrimSpace(b.String())
}
