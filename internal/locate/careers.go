package locate

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/fetch"
	"jobscout-engine/internal/htmlutil"
)

// CareersScan finds a hiring-related link on a company homepage. It is a
// heuristic classifier: the first matching link in document order wins,
// and nothing verifies the target is actually a careers page.
type CareersScan struct {
	client       *fetch.Client
	renderer     fetch.Renderer
	keywords     []string
	hrefPatterns []string
	navSelectors []string
	navKeywords  []string
}

func NewCareersScan(client *fetch.Client, renderer fetch.Renderer, keywords, hrefPatterns, navSelectors, navKeywords []string) *CareersScan {
	return &CareersScan{
		client:       client,
		renderer:     renderer,
		keywords:     keywords,
		hrefPatterns: hrefPatterns,
		navSelectors: navSelectors,
		navKeywords:  navKeywords,
	}
}

// Find fetches rootURL (rendered when a browser is available, static
// otherwise) and scans its hyperlinks.
func (s *CareersScan) Find(ctx context.Context, rootURL string) (string, bool) {
	var doc *goquery.Document

	if s.renderer != nil {
		html, err := s.renderer.HTML(ctx, rootURL)
		if err != nil {
			log.Printf("[locate] render failed url=%s err=%v", rootURL, err)
		} else if d, err := fetch.Document(html); err == nil {
			doc = d
		}
	}
	if doc == nil {
		d, err := s.client.Get(ctx, rootURL)
		if err != nil {
			log.Printf("[locate] homepage fetch failed url=%s err=%v", rootURL, err)
			return "", false
		}
		doc = d
	}

	return s.FindInDoc(doc, rootURL)
}

// FindInDoc scans every hyperlink for careers-related href patterns or
// link text, then makes a narrower pass restricted to navigation-like
// regions. First unique match in document order wins.
func (s *CareersScan) FindInDoc(doc *goquery.Document, rootURL string) (string, bool) {
	base, err := url.Parse(rootURL)
	if err != nil {
		return "", false
	}

	if u := s.scan(doc.Selection, base, s.keywords); u != "" {
		log.Printf("[locate] careers link url=%s", u)
		return u, true
	}

	for _, sel := range s.navSelectors {
		nav := doc.Find(sel).First()
		if nav.Length() == 0 {
			continue
		}
		if u := s.scan(nav, base, s.navKeywords); u != "" {
			log.Printf("[locate] careers link (nav) url=%s", u)
			return u, true
		}
	}

	return "", false
}

func (s *CareersScan) scan(root *goquery.Selection, base *url.URL, keywords []string) string {
	var found string
	root.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		text := strings.ToLower(htmlutil.CleanText(a.Text()))
		if !s.matches(strings.ToLower(href), text, keywords) {
			return true
		}
		if u := htmlutil.Resolve(base, href); u != "" {
			found = u
			return false
		}
		return true
	})
	return found
}

func (s *CareersScan) matches(href, text string, keywords []string) bool {
	for _, p := range s.hrefPatterns {
		if strings.Contains(href, p) {
			return true
		}
	}
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
