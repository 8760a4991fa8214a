// Package extract pulls a bounded number of job postings off a careers
// page, using provider selector rules when the hosting ATS is known and a
// generic heuristic pass otherwise.
package extract

import (
	"context"
	"log"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/ats"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/fetch"
	"jobscout-engine/internal/htmlutil"
)

type Extractor struct {
	client       *fetch.Client
	renderer     fetch.Renderer
	roleKeywords []string
	skipTitles   []string
	descLimit    int
}

func New(client *fetch.Client, renderer fetch.Renderer, roleKeywords, skipTitles []string, descLimit int) *Extractor {
	return &Extractor{
		client:       client,
		renderer:     renderer,
		roleKeywords: roleKeywords,
		skipTitles:   skipTitles,
		descLimit:    descLimit,
	}
}

// Extract returns at most limit postings from pageURL. Any fetch failure
// yields an empty result and a warning; it never aborts the batch.
func (e *Extractor) Extract(ctx context.Context, pageURL, provider string, limit int) []domain.JobPosting {
	if limit <= 0 {
		return nil
	}

	doc := e.load(ctx, pageURL)
	if doc == nil {
		return nil
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	if p, ok := ats.ProfileFor(provider); ok {
		return e.fromProfile(ctx, doc, base, p, limit)
	}
	return e.generic(doc, base, limit)
}

func (e *Extractor) load(ctx context.Context, pageURL string) *goquery.Document {
	if e.renderer != nil {
		html, err := e.renderer.HTML(ctx, pageURL)
		if err != nil {
			log.Printf("[extract] render failed url=%s err=%v", pageURL, err)
		} else if doc, err := fetch.Document(html); err == nil {
			return doc
		}
	}

	doc, err := e.client.Get(ctx, pageURL)
	if err != nil {
		log.Printf("[extract] fetch failed url=%s err=%v", pageURL, err)
		return nil
	}
	return doc
}

// fromProfile harvests the profile's job-link anchors in document order,
// then hydrates each posting from its detail page. Missing fields stay
// empty.
func (e *Extractor) fromProfile(ctx context.Context, doc *goquery.Document, base *url.URL, p ats.Profile, limit int) []domain.JobPosting {
	seen := map[string]bool{}
	var jobs []domain.JobPosting

	doc.Find(p.JobLinks).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		jobURL := htmlutil.Resolve(base, href)
		if jobURL == "" || seen[jobURL] {
			return true
		}
		title := htmlutil.CleanText(a.Text())
		if title == "" {
			return true
		}
		seen[jobURL] = true

		j := domain.JobPosting{Title: title, URL: jobURL}
		e.hydrateDetail(ctx, &j, p)
		jobs = append(jobs, j)
		return len(jobs) < limit
	})

	return jobs
}

// hydrateDetail fills empty fields from the posting's own page, falling
// through the profile's ordered selector lists. Best effort: a failed
// fetch leaves the posting as harvested from the listing.
func (e *Extractor) hydrateDetail(ctx context.Context, j *domain.JobPosting, p ats.Profile) {
	if j.URL == "" {
		return
	}
	doc, err := e.client.Get(ctx, j.URL)
	if err != nil {
		log.Printf("[extract] detail fetch failed url=%s err=%v", j.URL, err)
		return
	}

	if j.Title == "" {
		j.Title = firstText(doc, p.TitleSelectors)
	}
	if j.Location == "" {
		j.Location = firstText(doc, p.LocationSelectors)
	}
	if j.Description == "" {
		if d := firstText(doc, p.DescriptionSelectors); d != "" {
			j.Description = htmlutil.Truncate(d, e.descLimit)
		}
	}
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if t := htmlutil.CleanText(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}
