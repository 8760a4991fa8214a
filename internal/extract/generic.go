package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/htmlutil"
)

var jobPathSegments = []string{
	"/jobs/", "/careers/", "/positions/", "/openings/",
	"/opportunities/", "/apply/", "/job/", "/career/",
}

var jobCardSelector = strings.Join([]string{
	`div[class*="job"]`, `div[class*="career"]`, `div[class*="position"]`, `div[class*="opening"]`,
	`section[class*="job"]`, `section[class*="career"]`, `section[class*="position"]`, `section[class*="opening"]`,
}, ", ")

// generic runs three strategies in order until the limit is reached:
// job-path anchors, role-keyword headings paired with a nearby job link,
// and job-card containers. Title quality is best effort.
func (e *Extractor) generic(doc *goquery.Document, base *url.URL, limit int) []domain.JobPosting {
	seen := map[string]bool{}
	var jobs []domain.JobPosting

	// full reports whether the limit has been reached after trying to add.
	full := func(title, jobURL string) bool {
		title = htmlutil.CleanText(title)
		if jobURL == "" || seen[jobURL] {
			return len(jobs) >= limit
		}
		if len(title) < 5 || len(title) > 100 || e.skipTitle(title) {
			return len(jobs) >= limit
		}
		seen[jobURL] = true
		jobs = append(jobs, domain.JobPosting{Title: title, URL: jobURL})
		return len(jobs) >= limit
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !hasJobPath(href) {
			return true
		}
		return !full(a.Text(), htmlutil.Resolve(base, href))
	})
	if len(jobs) >= limit {
		return jobs
	}

	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		title := htmlutil.CleanText(h.Text())
		if !e.hasRoleKeyword(title) {
			return true
		}
		link := ""
		h.Parent().Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			if hasJobPath(href) {
				link = htmlutil.Resolve(base, href)
				return false
			}
			return true
		})
		if link == "" {
			return true
		}
		return !full(title, link)
	})
	if len(jobs) >= limit {
		return jobs
	}

	doc.Find(jobCardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := htmlutil.CleanText(card.Find("h1, h2, h3, h4").First().Text())
		if title == "" {
			return true
		}
		href, ok := card.Find("a[href]").First().Attr("href")
		if !ok {
			return true
		}
		return !full(title, htmlutil.Resolve(base, href))
	})

	return jobs
}

func hasJobPath(href string) bool {
	href = strings.ToLower(href)
	for _, seg := range jobPathSegments {
		if strings.Contains(href, seg) {
			return true
		}
	}
	return false
}

func (e *Extractor) hasRoleKeyword(title string) bool {
	low := strings.ToLower(title)
	for _, kw := range e.roleKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// skipTitle filters generic navigation text ("Careers", "Apply") that
// matches job-path hrefs but names no role.
func (e *Extractor) skipTitle(title string) bool {
	low := strings.ToLower(title)
	for _, skip := range e.skipTitles {
		if low == skip {
			return true
		}
	}
	return false
}
