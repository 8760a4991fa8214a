package locate

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Hosts that a "company website" search must never resolve to: job boards,
// aggregators, and ATS hosts are all places a careers page may live, but
// none of them is the company's own site.
var domainBlocklist = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"ziprecruiter.com",
	"monster.com",
	"careerbuilder.com",
	"simplyhired.com",
	"builtin.com",
	"levels.fyi",
	"crunchbase.com",
	"wikipedia.org",

	// ATS / job boards
	"greenhouse.io",
	"boards.greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"workday.com",
	"smartrecruiters.com",
	"icims.com",
	"jobvite.com",
	"applytojob.com",
}

// searchDomain asks DuckDuckGo's HTML endpoint for the company's official
// website and returns the first result host that is not blocklisted, or
// "" when nothing usable comes back.
func (w *Websites) searchDomain(ctx context.Context, company string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		return ""
	}

	query := fmt.Sprintf("%s official website", sanitizeCompanyForSearch(company))
	u := w.searchBase + url.QueryEscape(query)

	doc, err := w.client.Get(ctx, u)
	if err != nil {
		log.Printf("[locate] search failed company=%q err=%v", company, err)
		return ""
	}

	var best string
	doc.Find("a.result__a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return true
		}

		target := decodeDDGRedirect(href)
		host := hostFromURL(target)
		if host == "" {
			return true
		}

		host = strings.ToLower(strings.TrimPrefix(host, "www."))
		if isBlockedDomain(host) {
			return true
		}

		best = host
		return false // stop at first good domain
	})

	return best
}

func decodeDDGRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	// DDG sometimes uses /l/?uddg=<urlencoded>
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if dec, err := url.QueryUnescape(uddg); err == nil && dec != "" {
			return dec
		}
	}
	return href
}

func hostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func isBlockedDomain(host string) bool {
	for _, b := range domainBlocklist {
		if host == b || strings.HasSuffix(host, "."+b) {
			return true
		}
	}
	return false
}

func sanitizeCompanyForSearch(s string) string {
	s = strings.TrimSpace(s)
	// remove common suffixes that confuse search
	repls := []string{
		", Inc.", "", " Inc.", "", " Inc", "",
		", LLC", "", " LLC", "",
		", Ltd.", "", " Ltd.", "", " Ltd", "",
	}
	r := strings.NewReplacer(repls...)
	s = r.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
