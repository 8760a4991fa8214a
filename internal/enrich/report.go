package enrich

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"jobscout-engine/internal/domain"
)

// Tally summarizes a result set against the assignment target.
type Tally struct {
	Companies   int
	WithWebsite int
	WithCareers int
	JobsTotal   int
	SlotCounts  [domain.MaxJobs]int
	ByATS       map[string]int
	NoATS       int
	Target      int
}

func TallyRecords(records []domain.CompanyRecord, target int) Tally {
	t := Tally{
		Companies: len(records),
		ByATS:     map[string]int{},
		Target:    target,
	}
	for i := range records {
		rec := &records[i]
		if rec.WebsiteURL != "" {
			t.WithWebsite++
		}
		if rec.CareersURL != "" {
			t.WithCareers++
		}
		for slot, j := range rec.Jobs {
			if strings.TrimSpace(j.Title) == "" {
				continue
			}
			t.JobsTotal++
			if slot < domain.MaxJobs {
				t.SlotCounts[slot]++
			}
		}
		if name, ok := strings.CutPrefix(rec.Note, "ATS: "); ok {
			t.ByATS[name]++
		} else if rec.Note == "No ATS detected" {
			t.NoATS++
		}
	}
	return t
}

// Progress reports how far JobsTotal is toward Target, in percent.
func (t Tally) Progress() float64 {
	if t.Target <= 0 {
		return 0
	}
	return float64(t.JobsTotal) / float64(t.Target) * 100
}

// JobURLs collects every non-empty posting URL in the result set.
func JobURLs(records []domain.CompanyRecord) []string {
	var urls []string
	for i := range records {
		for _, j := range records[i].Jobs {
			if strings.TrimSpace(j.URL) != "" {
				urls = append(urls, j.URL)
			}
		}
	}
	return urls
}

type HeadClient interface {
	Head(ctx context.Context, url string) (int, error)
}

// VerifyLinks HEAD-checks a random sample of urls with bounded
// concurrency and reports how many answered with a success status.
func VerifyLinks(ctx context.Context, client HeadClient, urls []string, sample int) (working, checked int) {
	if sample <= 0 || len(urls) == 0 {
		return 0, 0
	}
	if sample < len(urls) {
		shuffled := append([]string(nil), urls...)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		urls = shuffled[:sample]
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(5)

	for _, u := range urls {
		g.Go(func() error {
			status, err := client.Head(gctx, u)
			mu.Lock()
			checked++
			if err == nil && status >= 200 && status <= 299 {
				working++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return working, checked
}
