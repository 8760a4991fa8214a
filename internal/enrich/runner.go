// Package enrich runs the company enrichment pipeline: website discovery,
// careers-page location, ATS detection, and job extraction, one company at
// a time.
package enrich

import (
	"context"
	"log"
	"time"

	"jobscout-engine/internal/ats"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/locate"
	"jobscout-engine/internal/store"
)

type WebsiteLocator interface {
	Locate(ctx context.Context, company string) (string, bool)
}

type CareersLocator interface {
	Find(ctx context.Context, rootURL string) (string, bool)
}

type JobSource interface {
	Extract(ctx context.Context, pageURL, provider string, limit int) []domain.JobPosting
}

type SiteCache interface {
	GetSite(ctx context.Context, company string) (store.Site, error)
	UpsertSite(ctx context.Context, company string, site store.Site) error
}

type Runner struct {
	Websites WebsiteLocator
	Careers  CareersLocator
	Jobs     JobSource
	Cache    SiteCache // optional

	MaxJobs int
	Delay   time.Duration

	// Checkpoint, when set, persists the full record slice every
	// CheckpointEvery companies so a killed run loses little work.
	CheckpointEvery int
	Checkpoint      func(records []domain.CompanyRecord) error
}

type Summary struct {
	Companies    int
	Websites     int
	CareersPages int
	JobsTotal    int
}

// Run processes records strictly sequentially, mutating them in place.
// Every per-company failure is recovered; only context cancellation stops
// the batch early.
func (r *Runner) Run(ctx context.Context, records []domain.CompanyRecord) (Summary, error) {
	maxJobs := r.MaxJobs
	if maxJobs <= 0 || maxJobs > domain.MaxJobs {
		maxJobs = domain.MaxJobs
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return r.summarize(records), err
		}

		rec := &records[i]
		if rec.Name == "" {
			rec.Note = "No company name provided"
			continue
		}
		log.Printf("[enrich] (%d/%d) %s", i+1, len(records), rec.Name)

		r.process(ctx, rec)

		if r.CheckpointEvery > 0 && r.Checkpoint != nil && (i+1)%r.CheckpointEvery == 0 {
			if err := r.Checkpoint(records); err != nil {
				log.Printf("[enrich] checkpoint failed: %v", err)
			}
		}

		// politeness delay between companies
		if r.Delay > 0 && i < len(records)-1 {
			select {
			case <-ctx.Done():
				return r.summarize(records), ctx.Err()
			case <-time.After(r.Delay):
			}
		}
	}

	return r.summarize(records), nil
}

func (r *Runner) process(ctx context.Context, rec *domain.CompanyRecord) {
	maxJobs := r.MaxJobs
	if maxJobs <= 0 || maxJobs > domain.MaxJobs {
		maxJobs = domain.MaxJobs
	}

	if r.Cache != nil {
		cached, err := r.Cache.GetSite(ctx, rec.Name)
		if err != nil {
			log.Printf("[enrich] cache read company=%q err=%v", rec.Name, err)
		}
		if rec.WebsiteURL == "" {
			rec.WebsiteURL = cached.Website
		}
		if rec.CareersURL == "" {
			rec.CareersURL = cached.Careers
		}
	}

	if rec.WebsiteURL == "" {
		if u, ok := r.Websites.Locate(ctx, rec.Name); ok {
			rec.WebsiteURL = u
		}
	}

	if rec.LinkedInURL == "" {
		rec.LinkedInURL = locate.LinkedInURL(rec.Name)
	}

	if rec.CareersURL == "" && rec.WebsiteURL != "" {
		if u, ok := r.Careers.Find(ctx, rec.WebsiteURL); ok {
			rec.CareersURL = u
		}
	}
	if rec.JobsPageURL == "" {
		rec.JobsPageURL = rec.CareersURL
	}

	provider := ""
	if rec.CareersURL != "" {
		provider = ats.Detect(rec.CareersURL)
		if rec.JobCount() < maxJobs {
			for _, p := range r.Jobs.Extract(ctx, rec.CareersURL, provider, maxJobs) {
				rec.AddJob(p)
			}
		}
	}

	if provider != "" && provider != ats.Generic {
		rec.Note = "ATS: " + provider
	} else {
		rec.Note = "No ATS detected"
	}

	if r.Cache != nil {
		if err := r.Cache.UpsertSite(ctx, rec.Name, store.Site{
			Website: rec.WebsiteURL,
			Careers: rec.CareersURL,
		}); err != nil {
			log.Printf("[enrich] cache write company=%q err=%v", rec.Name, err)
		}
	}
}

func (r *Runner) summarize(records []domain.CompanyRecord) Summary {
	var s Summary
	s.Companies = len(records)
	for i := range records {
		if records[i].WebsiteURL != "" {
			s.Websites++
		}
		if records[i].CareersURL != "" {
			s.CareersPages++
		}
		s.JobsTotal += records[i].JobCount()
	}
	return s
}
