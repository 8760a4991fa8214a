package enrich

import (
	"context"
	"errors"
	"testing"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/store"
)

type fakeWebsites struct {
	url   string
	ok    bool
	calls int
}

func (f *fakeWebsites) Locate(ctx context.Context, company string) (string, bool) {
	f.calls++
	return f.url, f.ok
}

type fakeCareers struct {
	url   string
	ok    bool
	calls int
}

func (f *fakeCareers) Find(ctx context.Context, rootURL string) (string, bool) {
	f.calls++
	return f.url, f.ok
}

type fakeJobs struct {
	jobs  []domain.JobPosting
	calls int
}

func (f *fakeJobs) Extract(ctx context.Context, pageURL, provider string, limit int) []domain.JobPosting {
	f.calls++
	if len(f.jobs) > limit {
		return f.jobs[:limit]
	}
	return f.jobs
}

type fakeCache struct {
	sites  map[string]store.Site
	getErr error
}

func (f *fakeCache) GetSite(ctx context.Context, company string) (store.Site, error) {
	if f.getErr != nil {
		return store.Site{}, f.getErr
	}
	return f.sites[company], nil
}

func (f *fakeCache) UpsertSite(ctx context.Context, company string, site store.Site) error {
	if f.sites == nil {
		f.sites = map[string]store.Site{}
	}
	f.sites[company] = site
	return nil
}

func TestRunKeepsRowCountAndSkipsBlankNames(t *testing.T) {
	records := []domain.CompanyRecord{
		{Name: "Acme"}, {Name: "Beta"}, {Name: ""}, {Name: "Gamma"}, {Name: "Delta"},
	}

	websites := &fakeWebsites{url: "https://acme.com", ok: true}
	careers := &fakeCareers{url: "https://jobs.lever.co/acme", ok: true}
	jobs := &fakeJobs{jobs: []domain.JobPosting{
		{Title: "Backend Engineer", URL: "https://jobs.lever.co/acme/1"},
		{Title: "Product Designer", URL: "https://jobs.lever.co/acme/2"},
	}}

	r := &Runner{Websites: websites, Careers: careers, Jobs: jobs}
	sum, err := r.Run(context.Background(), records)
	if err != nil {
		t.Fatal(err)
	}

	if sum.Companies != 5 {
		t.Fatalf("row count changed: %d", sum.Companies)
	}
	if websites.calls != 4 {
		t.Fatalf("blank row should not be looked up, got %d calls", websites.calls)
	}

	blank := records[2]
	if blank.Note != "No company name provided" {
		t.Fatalf("blank row note = %q", blank.Note)
	}
	if blank.WebsiteURL != "" || len(blank.Jobs) != 0 {
		t.Fatalf("blank row was enriched: %+v", blank)
	}

	for _, i := range []int{0, 1, 3, 4} {
		rec := records[i]
		if rec.WebsiteURL != "https://acme.com" {
			t.Fatalf("row %d missing website: %+v", i, rec)
		}
		if rec.JobsPageURL != rec.CareersURL {
			t.Fatalf("row %d jobs page should default to careers page", i)
		}
		if got := rec.JobCount(); got != 2 {
			t.Fatalf("row %d job count = %d", i, got)
		}
		if rec.Note != "ATS: lever" {
			t.Fatalf("row %d note = %q", i, rec.Note)
		}
	}
	if sum.JobsTotal != 8 {
		t.Fatalf("jobs total = %d", sum.JobsTotal)
	}
}

func TestRunNoATSDetected(t *testing.T) {
	records := []domain.CompanyRecord{{Name: "Acme"}}
	r := &Runner{
		Websites: &fakeWebsites{url: "https://acme.com", ok: true},
		Careers:  &fakeCareers{url: "https://acme.com/careers", ok: true},
		Jobs:     &fakeJobs{},
	}
	if _, err := r.Run(context.Background(), records); err != nil {
		t.Fatal(err)
	}
	if records[0].Note != "No ATS detected" {
		t.Fatalf("note = %q", records[0].Note)
	}
}

func TestRunFillsOnlyGaps(t *testing.T) {
	records := []domain.CompanyRecord{{
		Name:       "Acme",
		WebsiteURL: "https://already.example",
		CareersURL: "https://jobs.lever.co/acme",
		Jobs: []domain.JobPosting{
			{Title: "Backend Engineer", URL: "https://old.example/1"},
			{Title: "Data Analyst"},
			{Title: "Product Designer"},
		},
	}}

	websites := &fakeWebsites{url: "https://other.example", ok: true}
	jobs := &fakeJobs{jobs: []domain.JobPosting{{Title: "Backend Engineer", URL: "https://new.example/1"}}}
	r := &Runner{Websites: websites, Careers: &fakeCareers{}, Jobs: jobs}

	if _, err := r.Run(context.Background(), records); err != nil {
		t.Fatal(err)
	}

	if websites.calls != 0 {
		t.Fatal("filled website slot must not be re-located")
	}
	if jobs.calls != 0 {
		t.Fatal("full job slots must not be re-extracted")
	}
	if records[0].Jobs[0].URL != "https://old.example/1" {
		t.Fatalf("filled slot was overwritten: %+v", records[0].Jobs[0])
	}
}

func TestRunUsesCachedSite(t *testing.T) {
	cache := &fakeCache{sites: map[string]store.Site{
		"Acme": {Website: "https://acme.com", Careers: "https://jobs.lever.co/acme"},
	}}
	websites := &fakeWebsites{}
	careers := &fakeCareers{}
	r := &Runner{
		Websites: websites,
		Careers:  careers,
		Jobs:     &fakeJobs{},
		Cache:    cache,
	}

	records := []domain.CompanyRecord{{Name: "Acme"}}
	if _, err := r.Run(context.Background(), records); err != nil {
		t.Fatal(err)
	}
	if websites.calls != 0 || careers.calls != 0 {
		t.Fatal("cached site should skip discovery")
	}
	if records[0].WebsiteURL != "https://acme.com" {
		t.Fatalf("cached website not applied: %+v", records[0])
	}
}

func TestRunCacheReadFailureIsRecovered(t *testing.T) {
	r := &Runner{
		Websites: &fakeWebsites{url: "https://acme.com", ok: true},
		Careers:  &fakeCareers{},
		Jobs:     &fakeJobs{},
		Cache:    &fakeCache{getErr: errors.New("disk gone")},
	}
	records := []domain.CompanyRecord{{Name: "Acme"}}
	if _, err := r.Run(context.Background(), records); err != nil {
		t.Fatal(err)
	}
	if records[0].WebsiteURL != "https://acme.com" {
		t.Fatal("cache failure should fall through to discovery")
	}
}

func TestRunCheckpoints(t *testing.T) {
	var saves int
	r := &Runner{
		Websites: &fakeWebsites{},
		Careers:  &fakeCareers{},
		Jobs:     &fakeJobs{},

		CheckpointEvery: 2,
		Checkpoint: func(records []domain.CompanyRecord) error {
			saves++
			return nil
		},
	}
	records := []domain.CompanyRecord{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
	}
	if _, err := r.Run(context.Background(), records); err != nil {
		t.Fatal(err)
	}
	if saves != 2 {
		t.Fatalf("expected 2 checkpoints, got %d", saves)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	websites := &fakeWebsites{}
	r := &Runner{Websites: websites, Careers: &fakeCareers{}, Jobs: &fakeJobs{}}
	records := []domain.CompanyRecord{{Name: "Acme"}}

	if _, err := r.Run(ctx, records); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if websites.calls != 0 {
		t.Fatal("cancelled run should not touch the network")
	}
}
