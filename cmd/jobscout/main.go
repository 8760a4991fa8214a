package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/enrich"
	"jobscout-engine/internal/extract"
	"jobscout-engine/internal/fetch"
	"jobscout-engine/internal/locate"
	"jobscout-engine/internal/sheet"
	"jobscout-engine/internal/store"
)

func main() {
	input := flag.String("input", "", "input xlsx with company names (required)")
	output := flag.String("output", "", "output xlsx path (required)")
	rows := flag.Int("rows", 50, "number of rows to process")
	start := flag.Int("start", 0, "starting row index")
	noBrowser := flag.Bool("no-browser", false, "disable headless browser rendering")
	cfgPath := flag.String("config", "", "config file path (default: <data dir>/config.yml)")
	verbose := flag.Bool("verbose", false, "include file:line in log output")
	flag.Parse()

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	_ = godotenv.Load()

	dataDir := os.Getenv("JOBSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("data dir %s: %v", dataDir, err)
	}

	path := *cfgPath
	if path == "" {
		p, err := config.EnsureUserConfig(dataDir)
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", path, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("%v", err)
	}

	// one run at a time per data dir: the site cache and checkpointed
	// output cannot take interleaved writers
	lock := flock.New(filepath.Join(dataDir, "jobscout.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock %s: %v", dataDir, err)
	}
	if !locked {
		log.Fatalf("another run is already active in %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	records, err := sheet.ReadCompanies(*input)
	if err != nil {
		log.Fatalf("read input %s: %v", *input, err)
	}
	log.Printf("[main] loaded %d rows from %s", len(records), *input)

	if *start < 0 || *start >= len(records) {
		log.Fatalf("start %d out of range (input has %d rows)", *start, len(records))
	}
	end := len(records)
	if *rows > 0 && *start+*rows < end {
		end = *start + *rows
	}
	window := records[*start:end]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	limiter := fetch.NewHostLimiter(cfg.HTTP.PerHostRPS, cfg.HTTP.PerHostBurst)
	client := fetch.NewClient(time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second, cfg.HTTP.UserAgent, limiter)

	var renderer fetch.Renderer
	if cfg.Browser.Enabled && !*noBrowser {
		b, err := fetch.NewBrowser(cfg.HTTP.UserAgent, cfg.Browser.NavTimeoutMS)
		if err != nil {
			log.Printf("[main] headless browser unavailable, static fetches only: %v", err)
		} else {
			renderer = b
			defer func() {
				if err := b.Close(); err != nil {
					log.Printf("[main] close browser: %v", err)
				}
			}()
		}
	}

	var cache enrich.SiteCache
	if db, err := store.Open(filepath.Join(dataDir, "jobscout.db")); err != nil {
		log.Printf("[main] site cache unavailable: %v", err)
	} else {
		cache = db
		defer db.Close()
	}

	runner := &enrich.Runner{
		Websites: locate.NewWebsites(client, cfg.Locate.TLDs, cfg.Locate.SearchFallback),
		Careers: locate.NewCareersScan(client, renderer,
			cfg.Locate.CareersKeywords, cfg.Locate.CareersHrefPatterns,
			cfg.Locate.NavSelectors, cfg.Locate.NavKeywords),
		Jobs: extract.New(client, renderer,
			cfg.Generic.RoleKeywords, cfg.Generic.SkipTitles, cfg.Batch.DescriptionMaxChars),
		Cache:   cache,
		MaxJobs: cfg.Batch.MaxJobs,
		Delay:   time.Duration(cfg.Batch.DelaySeconds) * time.Second,

		CheckpointEvery: cfg.Batch.CheckpointEvery,
		Checkpoint: func(recs []domain.CompanyRecord) error {
			return sheet.WriteResults(*output, recs, sheet.Methodology())
		},
	}

	summary, runErr := runner.Run(ctx, window)
	if runErr != nil {
		log.Printf("[main] batch stopped early: %v", runErr)
	}

	if err := sheet.WriteResults(*output, window, sheet.Methodology()); err != nil {
		log.Fatalf("write output %s: %v", *output, err)
	}

	log.Printf("[main] done companies=%d websites=%d careers=%d jobs=%d output=%s",
		summary.Companies, summary.Websites, summary.CareersPages, summary.JobsTotal, *output)
}
