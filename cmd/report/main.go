package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/enrich"
	"jobscout-engine/internal/fetch"
	"jobscout-engine/internal/sheet"
)

func main() {
	input := flag.String("input", "", "result xlsx to summarize (required)")
	target := flag.Int("target", 200, "job posting target")
	verify := flag.Int("verify", 0, "HEAD-check this many randomly sampled job URLs")
	timeout := flag.Int("timeout", 10, "per-request timeout in seconds for -verify")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		log.Fatal("missing -input")
	}

	records, err := sheet.ReadCompanies(*input)
	if err != nil {
		log.Fatalf("read %s: %v", *input, err)
	}

	t := enrich.TallyRecords(records, *target)

	fmt.Printf("Companies:        %d\n", t.Companies)
	fmt.Printf("With website:     %d\n", t.WithWebsite)
	fmt.Printf("With careers URL: %d\n", t.WithCareers)
	for i := 0; i < domain.MaxJobs; i++ {
		fmt.Printf("Slot %d filled:    %d\n", i+1, t.SlotCounts[i])
	}
	fmt.Printf("Total postings:   %d / %d (%.1f%%)\n", t.JobsTotal, t.Target, t.Progress())

	if len(t.ByATS) > 0 {
		names := make([]string, 0, len(t.ByATS))
		for name := range t.ByATS {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("ATS breakdown:")
		for _, name := range names {
			fmt.Printf("  %-16s %d\n", name, t.ByATS[name])
		}
	}
	if t.NoATS > 0 {
		fmt.Printf("No ATS detected:  %d\n", t.NoATS)
	}

	if *verify > 0 {
		urls := enrich.JobURLs(records)
		client := fetch.NewClient(time.Duration(*timeout)*time.Second,
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", nil)
		working, checked := enrich.VerifyLinks(context.Background(), client, urls, *verify)
		fmt.Printf("Link check:       %d/%d working\n", working, checked)
	}
}
