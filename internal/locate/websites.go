package locate

import (
	"context"
	"log"
	"strings"
	"unicode"

	"jobscout-engine/internal/fetch"
)

// Websites guesses a company's homepage by probing name-derived domains
// against an ordered TLD list, optionally falling back to a web search
// when no candidate answers.
type Websites struct {
	client         *fetch.Client
	tlds           []string
	searchFallback bool

	candidate  func(name, tld string) string
	searchBase string
}

func NewWebsites(client *fetch.Client, tlds []string, searchFallback bool) *Websites {
	return &Websites{
		client:         client,
		tlds:           tlds,
		searchFallback: searchFallback,
		candidate: func(name, tld string) string {
			return "https://" + name + tld
		},
		searchBase: "https://duckduckgo.com/html/?q=",
	}
}

// Locate returns the first candidate URL that answers a GET with a
// success status. First match wins; a transient failure just advances to
// the next TLD.
func (w *Websites) Locate(ctx context.Context, company string) (string, bool) {
	name := normalizeName(company)
	if name == "" {
		return "", false
	}

	for _, tld := range w.tlds {
		cand := w.candidate(name, tld)
		if w.client.Ok(ctx, cand) {
			log.Printf("[locate] website company=%q url=%s", company, cand)
			return cand, true
		}
	}

	if w.searchFallback {
		if host := w.searchDomain(ctx, company); host != "" {
			u := "https://" + host
			log.Printf("[locate] website via search company=%q url=%s", company, u)
			return u, true
		}
	}

	return "", false
}

// normalizeName strips punctuation and whitespace so "Acme, Inc." probes
// acmeinc.com.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
