// Package ats maps careers-page URLs to applicant-tracking-system
// providers and carries the per-provider selector rules the extractor
// consumes.
package ats

import "regexp"

// Generic is the provider name returned when no known pattern matches.
const Generic = "generic"

// Profile holds the selector rules for one provider. URLPattern decides
// detection; the selector lists are ordered fallbacks, first match wins
// per field.
type Profile struct {
	Name                 string
	URLPattern           *regexp.Regexp
	JobLinks             string
	TitleSelectors       []string
	LocationSelectors    []string
	DescriptionSelectors []string
}

// Ordered detection list. First match wins; providers without selector
// rules are still detected but extract through the generic path.
var providers = []Profile{
	{
		Name:                 "lever",
		URLPattern:           regexp.MustCompile(`(?i)lever\.co|jobs\.lever\.co`),
		JobLinks:             `a[href*="/positions/"], .posting a.posting-title`,
		TitleSelectors:       []string{"h2", "h3", ".posting-title", ".job-title"},
		LocationSelectors:    []string{".location", ".job-location", `[class*="location"]`},
		DescriptionSelectors: []string{".content", ".description", ".job-description"},
	},
	{
		Name:                 "greenhouse",
		URLPattern:           regexp.MustCompile(`(?i)greenhouse\.io|boards\.greenhouse\.io`),
		JobLinks:             `a[href*="/jobs/"]`,
		TitleSelectors:       []string{"h1", "h2", ".opening-title", ".job-title"},
		LocationSelectors:    []string{".location", ".job-location"},
		DescriptionSelectors: []string{".content", ".description"},
	},
	{
		Name:                 "workable",
		URLPattern:           regexp.MustCompile(`(?i)workable\.com|jobseekers\.workable\.com`),
		JobLinks:             `a[href*="/jobs/"]`,
		TitleSelectors:       []string{"h1", "h2", ".job-title"},
		LocationSelectors:    []string{".location", ".job-location"},
		DescriptionSelectors: []string{".description", ".job-description"},
	},
	{
		Name:                 "smartrecruiters",
		URLPattern:           regexp.MustCompile(`(?i)smartrecruiters\.com`),
		JobLinks:             `.job-item a, .position-item a, [data-qa="job-card"] a`,
		TitleSelectors:       []string{"h1", "h2", ".job-title"},
		LocationSelectors:    []string{".location", ".job-location"},
		DescriptionSelectors: []string{".job-description", ".description"},
	},
	{
		Name:                 "zohorecruit",
		URLPattern:           regexp.MustCompile(`(?i)zohorecruit\.com`),
		JobLinks:             `a[href*="/jobs/"]`,
		TitleSelectors:       []string{"h1", "h2", ".job-title"},
		LocationSelectors:    []string{".location", ".job-location"},
		DescriptionSelectors: []string{".description", ".job-description"},
	},
	{
		Name:       "icims",
		URLPattern: regexp.MustCompile(`(?i)icims\.com`),
	},
	{
		Name:       "breezy",
		URLPattern: regexp.MustCompile(`(?i)breezy\.hr`),
	},
	{
		Name:       "indeed",
		URLPattern: regexp.MustCompile(`(?i)indeed\.com`),
	},
	{
		Name:       "bamboo",
		URLPattern: regexp.MustCompile(`(?i)bamboohr\.com`),
	},
	{
		Name:       "jobvite",
		URLPattern: regexp.MustCompile(`(?i)jobs\.jobvite\.com`),
	},
	{
		Name:       "bullhorn",
		URLPattern: regexp.MustCompile(`(?i)bullhorn\.com`),
	},
	{
		Name:              "personio",
		URLPattern:        regexp.MustCompile(`(?i)personio\.com|jobs\.personio\.com`),
		JobLinks:          `.job-item a, .position-item a, [data-qa="job-card"] a`,
		TitleSelectors:    []string{"h1", "h2", ".job-title"},
		LocationSelectors: []string{".location", ".job-location"},
	},
	{
		Name:              "teamtailor",
		URLPattern:        regexp.MustCompile(`(?i)teamtailor\.com`),
		JobLinks:          `.job-item a, .position-item a, [data-qa="job-card"] a`,
		TitleSelectors:    []string{"h1", "h2", ".job-title"},
		LocationSelectors: []string{".location", ".job-location"},
	},
	{
		Name:                 "wellfound",
		URLPattern:           regexp.MustCompile(`(?i)wellfound\.com`),
		JobLinks:             `a[href*="/jobs/"]`,
		TitleSelectors:       []string{"h1", "h2", ".job-title"},
		LocationSelectors:    []string{".location", ".job-location"},
		DescriptionSelectors: []string{".description", ".job-description"},
	},
	{
		Name:              "calendly",
		URLPattern:        regexp.MustCompile(`(?i)calendly\.com`),
		JobLinks:          `a[href*="/jobs/"]`,
		TitleSelectors:    []string{"h1", "h2", ".job-title"},
		LocationSelectors: []string{".location", ".job-location"},
	},
}

// Detect maps a URL to a provider name. Deterministic and total: every
// URL yields exactly one known provider or Generic.
func Detect(url string) string {
	for _, p := range providers {
		if p.URLPattern.MatchString(url) {
			return p.Name
		}
	}
	return Generic
}

// ProfileFor returns the selector profile for a provider. Providers that
// are detected but have no selector rules report ok=false and extract
// generically.
func ProfileFor(name string) (Profile, bool) {
	for _, p := range providers {
		if p.Name == name && p.JobLinks != "" {
			return p, true
		}
	}
	return Profile{}, false
}

// Providers lists the known provider names in detection order.
func Providers() []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.Name)
	}
	return out
}
