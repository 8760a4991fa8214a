package domain

import "strings"

// MaxJobs caps how many postings a single company row carries.
const MaxJobs = 3

// CompanyRecord is one row of the enrichment batch. It is created from an
// input row and mutated in place as each discovery stage succeeds.
type CompanyRecord struct {
	Name        string
	WebsiteURL  string
	LinkedInURL string
	CareersURL  string
	JobsPageURL string
	Jobs        []JobPosting
	Note        string
}

// AddJob appends p to the record unless the record is full, p has no
// title, or a posting with the same title is already held. Filled slots
// are never replaced, so re-running a batch over a previous snapshot can
// only add postings.
func (c *CompanyRecord) AddJob(p JobPosting) bool {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return false
	}
	if len(c.Jobs) >= MaxJobs {
		return false
	}
	for _, have := range c.Jobs {
		if strings.EqualFold(strings.TrimSpace(have.Title), title) {
			return false
		}
	}
	c.Jobs = append(c.Jobs, p)
	return true
}

// JobCount reports how many posting slots are filled.
func (c *CompanyRecord) JobCount() int {
	n := 0
	for _, j := range c.Jobs {
		if strings.TrimSpace(j.Title) != "" {
			n++
		}
	}
	return n
}
