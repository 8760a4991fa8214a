package domain

// JobPosting is a single scraped opening. Immutable once extracted;
// missing fields stay empty rather than defaulted.
type JobPosting struct {
	Title       string
	URL         string
	Location    string
	Description string
}
