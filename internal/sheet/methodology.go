package sheet

// Methodology returns the free-text rows written to the second sheet of
// every result workbook.
func Methodology() [][2]string {
	return [][2]string{
		{"Tools Used", "net/http + goquery for static pages, headless Chromium for script-driven sites"},
		{"Search Strategy", "Company name + common TLDs (.com, .co, .org, .net, .io, .ai, .tech), web search fallback"},
		{"ATS Detection", "URL pattern matching for 15 ATS providers (Lever, Greenhouse, Workable, etc.)"},
		{"Job Extraction", "ATS-specific selectors with a generic fallback for unknown providers"},
		{"Rate Limiting", "Per-host request limiter plus a fixed delay between companies"},
		{"Error Handling", "Network failures are logged and skipped; a single bad site never aborts the batch"},
		{"Data Quality", "Heuristic discovery; manual verification recommended before use"},
		{"Output Format", "Company Name, Website URL, Linkedin URL, Careers Page URL, Job listings page URL, and up to 3 job postings per company"},
	}
}
