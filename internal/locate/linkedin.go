package locate

import (
	"strings"
	"unicode"
)

// LinkedInURL builds the conventional company profile URL from the name.
// It is constructed, never verified.
func LinkedInURL(company string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(company)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if slug == "" {
		return ""
	}
	return "https://www.linkedin.com/company/" + slug
}
