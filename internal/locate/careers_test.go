package locate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/config"
)

func newDefaultScan() *CareersScan {
	cfg := config.Default()
	return NewCareersScan(testClient(), nil,
		cfg.Locate.CareersKeywords,
		cfg.Locate.CareersHrefPatterns,
		cfg.Locate.NavSelectors,
		cfg.Locate.NavKeywords)
}

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestFindInDocHrefPattern(t *testing.T) {
	s := newDefaultScan()
	d := doc(t, `<html><body>
<a href="/about">About</a>
<a href="/company/careers">Open roles</a>
</body></html>`)

	got, ok := s.FindInDoc(d, "https://acme.com")
	if !ok {
		t.Fatal("expected a careers link")
	}
	if want := "https://acme.com/company/careers"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFindInDocLinkText(t *testing.T) {
	s := newDefaultScan()
	d := doc(t, `<html><body>
<a href="/about">About</a>
<a href="/p/8f2c">We're hiring!</a>
</body></html>`)

	got, ok := s.FindInDoc(d, "https://acme.com")
	if !ok {
		t.Fatal("expected a careers link from link text")
	}
	if want := "https://acme.com/p/8f2c"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFindInDocFirstMatchWins(t *testing.T) {
	s := newDefaultScan()
	d := doc(t, `<html><body>
<a href="/careers">Careers</a>
<a href="/jobs">Jobs</a>
</body></html>`)

	got, _ := s.FindInDoc(d, "https://acme.com")
	if want := "https://acme.com/careers"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFindInDocNoMatch(t *testing.T) {
	s := newDefaultScan()
	d := doc(t, `<html><body>
<a href="/about">About</a>
<a href="/contact">Contact</a>
</body></html>`)

	if got, ok := s.FindInDoc(d, "https://acme.com"); ok {
		t.Fatalf("expected no careers link, got %q", got)
	}
}

func TestFindStaticFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><nav><a href="/careers">Careers</a></nav></body></html>`)
	}))
	defer srv.Close()

	s := newDefaultScan()
	got, ok := s.Find(context.Background(), srv.URL)
	if !ok {
		t.Fatal("expected a careers link")
	}
	if want := srv.URL + "/careers"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
