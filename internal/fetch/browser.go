package fetch

import (
	"context"
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

// Renderer produces fully rendered HTML for a URL. The batch uses it for
// script-driven pages where a static fetch sees an empty shell.
type Renderer interface {
	HTML(ctx context.Context, url string) (string, error)
	Close() error
}

// Browser is a headless Chromium session holding one long-lived page that
// is reused sequentially across the whole run and closed at the end.
type Browser struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	page       playwright.Page
	navTimeout float64
}

func NewBrowser(userAgent string, navTimeoutMS int) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	})
	if err != nil {
		if stopErr := pw.Stop(); stopErr != nil {
			log.Printf("[browser] stop after failed launch: %v", stopErr)
		}
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	page, err := browser.NewPage()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetExtraHTTPHeaders(map[string]string{
		"User-Agent": userAgent,
		"Accept":     "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	}); err != nil {
		_ = page.Close()
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("set headers: %w", err)
	}

	return &Browser{
		pw:         pw,
		browser:    browser,
		page:       page,
		navTimeout: float64(navTimeoutMS),
	}, nil
}

func (b *Browser) HTML(_ context.Context, url string) (string, error) {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(b.navTimeout),
	})
	if err != nil {
		return "", fmt.Errorf("navigate: %w", err)
	}
	return b.page.Content()
}

func (b *Browser) Close() error {
	if b.page != nil {
		if err := b.page.Close(); err != nil {
			log.Printf("[browser] close page: %v", err)
		}
	}
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
	}
	if b.pw != nil {
		return b.pw.Stop()
	}
	return nil
}
