// Package pages wraps the demo shop's screens behind flow-level methods so
// test code reads as user journeys. Every interaction runs under the overlay
// guard: consent modals and popups are dismissed before they can intercept a
// click, and their flakiness never fails a test on its own.
package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/demoshop/testkit/internal/overlay"
)

// shopPage is the shared base for every page object.
type shopPage struct {
	page      playwright.Page
	dismisser *overlay.Dismisser
	baseURL   string
	timeout   time.Duration
}

func newShopPage(page playwright.Page, baseURL string, timeout time.Duration) shopPage {
	return shopPage{
		page:      page,
		dismisser: overlay.NewDismisser(overlay.NewPlaywrightPage(page)),
		baseURL:   baseURL,
		timeout:   timeout,
	}
}

// visit navigates to path under the base URL and clears any consent modal
// that greets the navigation.
func (p *shopPage) visit(ctx context.Context, path string) error {
	if _, err := p.page.Goto(p.baseURL+path, playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(p.timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", path, err)
	}
	p.dismisser.Dismiss(ctx, overlay.ConsentModal)
	return nil
}

// guarded runs action between dismissal passes; the shop re-opens popups on
// several navigations, so a single pass after Goto is not enough.
func (p *shopPage) guarded(ctx context.Context, action func() error) error {
	return p.dismisser.ExecuteWithGuard(ctx, overlay.ConsentModal, action)
}

// fill sets one form field, click options bounded by the page timeout.
func (p *shopPage) fill(selector, value string) error {
	if err := p.page.Locator(selector).Fill(value); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// click clicks the first element matching selector.
func (p *shopPage) click(selector string) error {
	if err := p.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(p.timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

// waitForPath waits for the page URL to match the glob pattern.
func (p *shopPage) waitForPath(pattern string) error {
	if err := p.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("did not reach %s: %w", pattern, err)
	}
	return nil
}

// textOf returns the trimmed text content of the first match.
func (p *shopPage) textOf(selector string) (string, error) {
	text, err := p.page.Locator(selector).First().TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", selector, err)
	}
	return text, nil
}
