package overlay

import (
	"errors"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightPage adapts a playwright.Page to the Page interface used by the
// dismisser and the page objects.
type PlaywrightPage struct {
	page playwright.Page
}

// NewPlaywrightPage wraps page for use with a Dismisser.
func NewPlaywrightPage(page playwright.Page) *PlaywrightPage {
	return &PlaywrightPage{page: page}
}

// WaitVisible waits up to timeout for the first element matching selector to
// become visible. Timing out is not an error, it just means "not visible".
func (p *PlaywrightPage) WaitVisible(selector string, timeout time.Duration) (bool, error) {
	err := p.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// WaitHidden waits up to timeout for all elements matching selector to be
// hidden or detached.
func (p *PlaywrightPage) WaitHidden(selector string, timeout time.Duration) (bool, error) {
	err := p.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Click clicks the first element matching selector within timeout.
func (p *PlaywrightPage) Click(selector string, timeout time.Duration) error {
	return p.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

// Press sends a keyboard key to the page.
func (p *PlaywrightPage) Press(key string) error {
	return p.page.Keyboard().Press(key)
}

// Eval executes a script against the document.
func (p *PlaywrightPage) Eval(script string) error {
	_, err := p.page.Evaluate(script)
	return err
}
