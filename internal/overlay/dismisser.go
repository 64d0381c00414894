// Package overlay removes blocking overlays (consent modals, popups) so that
// subsequent page interactions are not intercepted. Dismissal is a
// pre-condition helper, not the behavior under test: every internal failure
// is folded into a retry or the forcible-removal fallback, and the caller
// only ever sees a boolean.
package overlay

import (
	"context"
	"fmt"
	"log"
	"time"
)

// consentLikeSelector matches any visible button that looks like a consent
// affordance, used when the overlay's own dismiss control stops responding.
const consentLikeSelector = `button:has-text("Consent"), button:has-text("Accept"), button:has-text("Agree")`

// state tracks one dismissal invocation through its lifecycle.
type state int

const (
	stateDetecting state = iota
	stateDismissing
	stateFallback
	stateDone
)

// Dismisser drives the dismissal state machine against a single page handle.
// It is stateless between calls; a descriptor is passed by value each time.
type Dismisser struct {
	page Page
}

// NewDismisser returns a dismisser bound to page.
func NewDismisser(page Page) *Dismisser {
	return &Dismisser{page: page}
}

// strategy is one way of asking the overlay to go away. An attempt performs
// exactly one interaction-layer call.
type strategy struct {
	name string
	run  func(d *Dismisser, desc OverlayDescriptor) error
}

// Ordered from most to least specific. Attempt k uses the k-th strategy,
// sticking with the last one once the chain is exhausted.
var strategies = []strategy{
	{"click dismiss control", func(d *Dismisser, desc OverlayDescriptor) error {
		return d.page.Click(desc.DismissSelector, attemptTimeout)
	}},
	{"click consent-like control", func(d *Dismisser, desc OverlayDescriptor) error {
		return d.page.Click(consentLikeSelector, attemptTimeout)
	}},
	{"press escape", func(d *Dismisser, _ OverlayDescriptor) error {
		return d.page.Press("Escape")
	}},
}

// Dismiss detects the overlay described by desc and attempts to get rid of
// it. It returns true when the overlay is confirmed gone or was never
// present, false otherwise. It never panics and never propagates errors:
// overlay flakiness must not fail the caller's unrelated work.
func (d *Dismisser) Dismiss(ctx context.Context, desc OverlayDescriptor) bool {
	desc = desc.normalized()

	st := stateDetecting
	attempts := 0
	result := false

	for st != stateDone {
		if ctx.Err() != nil {
			// Abandoned externally; the page handle stays untouched.
			return false
		}

		switch st {
		case stateDetecting:
			visible, err := d.page.WaitVisible(desc.RootSelector, desc.DetectionTimeout)
			if err != nil {
				log.Printf("overlay %s: detection failed, treating as absent: %v", desc.RootSelector, err)
			}
			if !visible {
				result = true
				st = stateDone
				break
			}
			st = stateDismissing

		case stateDismissing:
			attempts++
			strat := strategies[min(attempts-1, len(strategies)-1)]
			if err := strat.run(d, desc); err != nil {
				log.Printf("overlay %s: %s failed (attempt %d/%d): %v",
					desc.RootSelector, strat.name, attempts, desc.MaxRetries, err)
			} else if gone, _ := d.page.WaitHidden(desc.RootSelector, graceWindow); gone {
				result = true
				st = stateDone
				break
			}
			if attempts < desc.MaxRetries {
				if !sleepCtx(ctx, time.Duration(attempts)*desc.Backoff) {
					return false
				}
				break // stay in stateDismissing
			}
			st = stateFallback

		case stateFallback:
			result = d.forceRemove(desc)
			st = stateDone
		}
	}
	return result
}

// forceRemove strips the overlay root out of the document directly. Removal
// is idempotent; a missing node counts as success. Failures are absorbed.
func (d *Dismisser) forceRemove(desc OverlayDescriptor) bool {
	script := fmt.Sprintf(
		`() => { document.querySelectorAll(%q).forEach(n => n.remove()); }`,
		desc.RootSelector)
	if err := d.page.Eval(script); err != nil {
		log.Printf("overlay %s: forcible removal failed: %v", desc.RootSelector, err)
		return false
	}
	gone, err := d.page.WaitHidden(desc.RootSelector, graceWindow)
	return err == nil && gone
}

// ExecuteWithGuard runs action between two best-effort dismissal passes, for
// flows where the overlay can reappear mid-interaction. Dismissal outcomes
// are absorbed; only the action's own error is returned.
func (d *Dismisser) ExecuteWithGuard(ctx context.Context, desc OverlayDescriptor, action func() error) error {
	d.Dismiss(ctx, desc)
	err := action()
	d.Dismiss(ctx, desc)
	return err
}

// sleepCtx waits for dur unless ctx is cancelled first.
func sleepCtx(ctx context.Context, dur time.Duration) bool {
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
