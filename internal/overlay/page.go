package overlay

import "time"

// Page is the slice of the rendering layer that dismissal needs. Real test
// runs use the Playwright adapter in this package; unit tests substitute a
// fake. Every method is allowed to fail for environmental reasons (detached
// handle, navigation in flight); the dismisser absorbs those failures.
type Page interface {
	// WaitVisible reports whether an element matching selector becomes
	// visible within timeout. A timeout is reported as (false, nil).
	WaitVisible(selector string, timeout time.Duration) (bool, error)

	// WaitHidden reports whether no element matching selector is visible
	// by the end of timeout.
	WaitHidden(selector string, timeout time.Duration) (bool, error)

	// Click performs a click-like interaction on the first element
	// matching selector, bounded by timeout.
	Click(selector string, timeout time.Duration) error

	// Press sends a keyboard key (e.g. "Escape") to the page.
	Press(key string) error

	// Eval executes an arbitrary script against the document. Used only
	// for the forcible-removal fallback.
	Eval(script string) error
}
