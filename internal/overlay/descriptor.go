package overlay

import "time"

// OverlayDescriptor describes one dismissible overlay. Descriptors are
// passed by value into each dismissal call and hold no state between calls.
type OverlayDescriptor struct {
	// RootSelector identifies the overlay's root container.
	RootSelector string
	// DismissSelector identifies the actionable dismiss control within the overlay.
	DismissSelector string
	// DetectionTimeout is the maximum wait to confirm the overlay is present.
	DetectionTimeout time.Duration
	// MaxRetries bounds the number of interaction attempts before the
	// forcible-removal fallback. Values below 1 are treated as 1.
	MaxRetries int
	// Backoff is the base delay between failed attempts; the actual delay
	// grows linearly with the attempt number. Zero means DefaultBackoff.
	Backoff time.Duration
}

// Defaults applied when a descriptor leaves the corresponding field unset.
const (
	DefaultDetectionTimeout = 2 * time.Second
	DefaultBackoff          = 250 * time.Millisecond

	// graceWindow bounds the wait for the overlay root to disappear after
	// an interaction or a forcible removal.
	graceWindow = 500 * time.Millisecond

	// attemptTimeout bounds a single interaction with the dismiss control.
	attemptTimeout = 2 * time.Second
)

// Named presets for overlays seen on the demo shop. These are a convenience,
// not a stability contract; callers may always supply their own descriptor.
var (
	// ConsentModal matches the Google Funding Choices consent dialog the
	// demo shop renders on first visit.
	ConsentModal = OverlayDescriptor{
		RootSelector:     ".fc-consent-root",
		DismissSelector:  ".fc-cta-consent",
		DetectionTimeout: DefaultDetectionTimeout,
		MaxRetries:       3,
	}

	// NewsletterPopup matches the subscription popup shown after scrolling.
	NewsletterPopup = OverlayDescriptor{
		RootSelector:     "#newsletter-modal",
		DismissSelector:  "#newsletter-modal .close",
		DetectionTimeout: time.Second,
		MaxRetries:       2,
	}
)

// normalized returns a copy with zero fields replaced by defaults.
func (d OverlayDescriptor) normalized() OverlayDescriptor {
	if d.DetectionTimeout <= 0 {
		d.DetectionTimeout = DefaultDetectionTimeout
	}
	if d.MaxRetries < 1 {
		d.MaxRetries = 1
	}
	if d.Backoff <= 0 {
		d.Backoff = DefaultBackoff
	}
	return d
}
