package fixtures

import (
	"errors"
	"fmt"
)

// Constraint errors. An invalid range is a defect in the test setup, not an
// environmental flake, so generator construction fails fast and loud.
var (
	ErrPriceRange        = errors.New("price range is empty")
	ErrStayWindow        = errors.New("future-stay window is empty")
	ErrCheckoutWindow    = errors.New("checkout window must allow at least one night")
	ErrPasswordMinLength = errors.New("password minimum length cannot cover all required character classes")
	ErrNoEmailDomains    = errors.New("at least one email domain is required")
)

// Config bounds every randomized draw the generator makes.
type Config struct {
	// PriceMin and PriceMax bound TotalPrice, inclusive on both ends.
	PriceMin int
	PriceMax int

	// MinFutureDays and MaxFutureDays bound how far in the future a
	// generated check-in date lands, relative to now.
	MinFutureDays int
	MaxFutureDays int

	// CheckoutWindowDays bounds the stay length; checkout always lands
	// between 1 and CheckoutWindowDays days after check-in.
	CheckoutWindowDays int

	// PasswordMinLength is the minimum generated password length. It must
	// be at least 4 so one character of each required class fits.
	PasswordMinLength int

	// EmailDomains is the allow-list generated emails draw their domain from.
	EmailDomains []string
}

// DefaultConfig mirrors the booking demo API's accepted ranges.
func DefaultConfig() Config {
	return Config{
		PriceMin:           50,
		PriceMax:           1000,
		MinFutureDays:      1,
		MaxFutureDays:      30,
		CheckoutWindowDays: 14,
		PasswordMinLength:  12,
		EmailDomains:       []string{"example.com", "test.example.org"},
	}
}

func (c Config) validate() error {
	if c.PriceMin > c.PriceMax {
		return fmt.Errorf("%w: [%d, %d]", ErrPriceRange, c.PriceMin, c.PriceMax)
	}
	if c.MinFutureDays < 0 || c.MinFutureDays > c.MaxFutureDays {
		return fmt.Errorf("%w: [%d, %d]", ErrStayWindow, c.MinFutureDays, c.MaxFutureDays)
	}
	if c.CheckoutWindowDays < 1 {
		return fmt.Errorf("%w: %d", ErrCheckoutWindow, c.CheckoutWindowDays)
	}
	if c.PasswordMinLength < 4 {
		return fmt.Errorf("%w: %d", ErrPasswordMinLength, c.PasswordMinLength)
	}
	if len(c.EmailDomains) == 0 {
		return ErrNoEmailDomains
	}
	return nil
}
