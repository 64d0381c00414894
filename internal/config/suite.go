package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// SuiteConfig holds the environment the test suite runs against.
type SuiteConfig struct {
	// ShopBaseURL is the demo shop the browser tests drive.
	ShopBaseURL string
	// BookingAPIBaseURL is the booking demo API the client tests hit.
	BookingAPIBaseURL string
	// BookingUsername and BookingPassword authenticate mutating booking calls.
	BookingUsername string
	BookingPassword string
	// Headless controls whether the browser runs without a window.
	Headless bool
	// NavigationTimeout bounds page loads and flow-level waits.
	NavigationTimeout time.Duration
}

// LoadSuiteConfig loads suite configuration from environment variables,
// defaulting to local demo instances.
func LoadSuiteConfig() SuiteConfig {
	return SuiteConfig{
		ShopBaseURL:       envOr("SHOP_BASE_URL", "http://localhost:8080"),
		BookingAPIBaseURL: envOr("BOOKING_API_URL", "http://localhost:3001"),
		BookingUsername:   envOr("BOOKING_USERNAME", "admin"),
		BookingPassword:   envOr("BOOKING_PASSWORD", "password123"),
		Headless:          os.Getenv("HEADLESS") != "false",
		NavigationTimeout: envDurationOr("NAVIGATION_TIMEOUT", 30*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// envIntOr reads an integer variable, erroring on garbage rather than
// silently falling back: a typo in a generation bound is a setup defect.
func envIntOr(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
