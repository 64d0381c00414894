package config

import (
	"os"
	"strings"

	"github.com/demoshop/testkit/internal/fixtures"
)

// LoadGeneratorConfig loads fixture-generation bounds from environment
// variables, starting from the package defaults. Range validity is checked
// later by fixtures.NewGenerator; this only rejects unparseable values.
func LoadGeneratorConfig() (fixtures.Config, error) {
	cfg := fixtures.DefaultConfig()

	var err error
	if cfg.PriceMin, err = envIntOr("FIXTURE_PRICE_MIN", cfg.PriceMin); err != nil {
		return fixtures.Config{}, err
	}
	if cfg.PriceMax, err = envIntOr("FIXTURE_PRICE_MAX", cfg.PriceMax); err != nil {
		return fixtures.Config{}, err
	}
	if cfg.MinFutureDays, err = envIntOr("FIXTURE_MIN_FUTURE_DAYS", cfg.MinFutureDays); err != nil {
		return fixtures.Config{}, err
	}
	if cfg.MaxFutureDays, err = envIntOr("FIXTURE_MAX_FUTURE_DAYS", cfg.MaxFutureDays); err != nil {
		return fixtures.Config{}, err
	}
	if cfg.CheckoutWindowDays, err = envIntOr("FIXTURE_CHECKOUT_WINDOW_DAYS", cfg.CheckoutWindowDays); err != nil {
		return fixtures.Config{}, err
	}
	if cfg.PasswordMinLength, err = envIntOr("FIXTURE_PASSWORD_MIN_LENGTH", cfg.PasswordMinLength); err != nil {
		return fixtures.Config{}, err
	}
	if domains := strings.TrimSpace(os.Getenv("FIXTURE_EMAIL_DOMAINS")); domains != "" {
		cfg.EmailDomains = strings.Split(domains, ",")
	}
	return cfg, nil
}
