package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := NewGenerator(DefaultConfig(), opts...)
	require.NoError(t, err)
	return g
}

func TestBookingInvariantsHoldAcrossMany(t *testing.T) {
	g := newTestGenerator(t)
	cfg := DefaultConfig()

	for i := 0; i < 1000; i++ {
		rec := g.Booking(nil)

		assert.True(t, rec.Checkout.After(rec.Checkin),
			"checkout %s must be strictly after checkin %s", rec.Checkout, rec.Checkin)
		assert.GreaterOrEqual(t, rec.TotalPrice, cfg.PriceMin)
		assert.LessOrEqual(t, rec.TotalPrice, cfg.PriceMax)
		assert.NotEmpty(t, rec.FirstName)
		assert.NotEmpty(t, rec.LastName)
	}
}

func TestBookingCheckinFallsInsideFutureWindow(t *testing.T) {
	g := newTestGenerator(t)
	cfg := DefaultConfig()
	today := dateOnly(time.Now())

	for i := 0; i < 200; i++ {
		rec := g.Booking(nil)
		minCheckin := today.AddDate(0, 0, cfg.MinFutureDays)
		maxCheckin := today.AddDate(0, 0, cfg.MaxFutureDays)

		assert.False(t, rec.Checkin.Before(minCheckin), "checkin %s before window start %s", rec.Checkin, minCheckin)
		assert.False(t, rec.Checkin.After(maxCheckin), "checkin %s after window end %s", rec.Checkin, maxCheckin)
		assert.LessOrEqual(t, int(rec.Checkout.Sub(rec.Checkin).Hours()/24), cfg.CheckoutWindowDays)
	}
}

func TestBookingOverridesPinFieldsVerbatim(t *testing.T) {
	g := newTestGenerator(t)

	price := 500
	first := "John"
	rec := g.Booking(&BookingOverrides{TotalPrice: &price, FirstName: &first})

	assert.Equal(t, 500, rec.TotalPrice)
	assert.Equal(t, "John", rec.FirstName)

	// Everything else stays generated and valid.
	assert.NotEmpty(t, rec.LastName)
	assert.NotEmpty(t, rec.AdditionalNeeds)
	assert.True(t, rec.Checkout.After(rec.Checkin))
}

func TestBookingOverridesAreNotCrossValidated(t *testing.T) {
	g := newTestGenerator(t)

	// Pinning only Checkout to the distant past yields exactly that record;
	// the merge is verbatim and consistency is the caller's job.
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := g.Booking(&BookingOverrides{Checkout: &past})

	assert.Equal(t, past, rec.Checkout)
	assert.True(t, rec.Checkin.After(rec.Checkout))
}

func TestBookingSeededGeneratorIsDeterministic(t *testing.T) {
	a := newTestGenerator(t, WithSeed(42))
	b := newTestGenerator(t, WithSeed(42))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Booking(nil), b.Booking(nil))
	}
}

func TestNewGeneratorRejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"inverted price range", func(c *Config) { c.PriceMin = 10; c.PriceMax = 5 }, ErrPriceRange},
		{"inverted stay window", func(c *Config) { c.MinFutureDays = 20; c.MaxFutureDays = 10 }, ErrStayWindow},
		{"negative stay window", func(c *Config) { c.MinFutureDays = -1 }, ErrStayWindow},
		{"zero checkout window", func(c *Config) { c.CheckoutWindowDays = 0 }, ErrCheckoutWindow},
		{"password too short for classes", func(c *Config) { c.PasswordMinLength = 3 }, ErrPasswordMinLength},
		{"no email domains", func(c *Config) { c.EmailDomains = nil }, ErrNoEmailDomains},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			_, err := NewGenerator(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBatchProducesIndependentRecords(t *testing.T) {
	g := newTestGenerator(t)

	records := Batch(25, func() BookingRecord { return g.Booking(nil) })

	require.Len(t, records, 25)
	for _, rec := range records {
		assert.True(t, rec.Checkout.After(rec.Checkin))
	}
}
