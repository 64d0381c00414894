package fixtures

import "time"

// BookingRecord is a reservation fixture for the booking demo API.
type BookingRecord struct {
	FirstName       string
	LastName        string
	TotalPrice      int
	DepositPaid     bool
	Checkin         time.Time
	Checkout        time.Time
	AdditionalNeeds string
}

// BookingOverrides pins individual fields of a generated booking. Nil fields
// keep their generated value; set fields are applied verbatim after
// generation, with no cross-field validation — overriding only Checkout to a
// date before the generated Checkin produces exactly that record. Keeping
// related overrides consistent is the caller's job.
type BookingOverrides struct {
	FirstName       *string
	LastName        *string
	TotalPrice      *int
	DepositPaid     *bool
	Checkin         *time.Time
	Checkout        *time.Time
	AdditionalNeeds *string
}

// Booking generates a reservation whose check-out strictly follows its
// check-in and whose price falls inside the configured range.
func (g *Generator) Booking(overrides *BookingOverrides) BookingRecord {
	checkin := dateOnly(time.Now().AddDate(0, 0, g.between(g.cfg.MinFutureDays, g.cfg.MaxFutureDays)))
	checkout := checkin.AddDate(0, 0, g.between(1, g.cfg.CheckoutWindowDays))

	rec := BookingRecord{
		FirstName:       g.pick(firstNames),
		LastName:        g.pick(lastNames),
		TotalPrice:      g.between(g.cfg.PriceMin, g.cfg.PriceMax),
		DepositPaid:     g.coin(),
		Checkin:         checkin,
		Checkout:        checkout,
		AdditionalNeeds: g.pick(additionalNeeds),
	}
	rec.apply(overrides)
	return rec
}

func (r *BookingRecord) apply(o *BookingOverrides) {
	if o == nil {
		return
	}
	if o.FirstName != nil {
		r.FirstName = *o.FirstName
	}
	if o.LastName != nil {
		r.LastName = *o.LastName
	}
	if o.TotalPrice != nil {
		r.TotalPrice = *o.TotalPrice
	}
	if o.DepositPaid != nil {
		r.DepositPaid = *o.DepositPaid
	}
	if o.Checkin != nil {
		r.Checkin = *o.Checkin
	}
	if o.Checkout != nil {
		r.Checkout = *o.Checkout
	}
	if o.AdditionalNeeds != nil {
		r.AdditionalNeeds = *o.AdditionalNeeds
	}
}

// dateOnly truncates t to midnight UTC; the booking API works in dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
