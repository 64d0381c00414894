package fixtures

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Title is the salutation the demo shop's registration form accepts.
type Title string

// Accepted titles.
const (
	TitleMr  Title = "Mr"
	TitleMrs Title = "Mrs"
)

// UserRecord is a registration fixture for the demo shop.
type UserRecord struct {
	Title        Title
	FirstName    string
	LastName     string
	Email        string
	Password     string
	DayOfBirth   int
	MonthOfBirth int
	YearOfBirth  int

	Newsletter    bool
	SpecialOffers bool

	Street       string
	City         string
	State        string
	PostCode     string
	Country      string
	MobileNumber string
}

// UserOverrides pins individual fields of a generated user. The same verbatim
// post-generation merge as BookingOverrides applies: an override is never
// validated, so a pinned Password of "bad" is returned as-is.
type UserOverrides struct {
	Title        *Title
	FirstName    *string
	LastName     *string
	Email        *string
	Password     *string
	DayOfBirth   *int
	MonthOfBirth *int
	YearOfBirth  *int

	Newsletter    *bool
	SpecialOffers *bool

	Street       *string
	City         *string
	State        *string
	PostCode     *string
	Country      *string
	MobileNumber *string
}

// emailSeq disambiguates generated emails across all generators in the
// process, so parallel workers never collide.
var emailSeq atomic.Uint64

// Password character classes; every generated password contains at least one
// character from each.
const (
	upperChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars  = "abcdefghijkmnpqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*"
)

// User generates a registration profile with a unique, well-formed email and
// a password satisfying the shop's composition rules.
func (g *Generator) User(overrides *UserOverrides) UserRecord {
	first := g.pick(firstNames)
	last := g.pick(lastNames)

	title := TitleMr
	if g.coin() {
		title = TitleMrs
	}

	rec := UserRecord{
		Title:        title,
		FirstName:    first,
		LastName:     last,
		Email:        g.email(first, last),
		Password:     g.password(),
		DayOfBirth:   g.between(1, 28),
		MonthOfBirth: g.between(1, 12),
		YearOfBirth:  time.Now().Year() - g.between(18, 70),

		Newsletter:    g.coin(),
		SpecialOffers: g.coin(),

		Street:       fmt.Sprintf("%d %s", g.between(1, 200), g.pick(streets)),
		City:         g.pick(cities),
		State:        g.pick(states),
		PostCode:     g.postCode(),
		Country:      g.pick(countries),
		MobileNumber: g.mobileNumber(),
	}
	rec.apply(overrides)
	return rec
}

func (r *UserRecord) apply(o *UserOverrides) {
	if o == nil {
		return
	}
	if o.Title != nil {
		r.Title = *o.Title
	}
	if o.FirstName != nil {
		r.FirstName = *o.FirstName
	}
	if o.LastName != nil {
		r.LastName = *o.LastName
	}
	if o.Email != nil {
		r.Email = *o.Email
	}
	if o.Password != nil {
		r.Password = *o.Password
	}
	if o.DayOfBirth != nil {
		r.DayOfBirth = *o.DayOfBirth
	}
	if o.MonthOfBirth != nil {
		r.MonthOfBirth = *o.MonthOfBirth
	}
	if o.YearOfBirth != nil {
		r.YearOfBirth = *o.YearOfBirth
	}
	if o.Newsletter != nil {
		r.Newsletter = *o.Newsletter
	}
	if o.SpecialOffers != nil {
		r.SpecialOffers = *o.SpecialOffers
	}
	if o.Street != nil {
		r.Street = *o.Street
	}
	if o.City != nil {
		r.City = *o.City
	}
	if o.State != nil {
		r.State = *o.State
	}
	if o.PostCode != nil {
		r.PostCode = *o.PostCode
	}
	if o.Country != nil {
		r.Country = *o.Country
	}
	if o.MobileNumber != nil {
		r.MobileNumber = *o.MobileNumber
	}
}

// email builds local@domain from the generated name plus a process-wide
// counter, guaranteeing distinct addresses within a process lifetime.
func (g *Generator) email(first, last string) string {
	seq := emailSeq.Add(1)
	local := fmt.Sprintf("%s.%s.%d", strings.ToLower(first), strings.ToLower(last), seq)
	return local + "@" + g.pick(g.cfg.EmailDomains)
}

// password draws one character from each required class, fills up to the
// configured minimum length from all classes, then shuffles so the required
// characters are not positionally predictable.
func (g *Generator) password() string {
	all := upperChars + lowerChars + digitChars + symbolChars

	buf := []byte{
		upperChars[g.intn(len(upperChars))],
		lowerChars[g.intn(len(lowerChars))],
		digitChars[g.intn(len(digitChars))],
		symbolChars[g.intn(len(symbolChars))],
	}
	for len(buf) < g.cfg.PasswordMinLength {
		buf = append(buf, all[g.intn(len(all))])
	}
	g.shuffle(buf)
	return string(buf)
}

func (g *Generator) postCode() string {
	return fmt.Sprintf("%c%c%d %d%c%c",
		upperChars[g.intn(len(upperChars))],
		upperChars[g.intn(len(upperChars))],
		g.between(1, 9),
		g.between(1, 9),
		upperChars[g.intn(len(upperChars))],
		upperChars[g.intn(len(upperChars))])
}

func (g *Generator) mobileNumber() string {
	var sb strings.Builder
	sb.WriteString("07")
	for i := 0; i < 9; i++ {
		sb.WriteByte(digitChars[g.intn(len(digitChars))])
	}
	return sb.String()
}
