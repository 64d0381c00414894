package fixtures

import (
	"strings"
	"sync"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordCompositionHolds(t *testing.T) {
	g := newTestGenerator(t)
	cfg := DefaultConfig()

	for i := 0; i < 500; i++ {
		pw := g.User(nil).Password

		assert.GreaterOrEqual(t, len(pw), cfg.PasswordMinLength)
		assert.True(t, strings.ContainsFunc(pw, unicode.IsUpper), "password %q lacks an uppercase letter", pw)
		assert.True(t, strings.ContainsFunc(pw, unicode.IsLower), "password %q lacks a lowercase letter", pw)
		assert.True(t, strings.ContainsFunc(pw, unicode.IsDigit), "password %q lacks a digit", pw)
		assert.True(t, strings.ContainsAny(pw, symbolChars), "password %q lacks a symbol", pw)
	}
}

func TestUserEmailsAreUniqueAndWellFormed(t *testing.T) {
	g := newTestGenerator(t)

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		email := g.User(nil).Email

		local, domain, ok := strings.Cut(email, "@")
		require.True(t, ok, "email %q is not local@domain", email)
		assert.NotEmpty(t, local)
		assert.Contains(t, DefaultConfig().EmailDomains, domain)

		_, dup := seen[email]
		require.False(t, dup, "duplicate email %q after %d records", email, i)
		seen[email] = struct{}{}
	}
}

func TestUserEmailsUniqueAcrossConcurrentGenerators(t *testing.T) {
	// Parallel workers each build their own generator; the process-wide
	// disambiguator must still keep addresses distinct.
	const workers, perWorker = 8, 50

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := NewGenerator(DefaultConfig())
			if err != nil {
				t.Error(err)
				return
			}
			for i := 0; i < perWorker; i++ {
				email := g.User(nil).Email
				mu.Lock()
				seen[email] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestUserFieldsArePopulatedAndValid(t *testing.T) {
	g := newTestGenerator(t)
	thisYear := time.Now().Year()

	for i := 0; i < 200; i++ {
		u := g.User(nil)

		assert.Contains(t, []Title{TitleMr, TitleMrs}, u.Title)
		assert.NotEmpty(t, u.FirstName)
		assert.NotEmpty(t, u.LastName)
		assert.True(t, u.DayOfBirth >= 1 && u.DayOfBirth <= 28, "day %d", u.DayOfBirth)
		assert.True(t, u.MonthOfBirth >= 1 && u.MonthOfBirth <= 12, "month %d", u.MonthOfBirth)
		assert.True(t, u.YearOfBirth <= thisYear-18, "year %d would make the user a minor", u.YearOfBirth)
		assert.NotEmpty(t, u.Street)
		assert.NotEmpty(t, u.City)
		assert.NotEmpty(t, u.State)
		assert.NotEmpty(t, u.PostCode)
		assert.NotEmpty(t, u.Country)
		assert.True(t, strings.HasPrefix(u.MobileNumber, "07"))
		assert.Len(t, u.MobileNumber, 11)
	}
}

func TestUserOverridesBypassValidation(t *testing.T) {
	g := newTestGenerator(t)

	// Overrides are applied verbatim after generation, so a pinned password
	// is returned even when it violates the composition rules.
	bad := "bad"
	u := g.User(&UserOverrides{Password: &bad})

	assert.Equal(t, "bad", u.Password)
}

func TestUserOverridesPinSelectedFields(t *testing.T) {
	g := newTestGenerator(t)

	title := TitleMrs
	email := "pinned@example.com"
	newsletter := true
	u := g.User(&UserOverrides{Title: &title, Email: &email, Newsletter: &newsletter})

	assert.Equal(t, TitleMrs, u.Title)
	assert.Equal(t, "pinned@example.com", u.Email)
	assert.True(t, u.Newsletter)
	assert.NotEmpty(t, u.Password, "unpinned fields stay generated")
}
