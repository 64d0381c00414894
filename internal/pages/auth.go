package pages

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/demoshop/testkit/internal/fixtures"
)

// AuthPage drives the shop's combined signup/login screen.
type AuthPage struct {
	shopPage
}

// NewAuthPage builds an AuthPage on an open browser page.
func NewAuthPage(page playwright.Page, baseURL string, timeout time.Duration) *AuthPage {
	return &AuthPage{shopPage: newShopPage(page, baseURL, timeout)}
}

// Register walks the two-step signup flow with the given fixture and leaves
// the browser logged in as the new user.
func (p *AuthPage) Register(ctx context.Context, user fixtures.UserRecord) error {
	if err := p.visit(ctx, "/login"); err != nil {
		return err
	}

	// Step one: name and email start the signup.
	err := p.guarded(ctx, func() error {
		if err := p.fill(`input[data-qa="signup-name"]`, user.FirstName); err != nil {
			return err
		}
		if err := p.fill(`input[data-qa="signup-email"]`, user.Email); err != nil {
			return err
		}
		return p.click(`button[data-qa="signup-button"]`)
	})
	if err != nil {
		return fmt.Errorf("signup step failed: %w", err)
	}

	// Step two: account details.
	err = p.guarded(ctx, func() error {
		titleRadio := `#id_gender1`
		if user.Title == fixtures.TitleMrs {
			titleRadio = `#id_gender2`
		}
		if err := p.click(titleRadio); err != nil {
			return err
		}
		if err := p.fill(`input[data-qa="password"]`, user.Password); err != nil {
			return err
		}
		if err := p.selectOption(`select[data-qa="days"]`, strconv.Itoa(user.DayOfBirth)); err != nil {
			return err
		}
		if err := p.selectOption(`select[data-qa="months"]`, strconv.Itoa(user.MonthOfBirth)); err != nil {
			return err
		}
		if err := p.selectOption(`select[data-qa="years"]`, strconv.Itoa(user.YearOfBirth)); err != nil {
			return err
		}
		if user.Newsletter {
			if err := p.check(`#newsletter`); err != nil {
				return err
			}
		}
		if user.SpecialOffers {
			if err := p.check(`#optin`); err != nil {
				return err
			}
		}

		for selector, value := range map[string]string{
			`input[data-qa="first_name"]`:    user.FirstName,
			`input[data-qa="last_name"]`:     user.LastName,
			`input[data-qa="address"]`:       user.Street,
			`input[data-qa="state"]`:         user.State,
			`input[data-qa="city"]`:          user.City,
			`input[data-qa="zipcode"]`:       user.PostCode,
			`input[data-qa="mobile_number"]`: user.MobileNumber,
		} {
			if err := p.fill(selector, value); err != nil {
				return err
			}
		}
		if err := p.selectOption(`select[data-qa="country"]`, user.Country); err != nil {
			return err
		}
		return p.click(`button[data-qa="create-account"]`)
	})
	if err != nil {
		return fmt.Errorf("account details step failed: %w", err)
	}

	if err := p.waitForPath("**/account_created"); err != nil {
		return err
	}
	return p.guarded(ctx, func() error {
		return p.click(`a[data-qa="continue-button"]`)
	})
}

// Login signs in with existing credentials.
func (p *AuthPage) Login(ctx context.Context, email, password string) error {
	if err := p.visit(ctx, "/login"); err != nil {
		return err
	}
	return p.guarded(ctx, func() error {
		if err := p.fill(`input[data-qa="login-email"]`, email); err != nil {
			return err
		}
		if err := p.fill(`input[data-qa="login-password"]`, password); err != nil {
			return err
		}
		return p.click(`button[data-qa="login-button"]`)
	})
}

// LoggedInAs returns the username shown in the navbar, or an error when no
// user is logged in.
func (p *AuthPage) LoggedInAs() (string, error) {
	return p.textOf(`a:has-text("Logged in as") b`)
}

// DeleteAccount removes the logged-in user's account via the navbar link.
// Used by cleanup when no admin API is available.
func (p *AuthPage) DeleteAccount(ctx context.Context) error {
	err := p.guarded(ctx, func() error {
		return p.click(`a[href="/delete_account"]`)
	})
	if err != nil {
		return err
	}
	return p.waitForPath("**/delete_account")
}

func (p *shopPage) selectOption(selector, value string) error {
	if _, err := p.page.Locator(selector).SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	}); err != nil {
		return fmt.Errorf("failed to select %q in %s: %w", value, selector, err)
	}
	return nil
}

func (p *shopPage) check(selector string) error {
	if err := p.page.Locator(selector).Check(); err != nil {
		return fmt.Errorf("failed to check %s: %w", selector, err)
	}
	return nil
}
