package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// CheckoutPage drives order review, payment and confirmation.
type CheckoutPage struct {
	shopPage
}

// PaymentCard is the card detail set the payment form asks for.
type PaymentCard struct {
	HolderName string
	Number     string
	CVC        string
	ExpiryMM   string
	ExpiryYYYY string
}

// TestCard is the sandbox card the demo payment gateway always authorizes.
var TestCard = PaymentCard{
	HolderName: "Test User",
	Number:     "4111111111111111",
	CVC:        "737",
	ExpiryMM:   "03",
	ExpiryYYYY: "2030",
}

// NewCheckoutPage builds a CheckoutPage on an open browser page.
func NewCheckoutPage(page playwright.Page, baseURL string, timeout time.Duration) *CheckoutPage {
	return &CheckoutPage{shopPage: newShopPage(page, baseURL, timeout)}
}

// PlaceOrder confirms the reviewed order with an optional comment and moves
// on to the payment form.
func (p *CheckoutPage) PlaceOrder(ctx context.Context, comment string) error {
	err := p.guarded(ctx, func() error {
		if comment != "" {
			if err := p.fill(`textarea[name="message"]`, comment); err != nil {
				return err
			}
		}
		return p.click(`a:has-text("Place Order")`)
	})
	if err != nil {
		return fmt.Errorf("place order failed: %w", err)
	}
	return p.waitForPath("**/payment")
}

// Pay submits the payment form and waits for the order confirmation.
func (p *CheckoutPage) Pay(ctx context.Context, card PaymentCard) error {
	err := p.guarded(ctx, func() error {
		for selector, value := range map[string]string{
			`input[data-qa="name-on-card"]`: card.HolderName,
			`input[data-qa="card-number"]`:  card.Number,
			`input[data-qa="cvc"]`:          card.CVC,
			`input[data-qa="expiry-month"]`: card.ExpiryMM,
			`input[data-qa="expiry-year"]`:  card.ExpiryYYYY,
		} {
			if err := p.fill(selector, value); err != nil {
				return err
			}
		}
		return p.click(`button[data-qa="pay-button"]`)
	})
	if err != nil {
		return fmt.Errorf("payment failed: %w", err)
	}
	return p.waitForPath("**/payment_done*")
}

// ConfirmationMessage returns the banner text shown after a placed order.
func (p *CheckoutPage) ConfirmationMessage() (string, error) {
	return p.textOf(`[data-qa="order-placed"] + p, .alert-success`)
}
