package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/demoshop/testkit/internal/overlay"
)

// addedToCartModal describes the confirmation the shop shows after adding a
// product. One attempt is enough; the forcible fallback covers the rest.
func addedToCartModal() overlay.OverlayDescriptor {
	return overlay.OverlayDescriptor{
		RootSelector:     "#cartModal",
		DismissSelector:  `#cartModal button:has-text("Continue Shopping")`,
		DetectionTimeout: 2 * time.Second,
		MaxRetries:       1,
	}
}

// CatalogPage drives product browsing and the cart.
type CatalogPage struct {
	shopPage
}

// NewCatalogPage builds a CatalogPage on an open browser page.
func NewCatalogPage(page playwright.Page, baseURL string, timeout time.Duration) *CatalogPage {
	return &CatalogPage{shopPage: newShopPage(page, baseURL, timeout)}
}

// Open navigates to the product listing.
func (p *CatalogPage) Open(ctx context.Context) error {
	return p.visit(ctx, "/products")
}

// Search filters the listing by term and returns how many products remain.
func (p *CatalogPage) Search(ctx context.Context, term string) (int, error) {
	err := p.guarded(ctx, func() error {
		if err := p.fill(`#search_product`, term); err != nil {
			return err
		}
		return p.click(`#submit_search`)
	})
	if err != nil {
		return 0, fmt.Errorf("search for %q failed: %w", term, err)
	}

	count, err := p.page.Locator(`.features_items .product-image-wrapper`).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}
	return count, nil
}

// AddToCart puts the named product into the cart and dismisses the
// added-to-cart confirmation.
func (p *CatalogPage) AddToCart(ctx context.Context, productName string) error {
	productCard := fmt.Sprintf(
		`.product-image-wrapper:has(p:has-text(%q))`, productName)

	err := p.guarded(ctx, func() error {
		if err := p.page.Locator(productCard).First().Hover(); err != nil {
			return fmt.Errorf("failed to hover product %q: %w", productName, err)
		}
		return p.click(productCard + ` .overlay-content a.add-to-cart`)
	})
	if err != nil {
		return err
	}

	// The shop confirms with its own modal; close it through the regular
	// dismissal machinery so a missing modal is not an error.
	p.dismisser.Dismiss(ctx, addedToCartModal())
	return nil
}

// CartContains reports whether the named product is in the cart.
func (p *CatalogPage) CartContains(ctx context.Context, productName string) (bool, error) {
	if err := p.visit(ctx, "/view_cart"); err != nil {
		return false, err
	}
	row := fmt.Sprintf(`#cart_info tr:has(a:has-text(%q))`, productName)
	visible, err := p.page.Locator(row).First().IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to inspect cart: %w", err)
	}
	return visible, nil
}

// ProceedToCheckout moves from the cart to the checkout screen.
func (p *CatalogPage) ProceedToCheckout(ctx context.Context) error {
	err := p.guarded(ctx, func() error {
		return p.click(`.check_out`)
	})
	if err != nil {
		return err
	}
	return p.waitForPath("**/checkout")
}
