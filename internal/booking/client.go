// Package booking is an HTTP client for the booking demo API's reservation
// resource. Test specs drive it with fixture records and assert on what
// comes back; the client itself adds no retry or dismissal logic.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/demoshop/testkit/internal/fixtures"
)

// dateLayout is the wire format the booking API uses for stay dates.
const dateLayout = "2006-01-02"

// ErrNotFound reports a booking id the API does not know.
var ErrNotFound = errors.New("booking not found")

// Client handles communication with the booking API.
type Client interface {
	Ping(ctx context.Context) error
	Auth(ctx context.Context, username, password string) (string, error)
	CreateBooking(ctx context.Context, rec fixtures.BookingRecord) (*CreatedBooking, error)
	GetBooking(ctx context.Context, id int) (*fixtures.BookingRecord, error)
	UpdateBooking(ctx context.Context, id int, rec fixtures.BookingRecord, token string) (*fixtures.BookingRecord, error)
	DeleteBooking(ctx context.Context, id int, token string) error
}

// HTTPClient implements Client using HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a booking API client for baseURL.
func NewClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP creates a client with a specific underlying http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, httpClient: httpClient}
}

// bookingDates is the nested stay-date pair on the wire.
type bookingDates struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// wireBooking is the reservation resource as the API serializes it.
type wireBooking struct {
	FirstName       string       `json:"firstname"`
	LastName        string       `json:"lastname"`
	TotalPrice      int          `json:"totalprice"`
	DepositPaid     bool         `json:"depositpaid"`
	BookingDates    bookingDates `json:"bookingdates"`
	AdditionalNeeds string       `json:"additionalneeds,omitempty"`
}

// CreatedBooking is the API's response to a successful creation.
type CreatedBooking struct {
	ID     int
	Record fixtures.BookingRecord
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Ping checks that the API is up.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ping returned status %d", resp.StatusCode)
	}
	return nil
}

// Auth exchanges credentials for a session token. Mutating booking calls
// require the token.
func (c *HTTPClient) Auth(ctx context.Context, username, password string) (string, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/auth", authRequest{Username: username, Password: password}, "", &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("auth rejected: no token in response")
	}
	return out.Token, nil
}

// CreateBooking submits rec and returns the stored booking with its id.
func (c *HTTPClient) CreateBooking(ctx context.Context, rec fixtures.BookingRecord) (*CreatedBooking, error) {
	var out struct {
		BookingID int         `json:"bookingid"`
		Booking   wireBooking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/booking", toWire(rec), "", &out); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	stored, err := fromWire(out.Booking)
	if err != nil {
		return nil, fmt.Errorf("create booking response: %w", err)
	}
	return &CreatedBooking{ID: out.BookingID, Record: stored}, nil
}

// GetBooking fetches one booking by id.
func (c *HTTPClient) GetBooking(ctx context.Context, id int) (*fixtures.BookingRecord, error) {
	var out wireBooking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/booking/%d", id), nil, "", &out); err != nil {
		return nil, fmt.Errorf("failed to get booking %d: %w", id, err)
	}
	rec, err := fromWire(out)
	if err != nil {
		return nil, fmt.Errorf("get booking %d response: %w", id, err)
	}
	return &rec, nil
}

// UpdateBooking replaces booking id with rec.
func (c *HTTPClient) UpdateBooking(ctx context.Context, id int, rec fixtures.BookingRecord, token string) (*fixtures.BookingRecord, error) {
	var out wireBooking
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/booking/%d", id), toWire(rec), token, &out); err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	stored, err := fromWire(out)
	if err != nil {
		return nil, fmt.Errorf("update booking %d response: %w", id, err)
	}
	return &stored, nil
}

// DeleteBooking removes booking id. Deleting an already-gone booking is an
// ErrNotFound, which teardown code usually ignores.
func (c *HTTPClient) DeleteBooking(ctx context.Context, id int, token string) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/booking/%d", id), nil, token, nil); err != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, err)
	}
	return nil
}

// do runs one JSON round trip. A non-nil token is sent the way the booking
// API expects it, as a token cookie.
func (c *HTTPClient) do(ctx context.Context, method, path string, body interface{}, token string, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, payload)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func toWire(rec fixtures.BookingRecord) wireBooking {
	return wireBooking{
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		TotalPrice:  rec.TotalPrice,
		DepositPaid: rec.DepositPaid,
		BookingDates: bookingDates{
			Checkin:  rec.Checkin.Format(dateLayout),
			Checkout: rec.Checkout.Format(dateLayout),
		},
		AdditionalNeeds: rec.AdditionalNeeds,
	}
}

func fromWire(w wireBooking) (fixtures.BookingRecord, error) {
	checkin, err := time.Parse(dateLayout, w.BookingDates.Checkin)
	if err != nil {
		return fixtures.BookingRecord{}, fmt.Errorf("invalid checkin date %q: %w", w.BookingDates.Checkin, err)
	}
	checkout, err := time.Parse(dateLayout, w.BookingDates.Checkout)
	if err != nil {
		return fixtures.BookingRecord{}, fmt.Errorf("invalid checkout date %q: %w", w.BookingDates.Checkout, err)
	}
	return fixtures.BookingRecord{
		FirstName:       w.FirstName,
		LastName:        w.LastName,
		TotalPrice:      w.TotalPrice,
		DepositPaid:     w.DepositPaid,
		Checkin:         checkin,
		Checkout:        checkout,
		AdditionalNeeds: w.AdditionalNeeds,
	}, nil
}
