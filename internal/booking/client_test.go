package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoshop/testkit/internal/fixtures"
)

func testRecord() fixtures.BookingRecord {
	return fixtures.BookingRecord{
		FirstName:       "John",
		LastName:        "Smith",
		TotalPrice:      250,
		DepositPaid:     true,
		Checkin:         time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Checkout:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AdditionalNeeds: "Breakfast",
	}
}

func TestAuthReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth", r.URL.Path)

		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req.Username)

		json.NewEncoder(w).Encode(map[string]string{"token": "abc123"})
	}))
	defer srv.Close()

	token, err := NewClient(srv.URL).Auth(context.Background(), "admin", "password123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestAuthRejectedWhenNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"reason": "Bad credentials"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Auth(context.Background(), "admin", "wrong")

	assert.ErrorContains(t, err, "auth rejected")
}

func TestCreateBookingRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/booking", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var wire map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&wire))
		assert.Equal(t, "John", wire["firstname"])
		assert.Equal(t, float64(250), wire["totalprice"])
		dates := wire["bookingdates"].(map[string]interface{})
		assert.Equal(t, "2026-09-10", dates["checkin"])
		assert.Equal(t, "2026-09-14", dates["checkout"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"bookingid": 42,
			"booking":   wire,
		})
	}))
	defer srv.Close()

	created, err := NewClient(srv.URL).CreateBooking(context.Background(), testRecord())

	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, testRecord(), created.Record)
}

func TestGetBookingNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetBooking(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookingSendsTokenCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/booking/42", r.URL.Path)

		cookie, err := r.Cookie("token")
		require.NoError(t, err, "update must carry the token cookie")
		assert.Equal(t, "abc123", cookie.Value)

		var wire json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&wire))
		w.Write(wire)
	}))
	defer srv.Close()

	updated, err := NewClient(srv.URL).UpdateBooking(context.Background(), 42, testRecord(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, testRecord(), *updated)
}

func TestDeleteBookingSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		http.Error(w, "Forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).DeleteBooking(context.Background(), 42, "stale")

	require.Error(t, err)
	assert.ErrorContains(t, err, "status 403")
}

func TestRequestsHonourContextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := NewClient(srv.URL).Ping(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateBookingRejectsMalformedDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"bookingid": 1,
			"booking": map[string]interface{}{
				"firstname":    "John",
				"lastname":     "Smith",
				"totalprice":   100,
				"depositpaid":  false,
				"bookingdates": map[string]string{"checkin": "not-a-date", "checkout": "2026-09-14"},
			},
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateBooking(context.Background(), testRecord())

	assert.ErrorContains(t, err, "invalid checkin date")
}
