package tests_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trips/entity"
	"trips/payment"
	"trips/pricing"
)

func TestComponent(t *testing.T) {
	backend := newFakeBackend()

	customer := entity.User{
		ID:    uuid.NewString(),
		Name:  "Ada Lovelace",
		Email: uuid.NewString() + "@example.com",
		Role:  entity.RoleCustomer,
	}
	admin := entity.User{
		ID:    uuid.NewString(),
		Name:  "Grace Hopper",
		Email: uuid.NewString() + "@example.com",
		Role:  entity.RoleAdmin,
	}
	backend.addUser(customer)
	backend.addUser(admin)

	backend.addPackage(entity.TravelPackage{
		ID:          "pkg-bali",
		Title:       "Bali Highlights",
		Destination: "Bali",
		AdultPrice:  1500,
		ChildPrice:  750,
		Active:      true,
	})
	backend.addPlan(entity.InsurancePlan{
		ID:    "gold",
		Tier:  "gold",
		Price: 599,
	})

	redisClient := setupRedis(t)
	startService(t, redisClient, backend.start(t))

	customerToken := login(t, customer.Email, "Str0ng!pass")

	t.Run("session backs the profile", func(t *testing.T) {
		resp := sendRequest(t, http.MethodGet, "/profile", customerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var user entity.User
		decodeBody(t, resp, &user)
		assert.Equal(t, customer.ID, user.ID)

		resp = sendRequest(t, http.MethodGet, "/profile", "unknown-token", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wishlist toggles on and off", func(t *testing.T) {
		resp := sendRequest(t, http.MethodPut, "/wishlist/pkg-bali", customerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			PackageIDs []string `json:"package_ids"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, []string{"pkg-bali"}, body.PackageIDs)

		resp = sendRequest(t, http.MethodPut, "/wishlist/pkg-bali", customerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &body)
		assert.Empty(t, body.PackageIDs)
	})

	var bookingID string

	t.Run("checkout prices the booking", func(t *testing.T) {
		resp := sendRequest(t, http.MethodPost, "/bookings", customerToken, map[string]any{
			"package_id":        "pkg-bali",
			"start_date":        time.Now().Add(24 * time.Hour).UTC(),
			"end_date":          time.Now().Add(7 * 24 * time.Hour).UTC(),
			"adults":            2,
			"children":          1,
			"infants":           1,
			"insurance_plan_id": "gold",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Booking entity.Booking `json:"booking"`
			Quote   pricing.Quote  `json:"quote"`
		}
		decodeBody(t, resp, &body)

		assert.Equal(t, 5597.0, body.Quote.Total)
		assert.Equal(t, 5597.0, body.Booking.TotalPrice)

		stored, ok := backend.booking(body.Booking.ID)
		require.True(t, ok)
		assert.Equal(t, customer.ID, stored.UserID)
		assert.Equal(t, 5597.0, stored.TotalPrice)

		bookingID = body.Booking.ID
	})

	t.Run("payment marks the booking paid and notifies the user", func(t *testing.T) {
		require.NotEmpty(t, bookingID)

		resp := sendRequest(t, http.MethodPost, "/bookings/"+bookingID+"/payment", customerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var receipt payment.Receipt
		decodeBody(t, resp, &receipt)
		assert.True(t, strings.HasPrefix(receipt.PaymentID, "pay_"))
		assert.Equal(t, bookingID, receipt.BookingID)
		assert.Equal(t, 5597.0, receipt.Amount)

		stored, ok := backend.booking(bookingID)
		require.True(t, ok)
		assert.Equal(t, entity.BookingStatusPaid, stored.Status)

		assert.EventuallyWithT(
			t,
			func(collectT *assert.CollectT) {
				resp := sendRequest(t, http.MethodGet, "/notifications", customerToken, nil)
				if !assert.Equal(collectT, http.StatusOK, resp.StatusCode) {
					return
				}

				var notifications []entity.Notification
				if !assert.NoError(collectT, json.NewDecoder(resp.Body).Decode(&notifications)) {
					return
				}

				var found bool
				for _, n := range notifications {
					if strings.Contains(n.Message, bookingID) {
						found = true
						break
					}
				}
				assert.True(collectT, found, "no notification for booking %s", bookingID)
			},
			10*time.Second,
			100*time.Millisecond,
		)
	})

	t.Run("assistance request is resolved and the user notified", func(t *testing.T) {
		resp := sendRequest(t, http.MethodPost, "/contact", customerToken, map[string]string{
			"name":           customer.Name,
			"email":          customer.Email,
			"contact_number": "15551234567",
			"message":        "The booking page will not load.",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created entity.AssistanceRequest
		decodeBody(t, resp, &created)
		assert.Equal(t, entity.AssistanceStatusPending, created.Status)

		adminToken := login(t, admin.Email, "Str0ng!pass")
		resolution := "Cleared a stuck cache entry."
		resp = sendRequest(t, http.MethodPut, "/admin/assistance/"+created.ID+"/resolve", adminToken, map[string]string{
			"resolution": resolution,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var resolved entity.AssistanceRequest
		decodeBody(t, resp, &resolved)
		assert.Equal(t, entity.AssistanceStatusResolved, resolved.Status)

		assert.EventuallyWithT(
			t,
			func(collectT *assert.CollectT) {
				resp := sendRequest(t, http.MethodGet, "/notifications", customerToken, nil)
				if !assert.Equal(collectT, http.StatusOK, resp.StatusCode) {
					return
				}

				var notifications []entity.Notification
				if !assert.NoError(collectT, json.NewDecoder(resp.Body).Decode(&notifications)) {
					return
				}

				var found bool
				for _, n := range notifications {
					if strings.Contains(n.Message, resolution) {
						found = true
						break
					}
				}
				assert.True(collectT, found, "no notification for assistance request %s", created.ID)
			},
			10*time.Second,
			100*time.Millisecond,
		)
	})

	t.Run("admin dashboard reflects backend data", func(t *testing.T) {
		adminToken := login(t, admin.Email, "Str0ng!pass")

		resp := sendRequest(t, http.MethodGet, "/admin/stats", customerToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		assert.EventuallyWithT(
			t,
			func(collectT *assert.CollectT) {
				resp := sendRequest(t, http.MethodGet, "/admin/stats", adminToken, nil)
				if !assert.Equal(collectT, http.StatusOK, resp.StatusCode) {
					return
				}

				var stats entity.AdminStats
				if !assert.NoError(collectT, json.NewDecoder(resp.Body).Decode(&stats)) {
					return
				}

				assert.Equal(collectT, 2, stats.TotalUsers)
				assert.Equal(collectT, 1, stats.TotalPackages)
				assert.Equal(collectT, 1, stats.TotalBookings)
				assert.Equal(collectT, 1500.0, stats.Revenue)
			},
			10*time.Second,
			100*time.Millisecond,
		)
	})
}
