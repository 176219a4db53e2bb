package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func validBookingBody(userID string) gin.H {
	return gin.H{
		"userId":      userID,
		"destination": "Santorini",
		"service":     "island-hopping",
		"startDate":   "2026-09-01",
		"endDate":     "2026-09-08",
		"quantity":    2,
		"totalPrice":  1499.99,
	}
}

func TestCreateBookingEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice")

	w := env.request(t, http.MethodPost, "/api/bookings", validBookingBody(user.ID.String()))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	body := decodeJSON(t, w)
	if body["status"] != "pending" {
		t.Errorf("status = %v, want pending", body["status"])
	}
	if body["destination"] != "Santorini" {
		t.Errorf("destination = %v", body["destination"])
	}
	if body["quantity"] != float64(2) {
		t.Errorf("quantity = %v, want 2", body["quantity"])
	}
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice")

	mutate := func(key string, value any) gin.H {
		body := validBookingBody(user.ID.String())
		if value == nil {
			delete(body, key)
		} else {
			body[key] = value
		}
		return body
	}

	cases := []struct {
		name    string
		body    gin.H
		status  int
		message string
	}{
		{"missing userId", mutate("userId", nil), 400, "userId is required"},
		{"missing destination", mutate("destination", nil), 400, "destination is required"},
		{"missing service", mutate("service", nil), 400, "service is required"},
		{"missing startDate", mutate("startDate", nil), 400, "startDate is required"},
		{"bad startDate", mutate("startDate", "not-a-date"), 400, "Invalid startDate"},
		{"bad endDate", mutate("endDate", "not-a-date"), 400, "Invalid endDate"},
		{"endDate before startDate", mutate("endDate", "2026-08-01"), 400, "endDate must be after startDate"},
		{"fractional quantity", mutate("quantity", 1.5), 400, "quantity must be an integer >= 1"},
		{"zero quantity", mutate("quantity", 0), 400, "quantity must be an integer >= 1"},
		{"negative price", mutate("totalPrice", -5), 400, "totalPrice must be a non-negative number"},
		{"missing price", mutate("totalPrice", nil), 400, "totalPrice must be a non-negative number"},
		{"null price", func() gin.H {
			body := validBookingBody(user.ID.String())
			body["totalPrice"] = nil
			return body
		}(), 400, "totalPrice must be a non-negative number"},
		{"unknown user", validBookingBody("ghost"), 404, "User not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/bookings", tc.body)
			wantError(t, w, tc.status, tc.message)
		})
	}
}

func TestListBookingsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	for i := 0; i < 3; i++ {
		body := validBookingBody(alice.ID.String())
		body["destination"] = fmt.Sprintf("dest-%d", i)
		if w := env.request(t, http.MethodPost, "/api/bookings", body); w.Code != http.StatusCreated {
			t.Fatalf("create booking failed: %d", w.Code)
		}
	}
	if w := env.request(t, http.MethodPost, "/api/bookings", validBookingBody(bob.ID.String())); w.Code != http.StatusCreated {
		t.Fatalf("create booking failed")
	}

	t.Run("all", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/bookings", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeJSON(t, w)
		if body["total"] != float64(4) || body["page"] != float64(1) || body["limit"] != float64(20) || body["pages"] != float64(1) {
			t.Errorf("envelope = %v", body)
		}
		data := body["data"].([]any)
		if len(data) != 4 {
			t.Fatalf("len(data) = %d, want 4", len(data))
		}
		row := data[0].(map[string]any)
		embedded, ok := row["user"].(map[string]any)
		if !ok {
			t.Fatal("booking row has no embedded user")
		}
		if embedded["email"] == nil || embedded["email"] == "" {
			t.Error("booking user summary should include email")
		}
	})

	t.Run("filter by user", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/bookings?userId="+bob.ID.String(), nil)
		body := decodeJSON(t, w)
		if body["total"] != float64(1) {
			t.Errorf("total = %v, want 1", body["total"])
		}
	})

	t.Run("pagination clamps limit", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/bookings?page=1&limit=1000", nil)
		body := decodeJSON(t, w)
		if body["limit"] != float64(100) {
			t.Errorf("limit = %v, want clamped 100", body["limit"])
		}
	})

	t.Run("out of range page", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/bookings?page=10&limit=20", nil)
		body := decodeJSON(t, w)
		data, _ := body["data"].([]any)
		if len(data) != 0 {
			t.Errorf("len(data) = %d, want 0", len(data))
		}
	})
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice")

	w := env.request(t, http.MethodPost, "/api/bookings", validBookingBody(user.ID.String()))
	id := decodeJSON(t, w)["id"].(string)

	w = env.request(t, http.MethodPatch, "/api/bookings/"+id, gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	if decodeJSON(t, w)["status"] != "confirmed" {
		t.Errorf("booking status not updated: %s", w.Body.String())
	}

	t.Run("invalid status", func(t *testing.T) {
		w := env.request(t, http.MethodPatch, "/api/bookings/"+id, gin.H{"status": "teleported"})
		wantError(t, w, http.StatusBadRequest, "invalid booking status")
	})

	t.Run("unknown booking", func(t *testing.T) {
		w := env.request(t, http.MethodPatch, "/api/bookings/4b4e3a1e-0000-0000-0000-000000000000", gin.H{"status": "cancelled"})
		wantError(t, w, http.StatusNotFound, "Booking not found")
	})
}

func TestCreateReviewEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice")

	w := env.request(t, http.MethodPost, "/api/reviews", gin.H{
		"userId": user.ID.String(),
		"text":   "  Loved every minute.  ",
		"rating": 5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["text"] != "Loved every minute." {
		t.Errorf("text = %q, want trimmed", body["text"])
	}
	if body["rating"] != float64(5) {
		t.Errorf("rating = %v", body["rating"])
	}
}

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice")

	cases := []struct {
		name    string
		body    gin.H
		status  int
		message string
	}{
		{"missing userId", gin.H{"text": "hi", "rating": 4}, 400, "userId is required and must be a string"},
		{"blank text", gin.H{"userId": user.ID.String(), "text": "   ", "rating": 4}, 400, "text is required"},
		{"rating too high", gin.H{"userId": user.ID.String(), "text": "hi", "rating": 6}, 400, "rating must be an integer between 1 and 5"},
		{"fractional rating", gin.H{"userId": user.ID.String(), "text": "hi", "rating": 4.5}, 400, "rating must be an integer between 1 and 5"},
		{"bad imageUrl", gin.H{"userId": user.ID.String(), "text": "hi", "rating": 4, "imageUrl": 7}, 400, "imageUrl must be a string"},
		{"unknown user", gin.H{"userId": "ghost", "text": "hi", "rating": 4}, 404, "User not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/reviews", tc.body)
			wantError(t, w, tc.status, tc.message)
		})
	}
}

func TestListReviewsHidesEmail(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice")

	if w := env.request(t, http.MethodPost, "/api/reviews", gin.H{
		"userId": user.ID.String(), "text": "great", "rating": 4,
	}); w.Code != http.StatusCreated {
		t.Fatalf("create review failed")
	}

	w := env.request(t, http.MethodGet, "/api/reviews", nil)
	body := decodeJSON(t, w)
	data := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(data))
	}
	embedded := data[0].(map[string]any)["user"].(map[string]any)
	if _, leaked := embedded["email"]; leaked {
		t.Error("review user summary must not include email")
	}
	if embedded["name"] != "alice" {
		t.Errorf("name = %v", embedded["name"])
	}
}

func TestUserEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/users", gin.H{"name": "Alice", "email": "alice@example.com", "country": "GR"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	id := decodeJSON(t, w)["id"].(string)

	t.Run("duplicate email", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/users", gin.H{"name": "Imposter", "email": "ALICE@example.com"})
		wantError(t, w, http.StatusConflict, "email already registered")
	})

	t.Run("get", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/users/"+id, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var user map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if user["name"] != "Alice" {
			t.Errorf("name = %v", user["name"])
		}
	})

	t.Run("get unknown", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/users/ghost", nil)
		wantError(t, w, http.StatusNotFound, "User not found")
	})
}
