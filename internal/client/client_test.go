package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": "token123",
			"user":  map[string]any{"id": userID, "username": "alice", "email": "alice@example.com"},
		})
	}))
	defer srv.Close()

	token, user, err := New(srv.URL, srv.Client()).Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestClient_CreateTripPlan(t *testing.T) {
	planID := uuid.New()
	req := models.TripPlanRequest{
		Destinations:   []string{"Goa"},
		NumberOfPeople: 2,
		Budget:         "luxury",
		ItineraryText:  "<h3>Day 1</h3>",
		TripType:       "adventure",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tripplans", r.URL.Path)
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))

		var got models.TripPlanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message":  "Trip plan saved successfully",
			"tripPlan": models.TripPlanDB{TripPlanID: planID, Destinations: got.Destinations},
		})
	}))
	defer srv.Close()

	saved, err := New(srv.URL, srv.Client()).CreateTripPlan(context.Background(), "token123", req)
	require.NoError(t, err)
	assert.Equal(t, planID, saved.TripPlanID)
	assert.Equal(t, models.StringList{"Goa"}, saved.Destinations)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Unauthorized"}`, ErrUnauthorized, "Unauthorized"},
		{"validation", http.StatusBadRequest, `{"message":"invalid trip plan: budget is required"}`, ErrBadRequest, "budget is required"},
		{"conflict", http.StatusConflict, `{"message":"destination already in wishlist"}`, ErrConflict, "already in wishlist"},
		{"server", http.StatusInternalServerError, `{"message":"Server error while saving trip plan"}`, ErrServer, "Server error"},
		{"no body", http.StatusBadGateway, ``, ErrServer, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).CreateTripPlan(context.Background(), "t", models.TripPlanRequest{})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_ListTripPlansAndWishlist(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tripplans", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"tripPlans": []models.TripPlanDB{{TripPlanID: uuid.New()}}})
	})
	mux.HandleFunc("/api/wishlist", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"message": "ok", "item": models.WishlistItemDB{DestinationID: "goa"}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"items": []models.WishlistItemDB{{DestinationID: "goa"}}, "count": 1})
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL+"/", srv.Client())
	ctx := context.Background()

	plans, err := c.ListTripPlans(ctx, "t")
	require.NoError(t, err)
	assert.Len(t, plans, 1)

	item, err := c.AddToWishlist(ctx, "t", "goa", "Goa")
	require.NoError(t, err)
	assert.Equal(t, "goa", item.DestinationID)

	items, count, err := c.ListWishlist(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, items, 1)

	assert.NoError(t, c.Logout(ctx, "t"))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := New(srv.URL, nil).ListTripPlans(context.Background(), "t")
	assert.Error(t, err)
}
