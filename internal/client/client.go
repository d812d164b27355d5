// Package client talks to the trip planner REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
)

const defaultBaseURL = "http://localhost:8080"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)

// Client is an HTTP client for the trip planner API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. An empty baseURL means the local server and a nil
// httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// User is the public part of an account.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type tripPlanResponse struct {
	TripPlan *models.TripPlanDB `json:"tripPlan"`
}

type tripPlansResponse struct {
	TripPlans []models.TripPlanDB `json:"tripPlans"`
}

type wishlistItemResponse struct {
	Item *models.WishlistItemDB `json:"item"`
}

type wishlistResponse struct {
	Items []models.WishlistItemDB `json:"items"`
	Count int                     `json:"count"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, username, password, email string) (*User, error) {
	var resp userResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", registerRequest{
		Username: username,
		Password: password,
		Email:    email,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login returns a bearer token and the logged in user.
func (c *Client) Login(ctx context.Context, email, password string) (string, *User, error) {
	var resp userResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}

// Logout revokes token.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// CreateTripPlan stores a new trip plan.
func (c *Client) CreateTripPlan(ctx context.Context, token string, req models.TripPlanRequest) (*models.TripPlanDB, error) {
	var resp tripPlanResponse
	if err := c.do(ctx, http.MethodPost, "/api/tripplans", token, req, &resp); err != nil {
		return nil, err
	}
	return resp.TripPlan, nil
}

// ListTripPlans returns the caller's trip plans, newest first.
func (c *Client) ListTripPlans(ctx context.Context, token string) ([]models.TripPlanDB, error) {
	var resp tripPlansResponse
	if err := c.do(ctx, http.MethodGet, "/api/tripplans", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.TripPlans, nil
}

// AddToWishlist saves a destination.
func (c *Client) AddToWishlist(ctx context.Context, token, destinationID, destinationName string) (*models.WishlistItemDB, error) {
	var resp wishlistItemResponse
	body := map[string]string{
		"destinationId":   destinationID,
		"destinationName": destinationName,
	}
	if err := c.do(ctx, http.MethodPost, "/api/wishlist", token, body, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// ListWishlist returns the caller's wishlist and its size.
func (c *Client) ListWishlist(ctx context.Context, token string) ([]models.WishlistItemDB, int, error) {
	var resp wishlistResponse
	if err := c.do(ctx, http.MethodGet, "/api/wishlist", token, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Items, resp.Count, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func statusError(status int, body []byte) error {
	var e errorResponse
	_ = json.Unmarshal(body, &e)
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case status < http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("%w: %s", ErrServer, msg)
	}
}
