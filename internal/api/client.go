package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"busjet/internal/domain"
)

// Client issues HTTP calls against the BusJet backend. It holds no session
// state: authenticated endpoints take the bearer token explicitly, so one
// client can serve both anonymous and logged-in calls.
//
// No request timeout is configured beyond the transport default; callers
// bound calls with their context.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL (no trailing slash needed).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied *http.Client.
// Used by tests to point at an httptest server transport.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	c := New(baseURL)
	if httpc != nil {
		c.httpc = httpc
	}
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. A non-success response or
// a success response without a token both fail with AuthenticationError.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	status, msg, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", domain.AuthenticationError{Err: err}
	}
	if !success(status) || out.Token == "" {
		return "", domain.AuthenticationError{Msg: msg}
	}
	return out.Token, nil
}

type signupRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Signup registers a new account. The role is fixed to the non-privileged
// value; public registration can never create an admin. The caller is not
// authenticated afterwards.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	req := signupRequest{Name: name, Email: email, Password: password, Role: domain.RoleUser}
	status, msg, err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, "", req, nil)
	if err != nil {
		return domain.RegistrationError{Err: err}
	}
	if !success(status) {
		return domain.RegistrationError{Msg: msg}
	}
	return nil
}

// Profile resolves a bearer token into the user it belongs to.
func (c *Client) Profile(ctx context.Context, token string) (domain.User, error) {
	var user domain.User
	status, msg, err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, token, nil, &user)
	if err != nil {
		return domain.User{}, domain.ProfileResolutionError{Err: err}
	}
	if !success(status) {
		return domain.User{}, domain.ProfileResolutionError{Msg: msg}
	}
	return user, nil
}

// SearchTrips queries scheduled trips for a route over a date range. The
// call is unauthenticated. An empty result is not an error.
func (c *Client) SearchTrips(ctx context.Context, route, fromDate, toDate string) ([]domain.Trip, error) {
	query := url.Values{}
	query.Set("route", route)
	query.Set("fromDate", fromDate)
	query.Set("toDate", toDate)

	var trips []domain.Trip
	status, _, err := c.do(ctx, http.MethodGet, "/api/buses/search", query, "", nil, &trips)
	if err != nil {
		return nil, domain.SearchError{Err: err}
	}
	if !success(status) {
		// The search page shows a generic failure regardless of what the
		// server said.
		return nil, domain.SearchError{}
	}
	return trips, nil
}

type bookingRequest struct {
	TripID     int64  `json:"tripId"`
	SeatNumber string `json:"seatNumber"`
}

// CreateBooking reserves one seat on a trip for the token's user.
func (c *Client) CreateBooking(ctx context.Context, token string, tripID int64, seatNumber string) (domain.Booking, error) {
	req := bookingRequest{TripID: tripID, SeatNumber: seatNumber}
	var booking domain.Booking
	status, msg, err := c.do(ctx, http.MethodPost, "/api/bookings", nil, token, req, &booking)
	if err != nil {
		return domain.Booking{}, domain.BookingError{Err: err}
	}
	if !success(status) {
		return domain.Booking{}, domain.BookingError{Msg: msg}
	}
	return booking, nil
}

// MyBookings lists the token's own bookings.
func (c *Client) MyBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	status, msg, err := c.do(ctx, http.MethodGet, "/api/bookings/my", nil, token, nil, &bookings)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if !success(status) {
		if msg != "" {
			return nil, fmt.Errorf("failed to fetch bookings: %s", msg)
		}
		return nil, fmt.Errorf("failed to fetch bookings")
	}
	return bookings, nil
}

// AdminStats fetches the aggregate dashboard snapshot.
func (c *Client) AdminStats(ctx context.Context, token string) (domain.Stats, error) {
	var stats domain.Stats
	status, msg, err := c.do(ctx, http.MethodGet, "/admin/stats", nil, token, nil, &stats)
	if err != nil {
		return domain.Stats{}, domain.AdminRequestError{Err: err}
	}
	if !success(status) {
		return domain.Stats{}, domain.AdminRequestError{Msg: msg}
	}
	return stats, nil
}

// AddBusRequest is the admin bus-registration payload.
type AddBusRequest struct {
	Name     string         `json:"name"`
	Capacity int            `json:"capacity"`
	Company  domain.Company `json:"company"`
	Routes   []domain.Route `json:"routes"`
}

// AddBus registers a new bus with its company and served routes.
func (c *Client) AddBus(ctx context.Context, token string, req AddBusRequest) error {
	status, msg, err := c.do(ctx, http.MethodPost, "/admin/bus/add", nil, token, req, nil)
	if err != nil {
		return domain.AdminRequestError{Err: err}
	}
	if !success(status) {
		if msg == "" {
			msg = "failed to add bus"
		}
		return domain.AdminRequestError{Msg: msg}
	}
	return nil
}

// do performs one request and decodes the response. It returns the HTTP
// status, the server-supplied error message when one was present, and any
// transport-level error. Decoding of out is skipped on non-success statuses
// so error bodies never half-populate result structs.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) (status int, serverMsg string, err error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, "", fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response: %w", err)
	}

	if !success(resp.StatusCode) {
		return resp.StatusCode, serverMessage(data), nil
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, "", fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, "", nil
}

// serverMessage digs the human-readable message out of an error body,
// preferring "message" over "error".
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func success(status int) bool {
	return status >= 200 && status < 300
}
