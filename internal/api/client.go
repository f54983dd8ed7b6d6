// Package api is a small typed client for the municipal booking REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"zeromonos/internal/domain"
)

const bookingsPath = "/api/bookings"

// maxErrorBody bounds how much of a failed response body is kept
const maxErrorBody = 4096

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the booking API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a client using a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Municipalities returns the names bookings can be made for.
func (c *Client) Municipalities(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.do(ctx, http.MethodGet, bookingsPath+"/municipalities", nil, &names); err != nil {
		return nil, fmt.Errorf("municipalities: %w", err)
	}
	return names, nil
}

// CreateBooking submits a new booking and returns it with its token.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.do(ctx, http.MethodPost, bookingsPath, req, &booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

// Booking looks a booking up by its token.
func (c *Client) Booking(ctx context.Context, token string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.do(ctx, http.MethodGet, bookingsPath+"/"+url.PathEscape(token), nil, &booking); err != nil {
		return nil, fmt.Errorf("booking %s: %w", token, err)
	}
	return &booking, nil
}

// CancelBooking cancels the booking with the given token.
func (c *Client) CancelBooking(ctx context.Context, token string) error {
	if err := c.do(ctx, http.MethodPut, bookingsPath+"/"+url.PathEscape(token)+"/cancel", nil, nil); err != nil {
		return fmt.Errorf("cancel booking %s: %w", token, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorFromResponse prefers the JSON "message" field, then the raw body,
// then the bare status.
func errorFromResponse(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := ""
	if gjson.ValidBytes(data) {
		message = gjson.GetBytes(data, "message").String()
	}
	if message == "" {
		message = strings.TrimSpace(string(data))
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return &Error{StatusCode: resp.StatusCode, Message: message}
}
