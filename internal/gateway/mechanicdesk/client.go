// Package mechanicdesk wraps the MechanicDesk booking API. Every call
// collapses into either a parsed success value or an ErrorDocument;
// transport faults never escape the client.
package mechanicdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	jobTypesEndpoint        = "booking_requests/available_job_types"
	unavailableDaysEndpoint = "booking_requests/unavailable_days"
	createBookingEndpoint   = "booking_requests/create_booking"

	// DefaultLookaheadDays bounds the unavailable-days horizon; the
	// provider accepts 1-90.
	DefaultLookaheadDays = 30
	minLookaheadDays     = 1
	maxLookaheadDays     = 90
)

// ErrorDocument is the uniform failure shape for gateway calls. It is
// serialized verbatim into HTTP error responses.
type ErrorDocument struct {
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (e *ErrorDocument) Error() string {
	return e.Message
}

// SuccessDocument is returned for accepted booking submissions. The
// provider answers successful POSTs with an opaque HTML body, so success
// is decided by HTTP status alone and the body is never parsed.
func SuccessDocument() map[string]any {
	return map[string]any{
		"status":  "success",
		"message": "Booking request sent successfully.",
	}
}

// Client is a thin MechanicDesk HTTP client. The provider expects the
// shared token as a query parameter on GETs and as a body field on POSTs,
// not as an Authorization header.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// JobTypes retrieves the list of bookable job types. The parsed response
// is returned verbatim; the provider wraps the names in an object, e.g.
// {"job_type_names": ["Oil Change", ...]}.
func (c *Client) JobTypes(ctx context.Context) (any, *ErrorDocument) {
	return c.get(ctx, jobTypesEndpoint, nil)
}

// UnavailableDays retrieves fully booked days within the lookahead
// horizon. Out-of-range values are clamped to the provider's 1-90 bounds.
func (c *Client) UnavailableDays(ctx context.Context, inDays int) (any, *ErrorDocument) {
	if inDays < minLookaheadDays {
		inDays = DefaultLookaheadDays
	}
	if inDays > maxLookaheadDays {
		inDays = maxLookaheadDays
	}
	params := url.Values{}
	params.Set("in_days", strconv.Itoa(inDays))
	return c.get(ctx, unavailableDaysEndpoint, params)
}

// CreateBooking submits a normalized booking payload. On any 2xx a fixed
// success document is returned without reading the body.
func (c *Client) CreateBooking(ctx context.Context, payload map[string]any) (map[string]any, *ErrorDocument) {
	if c.token == "" {
		return nil, c.tokenMissing()
	}

	body := make(map[string]any, len(payload)+1)
	for key, value := range payload {
		body[key] = value
	}
	body["token"] = c.token

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &ErrorDocument{Message: "An error occurred: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+createBookingEndpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, &ErrorDocument{Message: "An error occurred: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrorDocument{Message: "An error occurred: " + err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, httpError(resp.StatusCode, raw)
	}

	return SuccessDocument(), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (any, *ErrorDocument) {
	if c.token == "" {
		return nil, c.tokenMissing()
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &ErrorDocument{Message: "An error occurred: " + err.Error()}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrorDocument{Message: "An error occurred: " + err.Error()}
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, &ErrorDocument{Message: "An error occurred: " + readErr.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, httpError(resp.StatusCode, raw)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrorDocument{
			Message: "Received non-JSON response from external service",
			Details: string(raw),
		}
	}

	return parsed, nil
}

func (c *Client) tokenMissing() *ErrorDocument {
	return &ErrorDocument{Message: "MechanicDesk API token is not configured."}
}

func httpError(status int, body []byte) *ErrorDocument {
	return &ErrorDocument{
		Message: fmt.Sprintf("External service returned HTTP %d %s", status, http.StatusText(status)),
		Details: string(body),
	}
}
