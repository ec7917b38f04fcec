package rewards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Granter delivers token grants to the traveler's wallet. Grants are
// best-effort: learning progress never waits on the rail.
type Granter interface {
	Grant(ctx context.Context, userID string, amount int, reason string) error
}

// NopRail discards grants. Used when no rail is configured.
type NopRail struct{}

func (NopRail) Grant(context.Context, string, int, string) error { return nil }

// StatusError reports a non-success response from the rail.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rail returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying the same grant could succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// HTTPRail submits grants to the reward service over HTTP.
type HTTPRail struct {
	baseURL string
	token   string
	client  *http.Client
}

// RailOption configures an HTTPRail.
type RailOption func(*HTTPRail)

// WithToken sets the bearer token sent with each grant.
func WithToken(token string) RailOption {
	return func(r *HTTPRail) { r.token = token }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) RailOption {
	return func(r *HTTPRail) { r.client = c }
}

// NewHTTPRail creates a rail client for the given base URL.
func NewHTTPRail(baseURL string, opts ...RailOption) *HTTPRail {
	r := &HTTPRail{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type grantRequest struct {
	Wallet         string `json:"wallet"`
	Amount         int    `json:"amount"`
	Reason         string `json:"reason"`
	IdempotencyKey string `json:"idempotency_key"`
}

// Grant POSTs a token grant. The idempotency key is derived from the
// grant itself, so retries and replays carry the same key and the rail
// can dedupe.
func (r *HTTPRail) Grant(ctx context.Context, userID string, amount int, reason string) error {
	body, err := json.Marshal(grantRequest{
		Wallet:         userID,
		Amount:         amount,
		Reason:         reason,
		IdempotencyKey: grantKey(userID, amount, reason),
	})
	if err != nil {
		return fmt.Errorf("marshal grant: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/grants", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create grant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", grantKey(userID, amount, reason))
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit grant: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		// The rail already processed a grant with this key.
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
}

// grantKey builds a deterministic idempotency key for a grant.
func grantKey(userID string, amount int, reason string) string {
	name := fmt.Sprintf("starpath:grant:%s:%d:%s", userID, amount, reason)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
