package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/logger"
)

// RequestIDHeader tags every outgoing request so it can be found in backend logs.
const RequestIDHeader = "X-Request-ID"

// Client performs one JSON call and normalizes its completion. It never
// retries and applies no timeout of its own; the http.Client and ctx decide.
type Client struct {
	httpClient *http.Client
}

// NewClient wraps httpClient. If httpClient is nil, http.DefaultClient is used.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// Do sends the request and returns the response body. The body is read as
// text first and decoded as JSON when possible. A status outside 200-299
// yields *domain.HTTPError, a transport failure *domain.NetworkError.
func (c *Client) Do(ctx context.Context, method, endpoint string, payload any) (domain.Body, error) {
	var reader io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return domain.Body{}, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return domain.Body{}, &domain.NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := logger.FromContext(ctx).With("method", method, "url", endpoint, "request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("request failed", "error", err)
		return domain.Body{}, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Body{}, &domain.NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	body := domain.ParseBody(raw)
	log.Debug("request complete",
		"status", resp.StatusCode,
		"json", body.JSON,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, &domain.HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
