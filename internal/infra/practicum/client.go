// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"homework_notification_bot/internal/domain/homework"
)

var (
	// ErrRequestFailed indicates a transport-level failure (connection
	// refused, timeout, DNS) before any HTTP status was received.
	ErrRequestFailed = errors.New("request to the homework API failed")
	// ErrUpstreamUnavailable indicates the API answered with a non-200 status.
	ErrUpstreamUnavailable = errors.New("homework API unavailable")
	// ErrMalformedResponse indicates the body could not be decoded as the
	// expected JSON document.
	ErrMalformedResponse = errors.New("malformed homework API response")
)

// HTTPClient implements the practicum.Client interface over plain HTTP.
// It performs exactly one GET per call; retries are the caller's concern.
type HTTPClient struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewHTTPClient(endpoint, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: timeout},
	}
}

// HomeworkStatuses fetches all homework status changes since fromDate.
func (c *HTTPClient) HomeworkStatuses(ctx context.Context, fromDate int64) (*homework.StatusesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var decoded homework.StatusesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &decoded, nil
}
