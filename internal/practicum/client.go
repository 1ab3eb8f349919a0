package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"homeworkbot/internal/domain"

	"go.uber.org/zap"
)

// HTTPError is returned when the API is unreachable or answers with a non-200 status
type HTTPError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Эндпоинт %s недоступен: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("Эндпоинт %s недоступен. Код ответа API: %d", e.URL, e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Client talks to the homework statuses API
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *zap.Logger
}

// NewClient creates a new API client
func NewClient(httpClient *http.Client, endpoint, token string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}
}

// GetAPIAnswer requests homework statuses changed since timestamp.
// The decoded body is returned as is, numbers are kept as json.Number.
func (c *Client) GetAPIAnswer(ctx context.Context, timestamp int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	query := url.Values{}
	query.Set("from_date", strconv.FormatInt(timestamp, 10))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	c.logger.Debug("Requesting homework statuses",
		zap.String("endpoint", c.endpoint),
		zap.Int64("from_date", timestamp),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("API request failed", zap.String("endpoint", c.endpoint), zap.Error(err))
		return nil, &HTTPError{URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read API response", zap.Error(err))
		return nil, &HTTPError{URL: c.endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Unexpected API response",
			zap.String("endpoint", c.endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, &HTTPError{URL: c.endpoint, StatusCode: resp.StatusCode}
	}

	var answer any
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&answer); err != nil {
		c.logger.Error("Failed to decode API response", zap.Error(err))
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUnexpectedType, err)
	}

	return answer, nil
}
