package practicum

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
)

// Client fetches homework statuses from the Practicum API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewClient creates a new API client. A zero timeout leaves the transport default in place.
func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetAPIAnswer requests homework statuses changed since cursor and returns the decoded JSON body.
func (c *Client) GetAPIAnswer(ctx context.Context, cursor int64) (any, error) {
	params := url.Values{"from_date": {strconv.FormatInt(cursor, 10)}}
	reqLogger := c.logger.WithFields(logrus.Fields{
		"url":    c.endpoint,
		"params": params.Encode(),
	})
	reqLogger.Info("Requesting homework statuses")

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, failure.Wrap(failure.KindConnection, err, "invalid endpoint %q", c.endpoint)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, failure.Wrap(failure.KindConnection, err, "failed to create request, params = %s", params.Encode())
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, failure.Wrap(failure.KindConnection, err, "no answer from API, url = %s, params = %s", c.endpoint, params.Encode())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newResponseCodeError(c.endpoint, resp.StatusCode, string(body))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var answer any
	if err := dec.Decode(&answer); err != nil {
		return nil, failure.Wrap(failure.KindTypeMismatch, err, "failed to decode API response")
	}

	reqLogger.Debug("Homework statuses received")
	return answer, nil
}

const maxErrorBody = 4096

// ResponseCodeError keeps the raw details of a non-200 answer.
// Its kind is failure.KindInvalidResponseCode.
type ResponseCodeError struct {
	StatusCode int
	Reason     string
	Body       string
	err        *failure.Error
}

func newResponseCodeError(endpoint string, code int, body string) *ResponseCodeError {
	reason := http.StatusText(code)
	return &ResponseCodeError{
		StatusCode: code,
		Reason:     reason,
		Body:       body,
		err: failure.New(failure.KindInvalidResponseCode,
			"unexpected response code, url = %s, code: %d, reason: %s, text: %s", endpoint, code, reason, body),
	}
}

func (e *ResponseCodeError) Error() string {
	return e.err.Error()
}

func (e *ResponseCodeError) Unwrap() error {
	return e.err
}
