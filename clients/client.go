package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trips/log"
)

const headerKeyCorrelationID = "Correlation-ID"

type tokenKey struct{}

// WithToken returns a context carrying the caller's bearer token. Every
// request made with that context is sent with an Authorization header.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// APIError is a non-2xx response from a backend service, carrying the
// service's human-readable message when the body has one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Message)
}

// Gateway issues requests to the backend services behind the API gateway.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
}

func NewGateway(address string) (*Gateway, error) {
	if address == "" {
		return nil, errors.New("gateway address is empty")
	}

	return &Gateway{
		baseURL: strings.TrimSuffix(address, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if correlationID := log.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(headerKeyCorrelationID, correlationID)
	}

	res, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(res)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

func newAPIError(res *http.Response) error {
	apiErr := &APIError{
		StatusCode: res.StatusCode,
		Message:    http.StatusText(res.StatusCode),
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}

	return apiErr
}
