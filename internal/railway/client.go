// Package railway is a small client for the Railway public GraphQL API,
// covering the queries the timeline needs.
package railway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/logging"
)

// DefaultEndpoint is Railway's public GraphQL endpoint.
const DefaultEndpoint = "https://backboard.railway.com/graphql/v2"

const (
	defaultTimeout  = 20 * time.Second
	maxResponseSize = 8 << 20
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// Token is the Railway API token sent as a bearer token.
	Token string
	// Endpoint defaults to DefaultEndpoint.
	Endpoint string
	// HTTPClient is used for all requests. If nil, a client with a 20s
	// timeout is used.
	HTTPClient *http.Client
	// Logger defaults to the "railway" component logger.
	Logger *slog.Logger
}

// Client issues GraphQL queries against Railway.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient validates config and returns a ready client.
func NewClient(config ClientConfig) (*Client, error) {
	token := strings.TrimSpace(config.Token)
	if token == "" {
		return nil, fmt.Errorf("railway: API token is required")
	}
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	log := config.Logger
	if log == nil {
		log = logging.New("railway")
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		log:        log,
	}, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// query runs a GraphQL operation and decodes its data into out.
func (c *Client) query(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	encoded, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("railway: failed to encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("railway: failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.token)

	started := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("railway: %s request failed: %w", operation, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("railway: failed to read response body: %w", err)
	}
	c.log.Debug("query", "operation", operation, "status", response.StatusCode, "duration", time.Since(started))

	var decoded graphQLResponse
	jsonErr := json.Unmarshal(body, &decoded)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: response.StatusCode}
		if jsonErr == nil && len(decoded.Errors) > 0 {
			for _, e := range decoded.Errors {
				apiErr.Messages = append(apiErr.Messages, e.Message)
			}
		} else {
			apiErr.Body = strings.TrimSpace(string(body))
		}
		return apiErr
	}
	if jsonErr != nil {
		return fmt.Errorf("railway: failed to parse %s response: %w", operation, jsonErr)
	}
	if len(decoded.Errors) > 0 && (len(decoded.Data) == 0 || string(decoded.Data) == "null") {
		apiErr := &APIError{StatusCode: response.StatusCode}
		for _, e := range decoded.Errors {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
		return apiErr
	}
	if len(decoded.Errors) > 0 {
		c.log.Warn("partial response", "operation", operation, "errors", len(decoded.Errors))
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return fmt.Errorf("railway: failed to parse %s data: %w", operation, err)
	}
	return nil
}
