// Package amadeus implements the flight provider port against the Amadeus
// Self-Service flight-offers API.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// Amadeus hostnames per environment.
const (
	TestBaseURL       = "https://test.api.amadeus.com"
	ProductionBaseURL = "https://api.amadeus.com"
)

// tokenExpirySlack is subtracted from the advertised token lifetime so a
// token is refreshed before it actually expires mid-request.
const tokenExpirySlack = 30 * time.Second

// defaultHTTPTimeout bounds a single HTTP exchange with the API.
const defaultHTTPTimeout = 30 * time.Second

// Client is a minimal Amadeus API client handling OAuth2 client-credentials
// authentication with token reuse.
type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// ClientConfig contains the settings for the Amadeus client.
type ClientConfig struct {
	APIKey    string
	APISecret string

	// BaseURL overrides the environment hostname; used in tests
	BaseURL string

	// Env selects the hostname when BaseURL is empty: "test" or "production"
	Env string

	// Timeout bounds a single HTTP exchange (default: 30s)
	Timeout time.Duration
}

// NewClient creates an Amadeus API client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		if strings.EqualFold(cfg.Env, "test") {
			baseURL = TestBaseURL
		} else {
			baseURL = ProductionBaseURL
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &Client{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiError is a non-2xx response from the API. The status code drives the
// retryability decision in the adapter.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("amadeus error (%d): %s", e.StatusCode, e.Body)
}

// token returns a valid access token, refreshing it when missing or expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.accessToken
	valid := token != "" && time.Now().Before(c.tokenExpiry)
	c.mu.Unlock()

	if valid {
		return token, nil
	}
	return c.refreshToken(ctx)
}

// refreshToken fetches a new OAuth2 token via the client-credentials grant.
func (c *Client) refreshToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &apiError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	expiry := time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpirySlack)

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = expiry
	c.mu.Unlock()

	return result.AccessToken, nil
}

// get performs an authenticated GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apiError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
