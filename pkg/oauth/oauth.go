// Package oauth implements the Zoom OAuth2 credential flow: exchanging a
// refresh token or an authorization code for an access/refresh token pair.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/licht1stein/gozoom/pkg/client"
)

// DefaultTokenURL is Zoom's fixed OAuth token endpoint.
const DefaultTokenURL = "https://zoom.us/oauth/token"

// DefaultAuthorizeURL is Zoom's OAuth consent endpoint.
const DefaultAuthorizeURL = "https://zoom.us/oauth/authorize"

// Config holds the OAuth app credentials.
type Config struct {
	ClientID     string
	ClientSecret string

	// TokenURL overrides the fixed token endpoint (used in tests).
	TokenURL string

	// HTTPClient overrides the transport.
	HTTPClient *http.Client
}

// RefreshTokens exchanges a refresh token for a new access/refresh token
// pair. The decoded JSON response is returned unchanged on HTTP 200; any
// other status yields a generic *client.APIError. No retry is attempted.
func RefreshTokens(ctx context.Context, cfg Config, refreshToken string) (map[string]any, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	return tokenRequest(ctx, cfg, data)
}

// RequestTokens exchanges an authorization code captured on the redirect URI
// for the initial access/refresh token pair.
func RequestTokens(ctx context.Context, cfg Config, redirectURI, code string) (map[string]any, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", redirectURI)
	return tokenRequest(ctx, cfg, data)
}

// AuthorizationURL builds the vendor consent URL a user must visit to
// authorize the app for the given redirect URI.
func AuthorizationURL(clientID, redirectURI string) string {
	return fmt.Sprintf("%s?response_type=code&client_id=%s&redirect_uri=%s",
		DefaultAuthorizeURL, url.QueryEscape(clientID), url.QueryEscape(redirectURI))
}

// tokenRequest posts a form-encoded grant to the token endpoint with HTTP
// Basic auth built from the app credentials.
func tokenRequest(ctx context.Context, cfg Config, data url.Values) (map[string]any, error) {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}

	req.SetBasicAuth(cfg.ClientID, cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &client.APIError{
			StatusCode: resp.StatusCode,
			Kind:       client.KindGeneric,
			Message:    fmt.Sprintf("Failed to refresh tokens: %d %s", resp.StatusCode, string(body)),
		}
	}

	var tokens map[string]any
	if err := json.Unmarshal(body, &tokens); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	return tokens, nil
}
