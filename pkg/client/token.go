package client

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLifetime is the validity window Zoom expects on JWT credentials.
const tokenLifetime = 3600 * time.Second

// GenerateJWT builds an HS256 bearer token with the claims Zoom verifies:
// iss set to the API key and exp set to now+3600s. The token is regenerated
// for every request and never cached.
func GenerateJWT(apiKey, apiSecret string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss": apiKey,
		"exp": now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(apiSecret))
	if err != nil {
		return "", fmt.Errorf("sign bearer token: %w", err)
	}
	return signed, nil
}

// bearerToken derives a fresh bearer token from the client credentials.
func (c *Client) bearerToken() (string, error) {
	return GenerateJWT(c.config.APIKey, c.config.APISecret, c.now())
}
