// Package zoom composes the typed resource services (meetings, users) on top
// of the authenticated request executor.
package zoom

import (
	"github.com/licht1stein/gozoom/pkg/client"
)

// Client bundles the raw executor with the typed resource services.
type Client struct {
	// Raw is the underlying request executor, available for endpoints not
	// covered by the typed services.
	Raw *client.Client

	Meetings *MeetingsService
	Users    *UsersService
}

// New creates a typed Zoom client from a JWT credential pair.
func New(apiKey, apiSecret string) (*Client, error) {
	return NewWithConfig(client.DefaultConfig(apiKey, apiSecret))
}

// NewWithConfig creates a typed Zoom client from an executor configuration.
func NewWithConfig(cfg client.Config) (*Client, error) {
	raw, err := client.New(cfg)
	if err != nil {
		return nil, err
	}
	return wrap(raw), nil
}

// FromEnvironment creates a typed Zoom client from the ZOOM_API_KEY and
// ZOOM_API_SECRET environment variables.
func FromEnvironment() (*Client, error) {
	raw, err := client.FromEnvironment()
	if err != nil {
		return nil, err
	}
	return wrap(raw), nil
}

func wrap(raw *client.Client) *Client {
	return &Client{
		Raw:      raw,
		Meetings: &MeetingsService{raw: raw, Timezone: "UTC"},
		Users:    &UsersService{raw: raw},
	}
}

// SetTimezone changes the default timezone applied to newly created meetings.
// Not safe for concurrent mutation; set it once during setup.
func (c *Client) SetTimezone(timezone string) {
	c.Meetings.Timezone = timezone
}
