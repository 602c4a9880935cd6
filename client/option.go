package client

import (
	"log/slog"
	"time"

	"github.com/viant/authprobe/client/auth/flow"
)

// Option represents option
type Option func(c *Client)

// WithNavigator sets the browsing context used by GoogleLogin.
func WithNavigator(navigator flow.Navigator) Option {
	return func(c *Client) {
		c.navigator = navigator
	}
}

// WithCredentials sets credentials forgotten after a successful logout.
func WithCredentials(credentials Credentials) Option {
	return func(c *Client) {
		c.credentials = credentials
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithListener registers a state change listener.
func WithListener(listener Listener) Option {
	return func(c *Client) {
		c.listeners = append(c.listeners, listener)
	}
}

// WithMessageTTL sets how long non-error results stay visible.
func WithMessageTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.ttl = ttl
	}
}

func (c *Client) messageTTL() time.Duration {
	return c.ttl
}
