// Package api is the typed client for the platform REST backend. Every call
// goes through the gateway; this layer only shapes payloads and decodes
// responses into domain models.
package api

import (
	"github.com/beksultan/talentlink/internal/adapters/cache"
	"github.com/beksultan/talentlink/internal/gateway"
	"github.com/beksultan/talentlink/internal/session"
	"github.com/beksultan/talentlink/pkg/logger"
)

// Client exposes one method per backend resource operation.
type Client struct {
	gw       *gateway.Gateway
	sessions *session.Store
	refs     *cache.Store
	log      logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithSessionStore lets auth calls persist the session they establish.
func WithSessionStore(s *session.Store) Option {
	return func(c *Client) {
		if s != nil {
			c.sessions = s
		}
	}
}

// WithReferenceCache serves skills and faculties from a local cache when
// fresh, falling back to the API.
func WithReferenceCache(store *cache.Store) Option {
	return func(c *Client) {
		c.refs = store
	}
}

// WithLogger sets the client's logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Client on top of gw.
func New(gw *gateway.Gateway, opts ...Option) *Client {
	c := &Client{gw: gw}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Named("api")
	}
	return c
}
