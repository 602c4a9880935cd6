package transport

import (
	"net/http"

	"github.com/viant/authprobe/client/auth/store"
)

type Option func(*RoundTripper)

// WithStore sets store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithCookieJar attaches jar cookies to every request
func WithCookieJar(jar http.CookieJar) Option {
	return func(t *RoundTripper) {
		t.jar = jar
	}
}
