package transport

import (
	"net/http"
	"net/url"

	"github.com/viant/authprobe/client/auth/store"
	"golang.org/x/oauth2"
)

type RoundTripper struct {
	store     store.Store
	transport http.RoundTripper
	jar       http.CookieJar
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemoryStore(),
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.transport = WrapWithCookieJar(ret.transport, ret.jar)
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) Jar() http.CookieJar {
	return r.jar
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	origin := store.Origin(req.URL)
	outbound := req
	if req.Header.Get("Authorization") == "" {
		if token, ok := r.store.LookupToken(origin); ok && token.Valid() {
			outbound = req.Clone(req.Context())
			token.SetAuthHeader(outbound)
		}
	}
	resp, err := r.transport.RoundTrip(outbound)
	if err != nil {
		return nil, err
	}
	if accessToken := parseBearer(resp.Header.Get("Authorization")); accessToken != "" {
		_ = r.store.AddToken(origin, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	}
	return resp, nil
}

// Forget drops the bearer credential held for URL's origin.
func (r *RoundTripper) Forget(URL *url.URL) error {
	return r.store.RemoveToken(store.Origin(URL))
}
