// Package transport implements the ambient-credential http.RoundTripper used by
// the harness: every request leaving the shared HTTP client carries the session
// cookies and the bearer token previously issued by the auth API, without the
// caller constructing them.
//
// Tokens are captured from `Authorization: Bearer` response headers and kept in
// a store.Store keyed by API origin; cookies are kept in any http.CookieJar,
// including the file backed FileJar.
package transport
