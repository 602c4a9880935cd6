// Package mock provides an in-process stand-in for the hybrid authentication
// API exercised by the harness.
//
// It implements registration, native login with a cookie session and bearer
// header, auth-status, logout, Google login redirect and Google account
// linking, so client tests can run full request flows against httptest without
// a real server. Every route can be overridden with a custom handler.
package mock
