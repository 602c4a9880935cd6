// Package store defines the credential store used by the ambient-credential
// transport in the sibling `transport` package.
//
// Credentials are bearer tokens captured from auth API responses, keyed by the
// API origin (scheme://host:port). It ships with an in-memory implementation
// that is sufficient for a single console session and a JSON file backed one
// that lets a session survive harness restarts.
package store
