// Package api issues typed, single-attempt HTTP calls against the hybrid
// authentication API and classifies every failure as either a *ServerRejected
// (the server answered with a non-2xx status) or a *TransportFailure (no usable
// response was obtained).
//
// Credentials are never built here; the supplied *http.Client is expected to
// carry them ambiently (see client/auth/transport).
package api
