package api

import "net/http"

// Option represents option
type Option func(s *Service)

// WithHTTPClient sets the shared, credential carrying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}
