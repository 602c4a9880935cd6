package mock

import "net/http/httptest"

type HTTPTestAuthServer struct {
	*AuthService
	Server *httptest.Server
	// BaseURL is the API base, server URL plus base path.
	BaseURL string
}

func NewHTTPTestAuthServer(opts ...Option) (*HTTPTestAuthServer, error) {
	service, err := NewAuthService(opts...)
	if err != nil {
		return nil, err
	}
	server := &HTTPTestAuthServer{
		AuthService: service,
	}
	server.Server = httptest.NewServer(service.Handler())
	server.BaseURL = server.Server.URL + service.BasePath
	return server, nil
}

func (s *HTTPTestAuthServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
