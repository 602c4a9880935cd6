package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/authprobe/schema"
)

const maxErrorBody = 64 * 1024

type Service struct {
	baseURL    string
	httpClient *http.Client
}

// BaseURL returns the API base URL
func (s *Service) BaseURL() string {
	return s.baseURL
}

// URL returns the absolute URL of an API route
func (s *Service) URL(path string) string {
	return url.Join(s.baseURL, path)
}

func (s *Service) Register(ctx context.Context, request *schema.RegisterRequest) (*schema.MessageResponse, error) {
	return send[schema.MessageResponse](ctx, s, http.MethodPost, schema.PathRegister, request, false)
}

func (s *Service) Login(ctx context.Context, request *schema.LoginRequest) (*schema.MessageResponse, error) {
	return send[schema.MessageResponse](ctx, s, http.MethodPost, schema.PathLogin, request, false)
}

func (s *Service) Logout(ctx context.Context) (*schema.MessageResponse, error) {
	return send[schema.MessageResponse](ctx, s, http.MethodPost, schema.PathLogout, nil, false)
}

func (s *Service) AuthStatus(ctx context.Context) (*schema.AuthStatus, error) {
	return send[schema.AuthStatus](ctx, s, http.MethodGet, schema.PathAuthStatus, nil, true)
}

func (s *Service) LinkGoogle(ctx context.Context, request *schema.LinkGoogleRequest) (*schema.MessageResponse, error) {
	return send[schema.MessageResponse](ctx, s, http.MethodPost, schema.PathGoogleLink, request, false)
}

func (s *Service) UserExists(ctx context.Context, email string) (bool, error) {
	query := neturl.Values{"email": []string{email}}
	result, err := sendQuery[schema.ExistsResponse](ctx, s, http.MethodGet, schema.PathUserExists, query, nil, true)
	if err != nil {
		return false, err
	}
	return result.Exists, nil
}

func (s *Service) Profile(ctx context.Context) (*schema.ProfileResponse, error) {
	return send[schema.ProfileResponse](ctx, s, http.MethodGet, schema.PathProfile, nil, true)
}

// Health returns the plain text health banner.
func (s *Service) Health(ctx context.Context) (string, error) {
	resp, err := s.do(ctx, http.MethodGet, schema.PathHealth, nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportFailure{Op: schema.PathHealth, Err: err}
	}
	return strings.TrimSpace(string(data)), nil
}

// GoogleLoginURL returns the browser navigation target starting the Google OAuth flow.
func (s *Service) GoogleLoginURL() string {
	return s.URL(schema.PathGoogleLogin)
}

// do sends the request and returns a 2xx response; other statuses become *ServerRejected.
func (s *Service) do(ctx context.Context, method, path string, query neturl.Values, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %v request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}
	URL := s.URL(path)
	if len(query) > 0 {
		URL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %v request: %w", path, err)
	}
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &TransportFailure{Op: path, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &ServerRejected{StatusCode: resp.StatusCode, Reason: readReason(resp)}
	}
	return resp, nil
}

func send[R any](ctx context.Context, s *Service, method, path string, body interface{}, required bool) (*R, error) {
	return sendQuery[R](ctx, s, method, path, nil, body, required)
}

func sendQuery[R any](ctx context.Context, s *Service, method, path string, query neturl.Values, body interface{}, required bool) (*R, error) {
	resp, err := s.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var result R
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil && required {
		return nil, &TransportFailure{Op: path, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return &result, nil
}

func readReason(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var errorResponse schema.ErrorResponse
	if json.Unmarshal(data, &errorResponse) == nil && errorResponse.Error != "" {
		return errorResponse.Error
	}
	if text := strings.TrimSpace(string(data)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func New(baseURL string, options ...Option) *Service {
	ret := &Service{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
