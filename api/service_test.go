package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/authprobe/client/auth/mock"
	"github.com/viant/authprobe/schema"
)

func TestService_ErrorClassification(t *testing.T) {
	var testCases = []struct {
		description string
		status      int
		body        string
		expectCode  int
		expectText  string
	}{
		{description: "json error field", status: http.StatusBadRequest, body: `{"error":"email taken"}`, expectCode: 400, expectText: "email taken"},
		{description: "plain text body", status: http.StatusInternalServerError, body: "Error processing user\n", expectCode: 500, expectText: "Error processing user"},
		{description: "empty body", status: http.StatusBadGateway, expectCode: 502, expectText: "Bad Gateway"},
		{description: "json without error", status: http.StatusConflict, body: `{"message":"?"}`, expectCode: 409, expectText: "Conflict"},
	}
	for _, testCase := range testCases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(testCase.status)
			_, _ = w.Write([]byte(testCase.body))
		}))
		service := New(srv.URL)
		_, err := service.Register(context.Background(), &schema.RegisterRequest{Email: "a@b.com"})
		srv.Close()
		rejected, ok := AsServerRejected(err)
		require.True(t, ok, testCase.description)
		assert.Equal(t, testCase.expectCode, rejected.StatusCode, testCase.description)
		assert.Equal(t, testCase.expectText, rejected.Reason, testCase.description)
		assert.False(t, IsTransportFailure(err), testCase.description)
	}
}

func TestService_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	service := New(baseURL)
	_, err := service.Login(context.Background(), &schema.LoginRequest{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.True(t, IsTransportFailure(err))
	_, ok := AsServerRejected(err)
	assert.False(t, ok)
}

func TestService_RequiredBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()
	service := New(srv.URL + "/")

	_, err := service.AuthStatus(context.Background())
	assert.True(t, IsTransportFailure(err))

	_, err = service.Logout(context.Background())
	assert.NoError(t, err)
}

func TestService_AgainstMock(t *testing.T) {
	srv, err := mock.NewHTTPTestAuthServer()
	require.NoError(t, err)
	defer srv.Close()
	ctx := context.Background()
	service := New(srv.BaseURL)

	_, err = service.Register(ctx, &schema.RegisterRequest{Email: "a@b.com", Name: "A", Password: "x", Role: schema.RoleStudent})
	require.NoError(t, err)

	exists, err := service.UserExists(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = service.UserExists(ctx, "nobody@b.com")
	require.NoError(t, err)
	assert.False(t, exists)

	health, err := service.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Server is running", health)

	_, err = service.Profile(ctx)
	rejected, ok := AsServerRejected(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rejected.StatusCode)

	assert.Equal(t, srv.BaseURL+"/auth/google/login", service.GoogleLoginURL())
}
