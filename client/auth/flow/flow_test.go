package flow

import (
	"bytes"
	"context"
	"net/url"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestOutOfBandFlow_Navigate(t *testing.T) {
	buf := &bytes.Buffer{}
	err := NewOutOfBandFlow(buf).Navigate(context.Background(), "http://localhost:8080/api/v1/auth/google/login")
	require.NoError(t, err)
	assert.Equal(t, "Open the following URL in your browser:\nhttp://localhost:8080/api/v1/auth/google/login\n", buf.String())
}

func TestBrowserFlow_Navigate(t *testing.T) {
	var opened string
	aFlow := &BrowserFlow{open: func(URL string) *exec.Cmd {
		opened = URL
		return exec.Command("definitely-not-a-browser-binary")
	}}
	err := aFlow.Navigate(context.Background(), "http://x")
	assert.Error(t, err)
	assert.Equal(t, "http://x", opened)
}

func TestGoogleCodeURL(t *testing.T) {
	ctx := context.Background()
	config, err := (&GoogleCodeConfig{ClientID: "cid", RedirectURL: "http://localhost:8080/api/v1/auth/google/callback"}).OAuth2Config(ctx)
	require.NoError(t, err)
	URL, err := GoogleCodeURL(config, "")
	require.NoError(t, err)
	parsed, err := url.Parse(URL)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, "cid", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "state-token", query.Get("state"))
	assert.Contains(t, query.Get("scope"), "userinfo.email")

	URL, err = GoogleCodeURL(config, "custom")
	require.NoError(t, err)
	assert.Contains(t, URL, "state=custom")

	empty, err := (&GoogleCodeConfig{}).OAuth2Config(ctx)
	require.NoError(t, err)
	_, err = GoogleCodeURL(empty, "")
	assert.Error(t, err)
	_, err = GoogleCodeURL(&oauth2.Config{ClientID: "cid"}, "")
	assert.Error(t, err)
	_, err = GoogleCodeURL(nil, "")
	assert.Error(t, err)
}

func TestGoogleCodeConfig_ConfigURL(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "google-oauth.json")
	_, err := (&GoogleCodeConfig{ConfigURL: missing, ClientID: "ignored"}).OAuth2Config(context.Background())
	assert.Error(t, err)

	var nilConfig *GoogleCodeConfig
	_, err = nilConfig.OAuth2Config(context.Background())
	assert.Error(t, err)
}
