package authprobe

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/authprobe/client"
	"github.com/viant/authprobe/client/auth/mock"
	"github.com/viant/authprobe/schema"
)

func TestNewClient(t *testing.T) {
	server, err := mock.NewHTTPTestAuthServer()
	require.NoError(t, err)
	defer server.Close()
	_, err = server.AddUser("a@b.com", "Ann", "x", schema.RoleTeacher)
	require.NoError(t, err)

	dir := t.TempDir()
	output := &bytes.Buffer{}
	options := &ClientOptions{
		BaseURL: server.BaseURL,
		Auth: ClientAuth{
			CookieFile: filepath.Join(dir, "cookies.json"),
			TokenFile:  filepath.Join(dir, "tokens.json"),
			Browser:    "print",
		},
		Output: output,
	}
	cli, err := NewClient(options)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, cli.Initialize(ctx))
	assert.True(t, cli.Snapshot().Empty())

	cli.UpdateForms(func(f *client.Forms) { f.Login = client.LoginForm{Email: "a@b.com", Password: "x"} })
	require.NoError(t, cli.Login(ctx))
	require.True(t, cli.Snapshot().IsAuthenticated)

	// a second process picks the session up from the cookie and token files
	restored, err := NewClient(&ClientOptions{BaseURL: server.BaseURL, Auth: ClientAuth{
		CookieFile: options.Auth.CookieFile,
		TokenFile:  options.Auth.TokenFile,
	}})
	require.NoError(t, err)
	require.NoError(t, restored.RefreshStatus(ctx))
	snapshot := restored.Snapshot()
	require.True(t, snapshot.IsAuthenticated)
	assert.Equal(t, schema.RoleTeacher, snapshot.User.Role)

	require.NoError(t, cli.GoogleLogin(ctx))
	assert.Contains(t, output.String(), server.BaseURL+"/"+schema.PathGoogleLogin)

	require.NoError(t, cli.Logout(ctx))
	assert.True(t, cli.Snapshot().Empty())
	require.NotNil(t, options.AuthStore())
}

func TestClientOptions_Init(t *testing.T) {
	options := &ClientOptions{}
	options.Init()
	assert.Equal(t, DefaultBaseURL, options.BaseURL)
	assert.Equal(t, client.DefaultMessageTTL, options.MessageTTL)
	assert.Equal(t, "system", options.Auth.Browser)

	options.Auth.Browser = "carrier-pigeon"
	_, err := options.Navigator()
	assert.Error(t, err)
}
