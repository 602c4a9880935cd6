package store

import (
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestOrigin(t *testing.T) {
	URL, err := url.Parse("HTTP://LocalHost:8080/api/v1/login?x=1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", Origin(URL))
	assert.Equal(t, "", Origin(nil))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.LookupToken("http://localhost:8080")
	assert.False(t, ok)

	require.NoError(t, s.AddToken("http://localhost:8080", &oauth2.Token{AccessToken: "abc", TokenType: "Bearer"}))
	token, ok := s.LookupToken("http://localhost:8080")
	require.True(t, ok)
	assert.Equal(t, "abc", token.AccessToken)

	require.NoError(t, s.RemoveToken("http://localhost:8080"))
	_, ok = s.LookupToken("http://localhost:8080")
	assert.False(t, ok)
}

func TestFileStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokens.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, s.AddToken("http://localhost:8080", &oauth2.Token{AccessToken: "abc", TokenType: "Bearer", Expiry: expiry}))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	token, ok := reloaded.LookupToken("http://localhost:8080")
	require.True(t, ok)
	assert.Equal(t, "abc", token.AccessToken)
	assert.True(t, expiry.Equal(token.Expiry))

	require.NoError(t, reloaded.RemoveToken("http://localhost:8080"))
	again, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok = again.LookupToken("http://localhost:8080")
	assert.False(t, ok)
}
