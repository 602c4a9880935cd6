package transport

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/authprobe/client/auth/store"
	"golang.org/x/oauth2"
)

func newEchoServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1", Path: "/"})
			w.Header().Set("Authorization", "Bearer tkn-1")
		case "/logout":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "", Path: "/", MaxAge: -1})
		}
		if c, err := r.Cookie("session"); err == nil {
			w.Header().Set("X-Session", c.Value)
		}
		w.Header().Set("X-Authorization", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoundTripper_AmbientCredentials(t *testing.T) {
	srv := newEchoServer(t)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	rt, err := New(WithCookieJar(jar))
	require.NoError(t, err)
	httpClient := &http.Client{Transport: rt}

	resp, err := httpClient.Get(srv.URL + "/status")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Empty(t, resp.Header.Get("X-Session"))
	assert.Empty(t, resp.Header.Get("X-Authorization"))

	resp, err = httpClient.Post(srv.URL+"/login", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = httpClient.Get(srv.URL + "/status")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "s1", resp.Header.Get("X-Session"))
	assert.Equal(t, "Bearer tkn-1", resp.Header.Get("X-Authorization"))

	URL, _ := url.Parse(srv.URL)
	require.NoError(t, rt.Forget(URL))
	resp, err = httpClient.Post(srv.URL+"/logout", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = httpClient.Get(srv.URL + "/status")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Empty(t, resp.Header.Get("X-Session"))
	assert.Empty(t, resp.Header.Get("X-Authorization"))
}

func TestRoundTripper_ExplicitHeaderWins(t *testing.T) {
	srv := newEchoServer(t)
	aStore := store.NewMemoryStore()
	URL, _ := url.Parse(srv.URL)
	require.NoError(t, aStore.AddToken(store.Origin(URL), &oauth2.Token{AccessToken: "stored", TokenType: "Bearer"}))
	rt, err := New(WithStore(aStore))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/status", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer explicit")
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "Bearer explicit", resp.Header.Get("X-Authorization"))
	assert.Equal(t, "Bearer explicit", req.Header.Get("Authorization"))
}

func TestRoundTripper_ExpiredTokenNotSent(t *testing.T) {
	srv := newEchoServer(t)
	aStore := store.NewMemoryStore()
	URL, _ := url.Parse(srv.URL)
	require.NoError(t, aStore.AddToken(store.Origin(URL), &oauth2.Token{AccessToken: "old", TokenType: "Bearer", Expiry: time.Now().Add(-time.Hour)}))
	rt, err := New(WithStore(aStore))
	require.NoError(t, err)

	resp, err := (&http.Client{Transport: rt}).Get(srv.URL + "/status")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Empty(t, resp.Header.Get("X-Authorization"))
}

func TestParseBearer(t *testing.T) {
	assert.Equal(t, "abc", parseBearer("Bearer abc"))
	assert.Equal(t, "abc", parseBearer("bearer  abc "))
	assert.Equal(t, "", parseBearer("Basic abc"))
	assert.Equal(t, "", parseBearer("Bearer undefined"))
	assert.Equal(t, "", parseBearer(""))
}

func TestFileJar_Persistence(t *testing.T) {
	srv := newEchoServer(t)
	path := filepath.Join(t.TempDir(), "cookies.json")
	jar, err := NewFileJar(path)
	require.NoError(t, err)
	rt, err := New(WithCookieJar(jar))
	require.NoError(t, err)
	resp, err := (&http.Client{Transport: rt}).Post(srv.URL+"/login", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	reloaded, err := NewFileJar(path)
	require.NoError(t, err)
	URL, _ := url.Parse(srv.URL + "/status")
	cookies := reloaded.Cookies(URL)
	require.Len(t, cookies, 1)
	assert.Equal(t, "s1", cookies[0].Value)

	reloaded.SetCookies(URL, []*http.Cookie{{Name: "session", Path: "/", MaxAge: -1}})
	again, err := NewFileJar(path)
	require.NoError(t, err)
	assert.Empty(t, again.Cookies(URL))
}
