package transport

import (
	"net/http"
)

// cookieWrap attaches jar cookies to outbound requests and records response
// cookies back into the jar, so the RoundTripper keeps the session even when it
// is used without an http.Client Jar.
type cookieWrap struct {
	inner http.RoundTripper
	jar   http.CookieJar
}

// WrapWithCookieJar wraps inner with jar; it returns inner unchanged when either is nil.
func WrapWithCookieJar(inner http.RoundTripper, jar http.CookieJar) http.RoundTripper {
	if jar == nil || inner == nil {
		return inner
	}
	return &cookieWrap{inner: inner, jar: jar}
}

func (w *cookieWrap) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for _, c := range w.jar.Cookies(clone.URL) {
		if _, err := clone.Cookie(c.Name); err == nil {
			continue
		}
		clone.AddCookie(c)
	}
	resp, err := w.inner.RoundTrip(clone)
	if err != nil {
		return nil, err
	}
	if cookies := resp.Cookies(); len(cookies) > 0 {
		w.jar.SetCookies(clone.URL, cookies)
	}
	return resp, nil
}
