package mock

import (
	"net/http"
	"strings"
)

// DefaultAllowedOrigin is the web front end origin allowed by DefaultCors.
const DefaultAllowedOrigin = "http://localhost:3001"

const (
	allowOriginHeader      = "Access-Control-Allow-Origin"
	allowHeadersHeader     = "Access-Control-Allow-Headers"
	allowMethodsHeader     = "Access-Control-Allow-Methods"
	allowCredentialsHeader = "Access-Control-Allow-Credentials"
	exposeHeadersHeader    = "Access-Control-Expose-Headers"
	requestMethodHeader    = "Access-Control-Request-Method"
	separator              = ", "
)

// Cors describes the cross origin policy of the browser facing API.
type Cors struct {
	AllowCredentials bool
	AllowHeaders     []string
	AllowMethods     []string
	AllowOrigins     []string
	ExposeHeaders    []string
}

// Middleware is a function that takes an http.Handler and returns an http.Handler
type Middleware func(next http.Handler) http.Handler

// chain applies middlewares so the first one is outermost.
func chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Middleware sets CORS headers and answers preflight requests.
func (c *Cors) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.setHeaders(w, r)
		if r.Method == http.MethodOptions && r.Header.Get(requestMethodHeader) != "" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *Cors) allowed(origin string) bool {
	for _, candidate := range c.AllowOrigins {
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	return false
}

func (c *Cors) setHeaders(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" && c.allowed(origin) {
		w.Header().Set(allowOriginHeader, origin)
	}
	if len(c.AllowMethods) > 0 {
		w.Header().Set(allowMethodsHeader, strings.Join(c.AllowMethods, separator))
	}
	if len(c.AllowHeaders) > 0 {
		w.Header().Set(allowHeadersHeader, strings.Join(c.AllowHeaders, separator))
	}
	if c.AllowCredentials {
		w.Header().Set(allowCredentialsHeader, "true")
	}
	if len(c.ExposeHeaders) > 0 {
		w.Header().Set(exposeHeadersHeader, strings.Join(c.ExposeHeaders, separator))
	}
}

// DefaultCors lets the web front end read the Authorization header and send credentials.
func DefaultCors() *Cors {
	return &Cors{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowOrigins:     []string{DefaultAllowedOrigin},
		ExposeHeaders:    []string{"Authorization"},
	}
}
