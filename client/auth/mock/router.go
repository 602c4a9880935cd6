package mock

import (
	"net/http"
	"strings"

	"github.com/viant/authprobe/schema"
)

// Handler routes HTTP requests to the appropriate mock auth API endpoints.
type Handler struct {
	// Server is the mock auth service with endpoint handlers.
	Server *AuthService
}

type route struct {
	method   string
	override func(w http.ResponseWriter, r *http.Request)
	fallback func(w http.ResponseWriter, r *http.Request)
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s := h.Server
	path := strings.TrimPrefix(r.URL.Path, s.BasePath)
	path = strings.Trim(path, "/")
	var aRoute route
	switch path {
	case schema.PathRegister:
		aRoute = route{http.MethodPost, s.RegisterHandler, s.defaultRegisterHandler}
	case schema.PathLogin:
		aRoute = route{http.MethodPost, s.LoginHandler, s.defaultLoginHandler}
	case schema.PathAuthStatus:
		aRoute = route{http.MethodGet, s.StatusHandler, s.defaultStatusHandler}
	case schema.PathLogout:
		aRoute = route{http.MethodPost, s.LogoutHandler, s.defaultLogoutHandler}
	case schema.PathGoogleLogin:
		aRoute = route{http.MethodGet, s.GoogleLoginHandler, s.defaultGoogleLoginHandler}
	case schema.PathGoogleLink:
		aRoute = route{http.MethodPost, s.LinkHandler, s.defaultLinkHandler}
	case schema.PathUserExists:
		aRoute = route{http.MethodGet, s.ExistsHandler, s.defaultExistsHandler}
	case schema.PathHealth:
		aRoute = route{http.MethodGet, s.HealthHandler, s.defaultHealthHandler}
	case schema.PathProfile:
		aRoute = route{http.MethodGet, s.ProfileHandler, s.defaultProfileHandler}
	default:
		http.NotFound(w, r)
		return
	}
	s.hit(path)
	if r.Method != aRoute.method {
		writeJSON(w, http.StatusMethodNotAllowed, schema.ErrorResponse{Error: "Method not allowed."})
		return
	}
	if aRoute.override != nil {
		aRoute.override(w, r)
		return
	}
	aRoute.fallback(w, r)
}
