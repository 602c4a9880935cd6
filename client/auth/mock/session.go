package mock

import (
	"net/http"
	"strings"
)

const sessionTokenKey = "token"

func (m *AuthService) saveSession(w http.ResponseWriter, r *http.Request, token string) error {
	session, _ := m.Sessions.New(r, SessionName)
	session.Values[sessionTokenKey] = token
	return session.Save(r, w)
}

func (m *AuthService) clearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.Sessions.Get(r, SessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// sessionClaims resolves the caller identity from the bearer header, falling back to the cookie session.
func (m *AuthService) sessionClaims(r *http.Request) (*Claims, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token != "" && token != "undefined" {
			if claims, err := m.parseJWT(token); err == nil {
				return claims, true
			}
		}
	}
	session, err := m.Sessions.Get(r, SessionName)
	if err != nil || session.IsNew {
		return nil, false
	}
	token, _ := session.Values[sessionTokenKey].(string)
	if token == "" {
		return nil, false
	}
	claims, err := m.parseJWT(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}
