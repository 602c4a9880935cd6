package mock

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/authprobe/schema"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (m *AuthService) defaultRegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req schema.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, schema.ErrorResponse{Error: "Invalid request payload."})
		return
	}
	role := schema.Role(strings.ToUpper(string(req.Role)))
	if role != schema.RoleStudent && role != schema.RoleTeacher {
		writeJSON(w, http.StatusBadRequest, schema.ErrorResponse{Error: "Invalid role. Must be STUDENT or TEACHER."})
		return
	}
	if _, err := m.AddUser(req.Email, req.Name, req.Password, role); err != nil {
		writeJSON(w, http.StatusConflict, schema.ErrorResponse{Error: "User already exists."})
		return
	}
	writeJSON(w, http.StatusCreated, schema.MessageResponse{Message: "User registered successfully."})
}

func (m *AuthService) defaultLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req schema.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, schema.ErrorResponse{Error: "Invalid request payload."})
		return
	}
	user, ok := m.User(req.Email)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, schema.ErrorResponse{Error: "Invalid email or password."})
		return
	}
	if len(user.PasswordHash) == 0 {
		writeJSON(w, http.StatusUnauthorized, schema.ErrorResponse{Error: "You registered with Google. Please sign in with Google.", UseOAuth: "true"})
		return
	}
	if !m.checkPassword(user, req.Password) {
		writeJSON(w, http.StatusUnauthorized, schema.ErrorResponse{Error: "Invalid email or password."})
		return
	}
	token, err := m.createJWT(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, schema.ErrorResponse{Error: "Could not generate token."})
		return
	}
	if err = m.saveSession(w, r, token); err != nil {
		writeJSON(w, http.StatusInternalServerError, schema.ErrorResponse{Error: "Could not create session."})
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, schema.MessageResponse{Message: "Login successful.", Token: token})
}

func (m *AuthService) defaultStatusHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := m.sessionClaims(r)
	if !ok {
		writeJSON(w, http.StatusOK, schema.AuthStatus{User: m.AnonymousUser, IsAuthenticated: false})
		return
	}
	writeJSON(w, http.StatusOK, schema.AuthStatus{
		User: &schema.UserInfo{
			ID:    claims.Subject,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		},
		IsAuthenticated: true,
	})
}

func (m *AuthService) defaultLogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := m.clearSession(w, r); err != nil {
		writeJSON(w, http.StatusInternalServerError, schema.ErrorResponse{Error: "Could not clear session."})
		return
	}
	writeJSON(w, http.StatusOK, schema.MessageResponse{Message: "Logged out successfully."})
}

func (m *AuthService) defaultGoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("state", "state-token")
	query.Set("access_type", "offline")
	http.Redirect(w, r, m.GoogleAuthURL+"?"+query.Encode(), http.StatusTemporaryRedirect)
}

func (m *AuthService) defaultLinkHandler(w http.ResponseWriter, r *http.Request) {
	var req schema.LinkGoogleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, schema.ErrorResponse{Error: "Invalid request."})
		return
	}
	user, ok := m.User(req.Email)
	if !ok {
		writeJSON(w, http.StatusNotFound, schema.ErrorResponse{Error: "User not found."})
		return
	}
	if !m.checkPassword(user, req.Password) {
		writeJSON(w, http.StatusUnauthorized, schema.ErrorResponse{Error: "Invalid password."})
		return
	}
	account, ok := m.googleAccount(req.GoogleAuthCode)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, schema.ErrorResponse{Error: "Failed to verify with Google."})
		return
	}
	if !strings.EqualFold(account.Email, user.Email) {
		writeJSON(w, http.StatusBadRequest, schema.ErrorResponse{Error: "The Google account email does not match the account email."})
		return
	}
	m.linkGoogle(user.Email, account.ID)
	writeJSON(w, http.StatusOK, schema.MessageResponse{Message: "Google account linked successfully."})
}

func (m *AuthService) defaultExistsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, schema.ErrorResponse{Error: "email required"})
		return
	}
	_, ok := m.User(email)
	writeJSON(w, http.StatusOK, schema.ExistsResponse{Exists: ok})
}

func (m *AuthService) defaultHealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Server is running"))
}

func (m *AuthService) defaultProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := m.sessionClaims(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, schema.ErrorResponse{Error: "Invalid token"})
		return
	}
	writeJSON(w, http.StatusOK, schema.ProfileResponse{Message: "This is a protected route.", UserID: claims.Subject})
}
