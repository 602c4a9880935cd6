package mock

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/viant/authprobe/schema"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBasePath matches the versioned API prefix of the real server.
	DefaultBasePath = "/api/v1"
	// SessionName is the cookie session name.
	SessionName = "auth_session"
)

type (
	// User is a registered account.
	User struct {
		ID           string
		Email        string
		Name         string
		Role         schema.Role
		PasswordHash []byte
		GoogleID     string
	}

	// GoogleAccount is what a Google authorization code resolves to.
	GoogleAccount struct {
		ID    string
		Email string
	}

	// AuthService simulates the authentication API.
	AuthService struct {
		BasePath      string
		Secret        []byte
		GoogleAuthURL string
		// AnonymousUser is reported by auth-status without a session; nil reports `user: null`.
		AnonymousUser *schema.UserInfo
		Sessions      *sessions.CookieStore
		// Cors is applied to every route; nil disables CORS headers.
		Cors *Cors

		RegisterHandler    func(w http.ResponseWriter, r *http.Request)
		LoginHandler       func(w http.ResponseWriter, r *http.Request)
		StatusHandler      func(w http.ResponseWriter, r *http.Request)
		LogoutHandler      func(w http.ResponseWriter, r *http.Request)
		GoogleLoginHandler func(w http.ResponseWriter, r *http.Request)
		LinkHandler        func(w http.ResponseWriter, r *http.Request)
		ExistsHandler      func(w http.ResponseWriter, r *http.Request)
		HealthHandler      func(w http.ResponseWriter, r *http.Request)
		ProfileHandler     func(w http.ResponseWriter, r *http.Request)

		mux         sync.RWMutex
		users       map[string]*User
		googleCodes map[string]*GoogleAccount
		hits        map[string]int
	}

	Option func(s *AuthService)
)

// WithBasePath sets the API prefix
func WithBasePath(basePath string) Option {
	return func(s *AuthService) {
		s.BasePath = strings.TrimSuffix(basePath, "/")
	}
}

// WithCors sets the cross origin policy
func WithCors(cors *Cors) Option {
	return func(s *AuthService) {
		s.Cors = cors
	}
}

// WithAnonymousUser sets the identity reported for requests without a session
func WithAnonymousUser(user *schema.UserInfo) Option {
	return func(s *AuthService) {
		s.AnonymousUser = user
	}
}

// WithGoogleCode registers an authorization code accepted by the link route
func WithGoogleCode(code string, account GoogleAccount) Option {
	return func(s *AuthService) {
		s.googleCodes[code] = &account
	}
}

// NewAuthService creates a mock authentication API.
func NewAuthService(opts ...Option) (*AuthService, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %v", err)
	}
	service := &AuthService{
		BasePath:      DefaultBasePath,
		Secret:        secret,
		GoogleAuthURL: "https://accounts.google.com/o/oauth2/auth",
		Cors:          DefaultCors(),
		users:         map[string]*User{},
		googleCodes:   map[string]*GoogleAccount{},
		hits:          map[string]int{},
	}
	for _, opt := range opts {
		opt(service)
	}
	if service.Sessions == nil {
		service.Sessions = sessions.NewCookieStore(service.Secret)
		service.Sessions.Options = &sessions.Options{Path: "/", MaxAge: int(tokenTTL.Seconds()), HttpOnly: true, SameSite: http.SameSiteLaxMode}
	}
	return service, nil
}

// AddUser registers a native account.
func (m *AuthService) AddUser(email, name, password string, role schema.Role) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	key := strings.ToLower(email)
	if _, ok := m.users[key]; ok {
		return nil, fmt.Errorf("user already exists")
	}
	user := &User{ID: uuid.NewString(), Email: email, Name: name, Role: role, PasswordHash: hash}
	m.users[key] = user
	return user, nil
}

// User returns a copy of the account registered under email.
func (m *AuthService) User(email string) (*User, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	user, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	ret := *user
	return &ret, true
}

// Hits returns how many requests reached route, e.g. schema.PathAuthStatus.
func (m *AuthService) Hits(route string) int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return m.hits[route]
}

func (m *AuthService) hit(route string) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.hits[route]++
}

func (m *AuthService) checkPassword(user *User, password string) bool {
	if len(user.PasswordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) == nil
}

func (m *AuthService) linkGoogle(email, googleID string) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if user, ok := m.users[strings.ToLower(email)]; ok {
		user.GoogleID = googleID
	}
}

func (m *AuthService) googleAccount(code string) (*GoogleAccount, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	account, ok := m.googleCodes[code]
	return account, ok
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (m *AuthService) Register(mux *http.ServeMux) {
	var middlewares []Middleware
	if m.Cors != nil {
		middlewares = append(middlewares, m.Cors.Middleware)
	}
	mux.Handle("/", chain(&Handler{Server: m}, middlewares...))
}

// Handler returns an http.Handler for all mock endpoints, suitable for any HTTP server.
func (m *AuthService) Handler() http.Handler {
	mux := http.NewServeMux()
	m.Register(mux)
	return mux
}
