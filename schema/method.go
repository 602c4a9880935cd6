package schema

// Auth API routes, relative to the API base URL.
const (
	PathRegister    = "register"
	PathLogin       = "login"
	PathLogout      = "logout"
	PathAuthStatus  = "auth-status"
	PathGoogleLogin = "auth/google/login"
	PathGoogleLink  = "auth/google/link"
	PathUserExists  = "users/exists"
	PathHealth      = "health"
	PathProfile     = "profile"
)
