package schema

// Role is the account role reported or requested by the auth API.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

type (
	// UserInfo represents the identity returned by the auth-status endpoint.
	UserInfo struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  Role   `json:"role"`
	}

	// AuthStatus represents the auth-status endpoint payload.
	AuthStatus struct {
		User            *UserInfo `json:"user"`
		IsAuthenticated bool      `json:"isAuthenticated"`
	}

	// RegisterRequest represents native registration body.
	RegisterRequest struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
		Role     Role   `json:"role"`
	}

	// LoginRequest represents native login body.
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// LinkGoogleRequest links a Google account to an existing native account.
	LinkGoogleRequest struct {
		Email          string `json:"email"`
		Password       string `json:"password"`
		GoogleAuthCode string `json:"google_auth_code"`
	}

	// MessageResponse is a generic success body.
	MessageResponse struct {
		Message string `json:"message,omitempty"`
		Token   string `json:"token,omitempty"`
	}

	// ProfileResponse is returned by the protected profile route.
	ProfileResponse struct {
		Message string `json:"message"`
		UserID  string `json:"user_id"`
	}

	// ExistsResponse is returned by the users/exists route.
	ExistsResponse struct {
		Exists bool `json:"exists"`
	}
)
