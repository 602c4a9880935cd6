package client

import "github.com/viant/authprobe/schema"

type (
	RegisterForm struct {
		Email    string
		Name     string
		Password string
		Role     schema.Role
	}

	LoginForm struct {
		Email    string
		Password string
	}

	LinkForm struct {
		Email          string
		Password       string
		GoogleAuthCode string
	}

	// Forms is the operator input retained between submissions.
	Forms struct {
		Register RegisterForm
		Login    LoginForm
		Link     LinkForm
	}
)

func newRegisterForm() RegisterForm {
	return RegisterForm{Role: schema.RoleStudent}
}

// NewForms returns empty forms with the default registration role.
func NewForms() Forms {
	return Forms{Register: newRegisterForm()}
}

func (f RegisterForm) request() *schema.RegisterRequest {
	return &schema.RegisterRequest{Email: f.Email, Name: f.Name, Password: f.Password, Role: f.Role}
}

func (f LoginForm) request() *schema.LoginRequest {
	return &schema.LoginRequest{Email: f.Email, Password: f.Password}
}

func (f LinkForm) request() *schema.LinkGoogleRequest {
	return &schema.LinkGoogleRequest{Email: f.Email, Password: f.Password, GoogleAuthCode: f.GoogleAuthCode}
}
