package client

import (
	"context"

	"github.com/viant/authprobe/schema"
)

// Interface defines the auth status client operations
type Interface interface {
	// Initialize performs the initial status refresh
	Initialize(ctx context.Context) error

	// Register submits the register form
	Register(ctx context.Context) error

	// Login submits the login form and refreshes status on success
	Login(ctx context.Context) error

	// RefreshStatus queries the server session status
	RefreshStatus(ctx context.Context) error

	// Logout ends the server session
	Logout(ctx context.Context) error

	// LinkGoogle submits the link form
	LinkGoogle(ctx context.Context) error

	// GoogleLogin navigates to the Google login entry point
	GoogleLogin(ctx context.Context) error

	// UserExists checks whether an account exists for email
	UserExists(ctx context.Context, email string) (bool, error)

	// Health returns the server health banner
	Health(ctx context.Context) (string, error)

	// Profile returns the protected profile
	Profile(ctx context.Context) (*schema.ProfileResponse, error)

	Snapshot() Snapshot
	Result(section Section) (Result, bool)
	Forms() Forms
	UpdateForms(update func(forms *Forms))
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
