package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/viant/authprobe/api"
	"github.com/viant/authprobe/client/auth/flow"
	"github.com/viant/authprobe/internal/log"
	"github.com/viant/authprobe/schema"
)

const (
	msgRegistered   = "Registration successful! You can now log in."
	msgLoggedIn     = "Login successful! The session cookie has been set."
	msgStatus       = "Authentication status retrieved successfully."
	msgLoggedOut    = "Logged out successfully."
	msgLinked       = "Google account linked successfully."
	msgConnection   = "Connection error"
	msgLogoutFailed = "Connection error while logging out."
)

// Credentials drops ambient credentials held for an API origin.
type Credentials interface {
	Forget(URL *url.URL) error
}

type Client struct {
	api         *api.Service
	navigator   flow.Navigator
	credentials Credentials
	logger      *slog.Logger
	listeners   []Listener
	ttl         time.Duration
	mux         sync.RWMutex
	snapshot    Snapshot
	forms       Forms
	results     *board
}

// Initialize performs the initial status refresh.
func (c *Client) Initialize(ctx context.Context) error {
	return c.RefreshStatus(ctx)
}

// Register submits the register form.
func (c *Client) Register(ctx context.Context) error {
	c.clearResult(SectionRegister)
	form := c.Forms().Register
	if _, err := c.api.Register(ctx, form.request()); err != nil {
		c.fail(SectionRegister, "register", err)
		return err
	}
	c.resetForm(SectionRegister, func(f *Forms) { f.Register = newRegisterForm() })
	c.show(SectionRegister, msgRegistered, false)
	return nil
}

// Login submits the login form; on success the session status is refreshed once.
// A failed refresh is reported in the status section only.
func (c *Client) Login(ctx context.Context) error {
	c.clearResult(SectionLogin)
	c.setSnapshot(Snapshot{})
	form := c.Forms().Login
	if _, err := c.api.Login(ctx, form.request()); err != nil {
		c.fail(SectionLogin, "login", err)
		return err
	}
	c.resetForm(SectionLogin, func(f *Forms) { f.Login = LoginForm{} })
	c.show(SectionLogin, msgLoggedIn, false)
	_ = c.RefreshStatus(ctx)
	return nil
}

// RefreshStatus replaces the snapshot with the server's current view of the session.
func (c *Client) RefreshStatus(ctx context.Context) error {
	c.clearResult(SectionStatus)
	c.setSnapshot(Snapshot{})
	status, err := c.api.AuthStatus(ctx)
	if err != nil {
		c.fail(SectionStatus, "status", err)
		return err
	}
	c.setSnapshot(newSnapshot(status))
	c.show(SectionStatus, msgStatus, false)
	return nil
}

// Logout ends the session; the snapshot stays empty whatever the server answers.
func (c *Client) Logout(ctx context.Context) error {
	c.setSnapshot(Snapshot{})
	for _, section := range Sections {
		c.clearResult(section)
	}
	if _, err := c.api.Logout(ctx); err != nil {
		c.logger.Debug("logout failed", "error", err)
		if rejected, ok := api.AsServerRejected(err); ok {
			c.show(SectionStatus, "Logout error: "+rejected.Reason, true)
		} else {
			c.show(SectionStatus, msgLogoutFailed, true)
		}
		return err
	}
	c.forgetCredentials()
	c.show(SectionStatus, msgLoggedOut, false)
	return nil
}

// LinkGoogle submits the link form.
func (c *Client) LinkGoogle(ctx context.Context) error {
	c.clearResult(SectionLink)
	form := c.Forms().Link
	if _, err := c.api.LinkGoogle(ctx, form.request()); err != nil {
		c.fail(SectionLink, "link", err)
		return err
	}
	c.resetForm(SectionLink, func(f *Forms) { f.Link = LinkForm{} })
	c.show(SectionLink, msgLinked, false)
	return nil
}

// GoogleLogin sends the browsing context to the server's Google login entry point.
func (c *Client) GoogleLogin(ctx context.Context) error {
	URL := c.api.GoogleLoginURL()
	if c.navigator == nil {
		return fmt.Errorf("navigator was not configured")
	}
	if err := c.navigator.Navigate(ctx, URL); err != nil {
		return fmt.Errorf("failed to navigate to %v: %w", URL, err)
	}
	c.notify(Event{Kind: EventNavigate, URL: URL})
	return nil
}

// UserExists reports whether the server knows the email.
func (c *Client) UserExists(ctx context.Context, email string) (bool, error) {
	return c.api.UserExists(ctx, email)
}

// Health returns the server health banner.
func (c *Client) Health(ctx context.Context) (string, error) {
	return c.api.Health(ctx)
}

// Profile returns the protected profile of the current session.
func (c *Client) Profile(ctx context.Context) (*schema.ProfileResponse, error) {
	return c.api.Profile(ctx)
}

// Snapshot returns a copy of the current session snapshot.
func (c *Client) Snapshot() Snapshot {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.snapshot.copy()
}

// Result returns the visible result of a section.
func (c *Client) Result(section Section) (Result, bool) {
	return c.results.get(section)
}

// Forms returns a copy of the retained forms.
func (c *Client) Forms() Forms {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.forms
}

// UpdateForms applies update to the retained forms.
func (c *Client) UpdateForms(update func(forms *Forms)) {
	c.mux.Lock()
	update(&c.forms)
	c.mux.Unlock()
	c.notify(Event{Kind: EventForm})
}

func (c *Client) fail(section Section, op string, err error) {
	c.logger.Debug("operation failed", "op", op, "error", err)
	if rejected, ok := api.AsServerRejected(err); ok {
		c.show(section, "Error: "+rejected.Reason, true)
		return
	}
	c.show(section, msgConnection, true)
}

func (c *Client) forgetCredentials() {
	if c.credentials == nil {
		return
	}
	URL, err := url.Parse(c.api.BaseURL())
	if err != nil {
		return
	}
	if err = c.credentials.Forget(URL); err != nil {
		c.logger.Warn("failed to forget credentials", "error", err)
	}
}

func (c *Client) setSnapshot(snapshot Snapshot) {
	c.mux.Lock()
	c.snapshot = snapshot
	c.mux.Unlock()
	c.notify(Event{Kind: EventSnapshot})
}

func (c *Client) resetForm(section Section, reset func(forms *Forms)) {
	c.mux.Lock()
	reset(&c.forms)
	c.mux.Unlock()
	c.notify(Event{Kind: EventForm, Section: section})
}

func (c *Client) show(section Section, message string, isError bool) {
	c.results.show(section, message, isError)
	c.notify(Event{Kind: EventResult, Section: section})
}

func (c *Client) clearResult(section Section) {
	if c.results.clear(section) {
		c.notify(Event{Kind: EventResult, Section: section})
	}
}

func (c *Client) notify(event Event) {
	c.mux.RLock()
	listeners := c.listeners
	c.mux.RUnlock()
	for _, listener := range listeners {
		listener(event)
	}
}

// New creates an auth status client over service.
func New(service *api.Service, options ...Option) *Client {
	ret := &Client{
		api:    service,
		forms:  NewForms(),
		logger: log.Discard(),
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.results = newBoard(ret.messageTTL(), func(section Section) {
		ret.notify(Event{Kind: EventResult, Section: section})
	})
	return ret
}
