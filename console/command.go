package console

import (
	"context"
	"errors"
	"strings"

	"github.com/viant/authprobe/client"
	"github.com/viant/authprobe/client/auth/flow"
	"github.com/viant/authprobe/schema"
)

const (
	cmdRegister   = "register"
	cmdLogin      = "login"
	cmdStatus     = "status"
	cmdLogout     = "logout"
	cmdLink       = "link"
	cmdGoogle     = "google"
	cmdGoogleCode = "google-code"
	cmdExists     = "exists"
	cmdHealth     = "health"
	cmdProfile    = "profile"
	cmdShow       = "show"
	cmdHelp       = "help"
	cmdQuit       = "quit"
)

type command struct {
	name  string
	usage string
	// render reports whether the state is rendered after the command
	render bool
	run    func(c *Console, ctx context.Context, args []string) error
}

var commands []*command

func init() {
	commands = []*command{
		{name: cmdRegister, usage: "register [email name password [role]]", render: true, run: (*Console).register},
		{name: cmdLogin, usage: "login [email password]", render: true, run: (*Console).login},
		{name: cmdStatus, usage: "status", render: true, run: func(c *Console, ctx context.Context, _ []string) error {
			return c.client.RefreshStatus(ctx)
		}},
		{name: cmdLogout, usage: "logout", render: true, run: (*Console).logout},
		{name: cmdLink, usage: "link [email password code]", render: true, run: (*Console).link},
		{name: cmdGoogle, usage: "google", run: func(c *Console, ctx context.Context, _ []string) error {
			return c.client.GoogleLogin(ctx)
		}},
		{name: cmdGoogleCode, usage: "google-code", run: (*Console).googleCode},
		{name: cmdExists, usage: "exists <email>", run: (*Console).exists},
		{name: cmdHealth, usage: "health", run: (*Console).health},
		{name: cmdProfile, usage: "profile", run: (*Console).profile},
		{name: cmdShow, usage: "show", render: true, run: func(*Console, context.Context, []string) error { return nil }},
		{name: cmdHelp, usage: "help", run: (*Console).help},
		{name: cmdQuit, usage: "quit"},
	}
}

func lookupCommand(name string) (*command, bool) {
	name = strings.ToLower(name)
	if name == "exit" {
		name = cmdQuit
	}
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return nil, false
}

var errNoSession = errors.New("logout is available only with an authenticated session")

type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: " + e.usage
}

func (c *Console) register(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
	case 3, 4:
		form := client.RegisterForm{Email: args[0], Name: args[1], Password: args[2], Role: schema.RoleStudent}
		if len(args) == 4 {
			form.Role = schema.Role(args[3])
		}
		c.client.UpdateForms(func(f *client.Forms) { f.Register = form })
	default:
		return &usageError{usage: "register [email name password [role]]"}
	}
	return c.client.Register(ctx)
}

func (c *Console) login(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
	case 2:
		c.client.UpdateForms(func(f *client.Forms) { f.Login = client.LoginForm{Email: args[0], Password: args[1]} })
	default:
		return &usageError{usage: "login [email password]"}
	}
	return c.client.Login(ctx)
}

func (c *Console) logout(ctx context.Context, _ []string) error {
	if !c.client.Snapshot().IsAuthenticated {
		return errNoSession
	}
	return c.client.Logout(ctx)
}

func (c *Console) link(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
	case 3:
		c.client.UpdateForms(func(f *client.Forms) {
			f.Link = client.LinkForm{Email: args[0], Password: args[1], GoogleAuthCode: args[2]}
		})
	default:
		return &usageError{usage: "link [email password code]"}
	}
	return c.client.LinkGoogle(ctx)
}

func (c *Console) googleCode(ctx context.Context, _ []string) error {
	config, err := c.google.OAuth2Config(ctx)
	if err != nil {
		return err
	}
	URL, err := flow.GoogleCodeURL(config, c.google.State)
	if err != nil {
		return err
	}
	c.printf("Open the following URL and copy the code parameter of the redirect:\n%s\n", URL)
	return nil
}

func (c *Console) exists(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return &usageError{usage: "exists <email>"}
	}
	exists, err := c.client.UserExists(ctx, args[0])
	if err != nil {
		return err
	}
	c.printf("%v exists: %v\n", args[0], exists)
	return nil
}

func (c *Console) health(ctx context.Context, _ []string) error {
	banner, err := c.client.Health(ctx)
	if err != nil {
		return err
	}
	c.printf("%s\n", banner)
	return nil
}

func (c *Console) profile(ctx context.Context, _ []string) error {
	profile, err := c.client.Profile(ctx)
	if err != nil {
		return err
	}
	c.printf("%s (user_id: %s)\n", profile.Message, profile.UserID)
	return nil
}

func (c *Console) help(_ context.Context, _ []string) error {
	c.printf("Commands:\n")
	for _, cmd := range commands {
		c.printf("  %s\n", cmd.usage)
	}
	c.printf("A form command without arguments resubmits the retained form.\n")
	return nil
}
