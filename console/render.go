package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/viant/authprobe/client"
)

// View is the client state rendered after each command.
type View struct {
	Snapshot client.Snapshot
	Results  map[client.Section]client.Result
	Forms    client.Forms
}

// NewView captures the current state of cli.
func NewView(cli client.Interface) *View {
	ret := &View{Snapshot: cli.Snapshot(), Forms: cli.Forms(), Results: map[client.Section]client.Result{}}
	for _, section := range client.Sections {
		if result, ok := cli.Result(section); ok {
			ret.Results[section] = result
		}
	}
	return ret
}

// Commands returns the commands available for the view; logout requires a session.
func (v *View) Commands() []string {
	var ret []string
	for _, cmd := range commands {
		if cmd.name == cmdLogout && !v.Snapshot.IsAuthenticated {
			continue
		}
		ret = append(ret, cmd.name)
	}
	return ret
}

// Render writes a deterministic text rendering of view.
func Render(w io.Writer, view *View) error {
	b := &strings.Builder{}
	b.WriteString("Session\n")
	if view.Snapshot.IsAuthenticated {
		b.WriteString("  authenticated: yes\n")
	} else {
		b.WriteString("  authenticated: no\n")
	}
	if user := view.Snapshot.User; user != nil {
		fmt.Fprintf(b, "  user: %v <%v> role=%v id=%v\n", user.Name, user.Email, user.Role, user.ID)
	} else {
		b.WriteString("  user: -\n")
	}
	b.WriteString("Results\n")
	for _, section := range client.Sections {
		result, ok := view.Results[section]
		switch {
		case !ok:
			fmt.Fprintf(b, "  %v: -\n", section)
		case result.IsError:
			fmt.Fprintf(b, "  %v: [error] %v\n", section, result.Message)
		default:
			fmt.Fprintf(b, "  %v: %v\n", section, result.Message)
		}
	}
	forms := view.Forms
	b.WriteString("Forms\n")
	fmt.Fprintf(b, "  register: email=%q name=%q password=%v role=%v\n", forms.Register.Email, forms.Register.Name, mask(forms.Register.Password), forms.Register.Role)
	fmt.Fprintf(b, "  login: email=%q password=%v\n", forms.Login.Email, mask(forms.Login.Password))
	fmt.Fprintf(b, "  link: email=%q password=%v code=%q\n", forms.Link.Email, mask(forms.Link.Password), forms.Link.GoogleAuthCode)
	fmt.Fprintf(b, "Commands: %v\n", strings.Join(view.Commands(), " "))
	_, err := io.WriteString(w, b.String())
	return err
}

func mask(secret string) string {
	if secret == "" {
		return "unset"
	}
	return "set"
}
