package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/viant/authprobe"
	"github.com/viant/authprobe/client"
	"github.com/viant/authprobe/client/auth/flow"
)

const prompt = "> "

// Console is a line oriented front end over the auth status client.
type Console struct {
	client client.Interface
	google *flow.GoogleCodeConfig
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	mux    sync.Mutex
	// busy counts commands in progress; results expiring in between are redrawn at once
	busy atomic.Int32
}

// Run initializes the client, then executes commands until quit or end of input.
func (c *Console) Run(ctx context.Context) error {
	c.busy.Add(1)
	if err := c.client.Initialize(ctx); err != nil {
		c.logger.Debug("initial status refresh failed", "error", err)
	}
	c.busy.Add(-1)
	if err := c.render(); err != nil {
		return err
	}
	scanner := bufio.NewScanner(c.in)
	for {
		c.printf("%s", prompt)
		if !scanner.Scan() {
			break
		}
		quit, err := c.Execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command line, reporting whether the console should stop.
// Only rendering failures are returned; command errors are printed.
func (c *Console) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, ok := lookupCommand(fields[0])
	if !ok {
		c.printf("unknown command: %s (try help)\n", fields[0])
		return false, nil
	}
	if cmd.name == cmdQuit {
		return true, nil
	}
	c.busy.Add(1)
	defer c.busy.Add(-1)
	if err := cmd.run(c, ctx, fields[1:]); err != nil {
		c.report(cmd, err)
	}
	if !cmd.render {
		return false, nil
	}
	return false, c.render()
}

// report prints errors the rendered results do not already show.
func (c *Console) report(cmd *command, err error) {
	c.logger.Debug("command failed", "command", cmd.name, "error", err)
	var usage *usageError
	switch {
	case errors.As(err, &usage), errors.Is(err, errNoSession):
		c.printf("%v\n", err)
	case cmd.render:
	default:
		c.printf("error: %v\n", err)
	}
}

func (c *Console) render() error {
	c.mux.Lock()
	defer c.mux.Unlock()
	return Render(c.out, NewView(c.client))
}

func (c *Console) printf(format string, args ...interface{}) {
	c.mux.Lock()
	defer c.mux.Unlock()
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) onEvent(event client.Event) {
	c.logger.Debug("client event", "kind", event.Kind, "section", event.Section, "url", event.URL)
	if event.Kind != client.EventResult || c.busy.Load() > 0 {
		return
	}
	if err := c.render(); err != nil {
		c.logger.Warn("failed to render", "error", err)
		return
	}
	c.printf("%s", prompt)
}

// New creates a console over a client built from options.
func New(options *authprobe.ClientOptions, in io.Reader, out io.Writer) (*Console, error) {
	if options.Output == nil {
		options.Output = out
	}
	ret := newConsole(nil, &options.Google, in, out, options.Logger)
	cli, err := authprobe.NewClient(options, client.WithListener(ret.onEvent))
	if err != nil {
		return nil, err
	}
	ret.client = cli
	return ret, nil
}

func newConsole(cli client.Interface, google *flow.GoogleCodeConfig, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{client: cli, google: google, in: in, out: out, logger: logger}
}
