package console

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/authprobe/internal/log"
)

func Run(args []string) error {
	options, err := parseOptions(context.Background(), afs.New(), args)
	if err != nil {
		return err
	}
	logger, err := log.Setup(options.LogLevel, options.LogFormat)
	if err != nil {
		return err
	}
	options.Logger = logger
	ctx := context.Background()
	console, err := New(&options.ClientOptions, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	return console.Run(ctx)
}

// parseOptions applies CLI flags over the optional config file.
func parseOptions(ctx context.Context, fs afs.Service, args []string) (*Options, error) {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	if options.Config == "" {
		return options, nil
	}
	configured := &Options{}
	if err := loadConfig(ctx, fs, options.Config, configured); err != nil {
		return nil, err
	}
	if _, err := flags.ParseArgs(configured, args); err != nil {
		return nil, err
	}
	return configured, nil
}
