package console

import "github.com/viant/authprobe"

type Options struct {
	authprobe.ClientOptions `yaml:",inline"`
	Config                  string `short:"c" long:"config" description:"YAML config URL" yaml:"-"`
	LogLevel                string `long:"log-level" description:"log level: debug, info, warn, error" yaml:"logLevel,omitempty"`
	LogFormat               string `long:"log-format" description:"log format: text or json" choice:"text" choice:"json" yaml:"logFormat,omitempty"`
}
