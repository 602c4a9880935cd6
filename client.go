package authprobe

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/viant/authprobe/api"
	"github.com/viant/authprobe/client"
	"github.com/viant/authprobe/client/auth/flow"
	"github.com/viant/authprobe/client/auth/store"
	authtransport "github.com/viant/authprobe/client/auth/transport"
)

// DefaultBaseURL is the auth API location used when none is configured.
const DefaultBaseURL = "http://localhost:8080/api/v1"

// ClientOptions
//
// defines options for configuring an auth status client.
type ClientOptions struct {
	BaseURL    string                `yaml:"baseURL,omitempty" json:"baseURL,omitempty"  short:"u" long:"url" description:"auth API base URL"`
	MessageTTL time.Duration         `yaml:"messageTTL,omitempty" json:"messageTTL,omitempty"  short:"t" long:"ttl" description:"how long success messages stay visible"`
	Auth       ClientAuth            `yaml:"auth,omitempty" json:"auth,omitempty" group:"auth"`
	Google     flow.GoogleCodeConfig `yaml:"google,omitempty" json:"google,omitempty" group:"google"`

	// CookieJar, if set, replaces the jar built from Auth.CookieFile.
	CookieJar http.CookieJar `yaml:"-" json:"-" no-flag:"true"`
	// Output receives out-of-band navigation prompts; defaults to stdout.
	Output io.Writer    `yaml:"-" json:"-" no-flag:"true"`
	Logger *slog.Logger `yaml:"-" json:"-" no-flag:"true"`

	// cachedAuthRT and cachedHTTPClient keep credentials shared by every client built from these options.
	cachedAuthRT     *authtransport.RoundTripper
	cachedHTTPClient *http.Client
}

// ClientAuth defines how ambient credentials are kept.
type ClientAuth struct {
	CookieFile string `yaml:"cookieFile,omitempty" json:"cookieFile,omitempty" long:"cookie-file" description:"persist session cookies to this file"`
	TokenFile  string `yaml:"tokenFile,omitempty" json:"tokenFile,omitempty" long:"token-file" description:"persist bearer tokens to this file"`
	Browser    string `yaml:"browser,omitempty" json:"browser,omitempty" long:"browser" description:"how to open the Google login page" choice:"system" choice:"print"`

	// Store allows injecting a token store shared across clients.
	Store store.Store `yaml:"-" json:"-" no-flag:"true"`
}

func (c *ClientOptions) Init() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MessageTTL <= 0 {
		c.MessageTTL = client.DefaultMessageTTL
	}
	if c.Auth.Browser == "" {
		c.Auth.Browser = "system"
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
}

// NewClient creates an auth status client with credentials, navigation and logging configured via ClientOptions.
// The client is not initialized; call Initialize once listeners are in place.
func NewClient(options *ClientOptions, opts ...client.Option) (*client.Client, error) {
	options.Init()
	httpClient, err := options.HTTPClient()
	if err != nil {
		return nil, err
	}
	service := api.New(options.BaseURL, api.WithHTTPClient(httpClient))
	navigator, err := options.Navigator()
	if err != nil {
		return nil, err
	}
	ret := []client.Option{
		client.WithNavigator(navigator),
		client.WithCredentials(options.cachedAuthRT),
		client.WithMessageTTL(options.MessageTTL),
		client.WithLogger(options.Logger),
	}
	return client.New(service, append(ret, opts...)...), nil
}

// HTTPClient returns the credentialed HTTP client, building it once.
func (c *ClientOptions) HTTPClient() (*http.Client, error) {
	if c.cachedHTTPClient != nil {
		return c.cachedHTTPClient, nil
	}
	jar, err := c.cookieJar()
	if err != nil {
		return nil, err
	}
	tokenStore, err := c.tokenStore()
	if err != nil {
		return nil, err
	}
	rt, err := authtransport.New(authtransport.WithStore(tokenStore), authtransport.WithCookieJar(jar))
	if err != nil {
		return nil, err
	}
	c.cachedAuthRT = rt
	c.cachedHTTPClient = &http.Client{Transport: rt}
	return c.cachedHTTPClient, nil
}

// Navigator returns the browsing context used for the Google login redirect.
func (c *ClientOptions) Navigator() (flow.Navigator, error) {
	switch c.Auth.Browser {
	case "", "system":
		return flow.NewBrowserFlow(), nil
	case "print":
		return flow.NewOutOfBandFlow(c.Output), nil
	}
	return nil, fmt.Errorf("unsupported browser option: %v", c.Auth.Browser)
}

// AuthStore exposes the underlying token store used by the auth transport.
func (c *ClientOptions) AuthStore() store.Store {
	if c.cachedAuthRT == nil {
		return nil
	}
	return c.cachedAuthRT.Store()
}

func (c *ClientOptions) cookieJar() (http.CookieJar, error) {
	if c.CookieJar != nil {
		return c.CookieJar, nil
	}
	if c.Auth.CookieFile != "" {
		jar, err := authtransport.NewFileJar(c.Auth.CookieFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load cookies %v: %w", c.Auth.CookieFile, err)
		}
		return jar, nil
	}
	return cookiejar.New(nil)
}

func (c *ClientOptions) tokenStore() (store.Store, error) {
	if c.Auth.Store != nil {
		return c.Auth.Store, nil
	}
	if c.Auth.TokenFile != "" {
		fileStore, err := store.NewFileStore(c.Auth.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load tokens %v: %w", c.Auth.TokenFile, err)
		}
		return fileStore, nil
	}
	return store.NewMemoryStore(), nil
}
