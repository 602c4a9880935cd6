package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/scy/auth/authorizer"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleScopes are the scopes the auth API requests when exchanging a code.
var GoogleScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

const defaultState = "state-token"

// GoogleCodeConfig identifies the OAuth client registered for the auth API,
// either inline or as a (optionally encrypted) scy OAuth2 config URL.
type GoogleCodeConfig struct {
	ConfigURL     string `yaml:"configURL,omitempty" json:"configURL,omitempty" long:"google-config" description:"oauth2 config URL of the Google client"`
	EncryptionKey string `yaml:"encryptionKey,omitempty" json:"encryptionKey,omitempty" long:"google-key" description:"encryption key of the oauth2 config"`
	ClientID      string `yaml:"clientID,omitempty" json:"clientID,omitempty" long:"google-client-id" description:"Google client id, used without config URL"`
	RedirectURL   string `yaml:"redirectURL,omitempty" json:"redirectURL,omitempty" long:"google-redirect" description:"redirect URL receiving the code"`
	State         string `yaml:"state,omitempty" json:"state,omitempty" long:"google-state" description:"consent state parameter"`
}

// OAuth2Config loads the OAuth client config from ConfigURL, or builds it from ClientID when no URL is set.
// RedirectURL overrides the loaded redirect.
func (c *GoogleCodeConfig) OAuth2Config(ctx context.Context) (*oauth2.Config, error) {
	if c == nil {
		return nil, errors.New("google config was empty")
	}
	if c.ConfigURL == "" {
		return &oauth2.Config{
			ClientID:    c.ClientID,
			RedirectURL: c.RedirectURL,
			Scopes:      GoogleScopes,
			Endpoint:    google.Endpoint,
		}, nil
	}
	configURL := c.ConfigURL
	if c.EncryptionKey != "" {
		configURL += "|" + c.EncryptionKey
	}
	oauthCfg := &authorizer.OAuthConfig{ConfigURL: configURL}
	if err := authorizer.New().EnsureConfig(ctx, oauthCfg); err != nil {
		return nil, fmt.Errorf("failed to load oauth2 config %q: %w", c.ConfigURL, err)
	}
	if oauthCfg.Config == nil {
		return nil, fmt.Errorf("oauth2 config %q was empty", c.ConfigURL)
	}
	ret := *oauthCfg.Config
	if c.RedirectURL != "" {
		ret.RedirectURL = c.RedirectURL
	}
	if len(ret.Scopes) == 0 {
		ret.Scopes = GoogleScopes
	}
	if ret.Endpoint.AuthURL == "" {
		ret.Endpoint = google.Endpoint
	}
	return &ret, nil
}

// GoogleCodeURL builds the Google consent URL whose redirect carries the
// authorization code expected by the account link operation.
func GoogleCodeURL(config *oauth2.Config, state string) (string, error) {
	if config == nil || config.ClientID == "" {
		return "", errors.New("google client id was empty")
	}
	if config.RedirectURL == "" {
		return "", errors.New("google redirect url was empty")
	}
	if state == "" {
		state = defaultState
	}
	return config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}
