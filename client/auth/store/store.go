package store

import (
	"net/url"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

// Store is a pluggable persistence layer for session credentials.
type Store interface {
	AddToken(origin string, token *oauth2.Token) error
	LookupToken(origin string) (*oauth2.Token, bool)
	RemoveToken(origin string) error
}

// Origin returns scheme://host of URL, used as the credential key.
func Origin(URL *url.URL) string {
	if URL == nil {
		return ""
	}
	return strings.ToLower(URL.Scheme) + "://" + strings.ToLower(URL.Host)
}

type memoryStore struct {
	mu     sync.RWMutex
	tokens map[string]*oauth2.Token
}

func (m *memoryStore) LookupToken(origin string) (*oauth2.Token, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.tokens[origin]
	return token, ok
}

func (m *memoryStore) AddToken(origin string, token *oauth2.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[origin] = token
	return nil
}

func (m *memoryStore) RemoveToken(origin string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, origin)
	return nil
}

func NewMemoryStore() Store {
	return &memoryStore{tokens: map[string]*oauth2.Token{}}
}
