package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
)

// FileStore persists tokens to a JSON file so a session outlives the process.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	tokens map[string]*oauth2.Token
}

// NewFileStore creates a Store that persists tokens at the given path.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, tokens: map[string]*oauth2.Token{}}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (f *FileStore) LookupToken(origin string) (*oauth2.Token, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.tokens[origin]
	return t, ok
}

func (f *FileStore) AddToken(origin string, token *oauth2.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[origin] = token
	return f.save()
}

func (f *FileStore) RemoveToken(origin string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tokens[origin]; !ok {
		return nil
	}
	delete(f.tokens, origin)
	return f.save()
}

// ---- persistence ----

type fileSnapshot struct {
	Tokens map[string]*oauth2.Token `json:"tokens"`
}

func (f *FileStore) save() error {
	snap := fileSnapshot{Tokens: f.tokens}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	for k, v := range snap.Tokens {
		if v != nil {
			f.tokens[k] = v
		}
	}
	return nil
}
