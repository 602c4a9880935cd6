package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	neturl "net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileJar is a thin wrapper around the standard cookiejar.Jar that persists
// cookies to a JSON file on each update and reloads them on startup.
// cookiejar.Jar cannot be enumerated, so FileJar keeps its own index of what it
// was asked to store.
type FileJar struct {
	mu    sync.RWMutex
	inner *cookiejar.Jar
	path  string
	index map[string]persistedCookie
}

type persistedCookie struct {
	Host     string    `json:"host"`
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain,omitempty"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires"`
	Secure   bool      `json:"secure"`
	HttpOnly bool      `json:"httpOnly"`
}

type cookieSnapshot struct {
	Cookies []persistedCookie `json:"cookies"`
}

// NewFileJar creates a cookie jar persisted at path.
func NewFileJar(path string) (*FileJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &FileJar{inner: inner, path: path, index: map[string]persistedCookie{}}
	if err = j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *FileJar) Cookies(u *neturl.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.inner.Cookies(u)
}

func (j *FileJar) SetCookies(u *neturl.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)
	now := time.Now()
	for _, c := range cookies {
		path := c.Path
		if path == "" {
			path = "/"
		}
		pc := persistedCookie{
			Host:     u.Host,
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
		key := pc.key()
		if c.MaxAge < 0 || (!c.Expires.IsZero() && now.After(c.Expires)) {
			delete(j.index, key)
			continue
		}
		if c.MaxAge > 0 {
			pc.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		j.index[key] = pc
	}
	_ = j.save()
}

func (p persistedCookie) key() string {
	return p.Host + "|" + p.Path + "|" + p.Name
}

func (j *FileJar) save() error {
	snap := cookieSnapshot{}
	for _, v := range j.index {
		snap.Cookies = append(snap.Cookies, v)
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o700); err != nil {
		return err
	}
	tmp := j.path + ".tmp"
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, j.path)
}

func (j *FileJar) load() error {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var snap cookieSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	now := time.Now()
	for _, pc := range snap.Cookies {
		if pc.Host == "" || (!pc.Expires.IsZero() && now.After(pc.Expires)) {
			continue
		}
		scheme := "http"
		if pc.Secure {
			scheme = "https"
		}
		u := &neturl.URL{Scheme: scheme, Host: pc.Host, Path: pc.Path}
		j.inner.SetCookies(u, []*http.Cookie{{
			Name:     pc.Name,
			Value:    pc.Value,
			Domain:   pc.Domain,
			Path:     pc.Path,
			Expires:  pc.Expires,
			Secure:   pc.Secure,
			HttpOnly: pc.HttpOnly,
		}})
		j.index[pc.key()] = pc
	}
	return nil
}
