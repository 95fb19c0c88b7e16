package cookie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	neturl "net/url"
	"strings"
	"sync"
	"time"

	"github.com/viant/afs"
)

// Jar is a cookie jar persisted to an afs URL on each update and restored on startup.
type Jar struct {
	URL   string
	mux   sync.Mutex
	fs    afs.Service
	inner *cookiejar.Jar
	index map[string]*entry
}

type entry struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"httpOnly,omitempty"`
	HostOnly bool      `json:"hostOnly,omitempty"`
}

type snapshot struct {
	Cookies []*entry `json:"cookies"`
}

func (e *entry) key() string {
	return e.Domain + "|" + e.Path + "|" + e.Name
}

func (e *entry) expired(now time.Time) bool {
	return !e.Expires.IsZero() && now.After(e.Expires)
}

// New creates a jar persisted at URL
func New(ctx context.Context, URL string) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	ret := &Jar{URL: URL, fs: afs.New(), inner: inner, index: map[string]*entry{}}
	if err = ret.load(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

func (j *Jar) Cookies(u *neturl.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

// SetCookies stores cookies and persists the jar; a failed write keeps the in memory session.
func (j *Jar) SetCookies(u *neturl.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)
	j.mux.Lock()
	defer j.mux.Unlock()
	now := time.Now()
	for _, cookie := range cookies {
		item := newEntry(u, cookie, now)
		if item.expired(now) || cookie.MaxAge < 0 {
			delete(j.index, item.key())
			continue
		}
		j.index[item.key()] = item
	}
	_ = j.save(context.Background())
}

func newEntry(u *neturl.URL, cookie *http.Cookie, now time.Time) *entry {
	ret := &entry{
		Name:     cookie.Name,
		Value:    cookie.Value,
		Domain:   strings.TrimPrefix(strings.TrimSpace(cookie.Domain), "."),
		Path:     cookie.Path,
		Expires:  cookie.Expires,
		Secure:   cookie.Secure,
		HttpOnly: cookie.HttpOnly,
	}
	if ret.Domain == "" {
		ret.Domain = u.Hostname()
		ret.HostOnly = true
	}
	if ret.Path == "" {
		ret.Path = "/"
	}
	if cookie.MaxAge > 0 {
		ret.Expires = now.Add(time.Duration(cookie.MaxAge) * time.Second)
	}
	return ret
}

func (j *Jar) save(ctx context.Context) error {
	snap := snapshot{Cookies: make([]*entry, 0, len(j.index))}
	for _, item := range j.index {
		snap.Cookies = append(snap.Cookies, item)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err = j.fs.Upload(ctx, j.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save cookies %v: %w", j.URL, err)
	}
	return nil
}

func (j *Jar) load(ctx context.Context) error {
	if exists, _ := j.fs.Exists(ctx, j.URL); !exists {
		return nil
	}
	data, err := j.fs.DownloadWithURL(ctx, j.URL)
	if err != nil {
		return fmt.Errorf("failed to load cookies %v: %w", j.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	snap := snapshot{}
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid cookies %v: %w", j.URL, err)
	}
	now := time.Now()
	for _, item := range snap.Cookies {
		if item.expired(now) {
			continue
		}
		j.index[item.key()] = item
		scheme := "http"
		if item.Secure {
			scheme = "https"
		}
		cookie := &http.Cookie{
			Name:     item.Name,
			Value:    item.Value,
			Path:     item.Path,
			Expires:  item.Expires,
			Secure:   item.Secure,
			HttpOnly: item.HttpOnly,
		}
		if !item.HostOnly {
			cookie.Domain = item.Domain
		}
		j.inner.SetCookies(&neturl.URL{Scheme: scheme, Host: item.Domain, Path: item.Path}, []*http.Cookie{cookie})
	}
	return nil
}
