package policyadmin

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/policyadmin/client"
	"gopkg.in/yaml.v3"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreBolt   = "bolt"
	StoreRedis  = "redis"
)

// ClientOptions defines options for configuring an API client.
type ClientOptions struct {
	BaseURL   string        `yaml:"baseURL,omitempty" json:"baseURL,omitempty" short:"u" long:"url" description:"api base URL"`
	Timeout   time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" short:"t" long:"timeout" description:"request timeout, e.g. 30s"`
	ProbePath string        `yaml:"probePath,omitempty" json:"probePath,omitempty" long:"probe-path" description:"path used to detect the auth header format after login"`
	Store     ClientStore   `yaml:"store,omitempty" json:"store,omitempty"`
	CookieURL string        `yaml:"cookieURL,omitempty" json:"cookieURL,omitempty" long:"cookies" description:"session cookies URL, defaults next to the file store"`
	Debug     bool          `yaml:"debug,omitempty" json:"debug,omitempty" short:"d" long:"debug" description:"debug logging"`
}

// ClientStore defines where the session credential is kept.
type ClientStore struct {
	Kind        string `yaml:"kind,omitempty" json:"kind,omitempty" short:"s" long:"store" description:"session store" choice:"memory" choice:"file" choice:"bolt" choice:"redis"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty" long:"store-url" description:"session file URL or bolt database path"`
	RedisAddr   string `yaml:"redisAddr,omitempty" json:"redisAddr,omitempty" long:"redis-addr" description:"redis address"`
	RedisPrefix string `yaml:"redisPrefix,omitempty" json:"redisPrefix,omitempty" long:"redis-prefix" description:"redis key prefix"`
}

// Init sets defaults
func (o *ClientOptions) Init() {
	if o.BaseURL == "" {
		o.BaseURL = client.DefaultBaseURL
	}
	if o.Timeout == 0 {
		o.Timeout = client.DefaultTimeout
	}
	if o.ProbePath == "" {
		o.ProbePath = client.DefaultProbePath
	}
	o.Store.init()
	if o.CookieURL == "" && o.Store.Kind == StoreFile {
		o.CookieURL = sibling(o.Store.URL, "cookies.json")
	}
}

func (s *ClientStore) init() {
	if s.Kind == "" {
		s.Kind = StoreMemory
	}
	switch s.Kind {
	case StoreFile:
		if s.URL == "" {
			s.URL = path.Join(homeDir(), ".policyadmin", "session.json")
		}
	case StoreBolt:
		if s.URL == "" {
			s.URL = path.Join(homeDir(), ".policyadmin", "session.db")
		}
	case StoreRedis:
		if s.RedisAddr == "" {
			s.RedisAddr = "localhost:6379"
		}
	}
}

// Merge overrides o with the non zero values of other
func (o *ClientOptions) Merge(other *ClientOptions) {
	if other.BaseURL != "" {
		o.BaseURL = other.BaseURL
	}
	if other.Timeout != 0 {
		o.Timeout = other.Timeout
	}
	if other.ProbePath != "" {
		o.ProbePath = other.ProbePath
	}
	if other.CookieURL != "" {
		o.CookieURL = other.CookieURL
	}
	if other.Debug {
		o.Debug = true
	}
	if other.Store.Kind != "" {
		o.Store.Kind = other.Store.Kind
	}
	if other.Store.URL != "" {
		o.Store.URL = other.Store.URL
	}
	if other.Store.RedisAddr != "" {
		o.Store.RedisAddr = other.Store.RedisAddr
	}
	if other.Store.RedisPrefix != "" {
		o.Store.RedisPrefix = other.Store.RedisPrefix
	}
}

// LoadClientOptions loads YAML client options from any afs supported URL
func LoadClientOptions(ctx context.Context, URL string) (*ClientOptions, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, expandHome(URL))
	if err != nil {
		return nil, fmt.Errorf("failed to load client options %v: %w", URL, err)
	}
	ret := &ClientOptions{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid client options %v: %w", URL, err)
	}
	return ret, nil
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.TempDir()
}

// sibling replaces the last URL segment with name
func sibling(URL, name string) string {
	if index := strings.LastIndex(URL, "/"); index != -1 {
		return URL[:index+1] + name
	}
	return name
}

func expandHome(URL string) string {
	if strings.HasPrefix(URL, "~/") {
		return path.Join(homeDir(), URL[2:])
	}
	return URL
}
