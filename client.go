package policyadmin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/redis/go-redis/v9"
	"github.com/viant/policyadmin/client"
	"github.com/viant/policyadmin/client/auth/store"
	"github.com/viant/policyadmin/client/cookie"
	"go.uber.org/zap"
)

// NewClient creates an API client with the session store, timeout and cookie jar configured via ClientOptions.
// Extra options are applied last.
func NewClient(ctx context.Context, options *ClientOptions, extra ...client.Option) (*client.Client, error) {
	options.Init()
	aStore, err := options.Store.newStore(ctx)
	if err != nil {
		return nil, err
	}
	jar, err := newCookieJar(ctx, options.CookieURL)
	if err != nil {
		if closer, ok := aStore.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, err
	}
	opts := []client.Option{
		client.WithBaseURL(options.BaseURL),
		client.WithTimeout(options.Timeout),
		client.WithProbePath(options.ProbePath),
		client.WithStore(aStore),
		client.WithCookieJar(jar),
	}
	return client.New(append(opts, extra...)...), nil
}

// NewLogger builds a production logger, debug level when options.Debug is set
func NewLogger(options *ClientOptions) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if options.Debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func newCookieJar(ctx context.Context, URL string) (http.CookieJar, error) {
	if URL == "" {
		return cookiejar.New(nil)
	}
	return cookie.New(ctx, expandHome(URL))
}

func (s *ClientStore) newStore(ctx context.Context) (store.Store, error) {
	switch s.Kind {
	case StoreMemory, "":
		return store.NewMemoryStore(), nil
	case StoreFile:
		return store.NewFileStore(ctx, expandHome(s.URL))
	case StoreBolt:
		return store.NewBoltStore(expandHome(s.URL))
	case StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: s.RedisAddr})
		return store.NewRedisStore(rdb, s.RedisPrefix), nil
	}
	return nil, fmt.Errorf("unsupported session store: %v", s.Kind)
}
