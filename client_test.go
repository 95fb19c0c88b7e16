package policyadmin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/policyadmin/client"
	"github.com/viant/policyadmin/client/auth"
	"github.com/viant/policyadmin/client/auth/store"
)

func TestLoadClientOptions(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(location, []byte(`
baseURL: https://insurance.example.com/api
timeout: 5s
store:
  kind: bolt
  url: /tmp/session.db
`), 0600))
	options, err := LoadClientOptions(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "https://insurance.example.com/api", options.BaseURL)
	assert.Equal(t, 5*time.Second, options.Timeout)
	assert.Equal(t, StoreBolt, options.Store.Kind)
	assert.Equal(t, "/tmp/session.db", options.Store.URL)

	_, err = LoadClientOptions(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestClientOptions_Init(t *testing.T) {
	options := &ClientOptions{Store: ClientStore{Kind: StoreRedis}}
	options.Init()
	assert.Equal(t, client.DefaultBaseURL, options.BaseURL)
	assert.Equal(t, client.DefaultTimeout, options.Timeout)
	assert.Equal(t, client.DefaultProbePath, options.ProbePath)
	assert.Equal(t, "localhost:6379", options.Store.RedisAddr)

	options = &ClientOptions{}
	options.Merge(&ClientOptions{BaseURL: "http://api", Store: ClientStore{Kind: StoreFile}})
	options.Init()
	assert.Equal(t, "http://api", options.BaseURL)
	assert.Equal(t, StoreFile, options.Store.Kind)
	assert.NotEmpty(t, options.Store.URL)
	assert.Equal(t, sibling(options.Store.URL, "cookies.json"), options.CookieURL)
	assert.Equal(t, "s3://bucket/cookies.json", sibling("s3://bucket/session.json", "cookies.json"))
}

func TestNewClient(t *testing.T) {
	redisServer := miniredis.RunT(t)
	testCases := []struct {
		description string
		store       ClientStore
		expectErr   bool
	}{
		{description: "memory", store: ClientStore{Kind: StoreMemory}},
		{description: "file", store: ClientStore{Kind: StoreFile, URL: filepath.Join(t.TempDir(), "session.json")}},
		{description: "bolt", store: ClientStore{Kind: StoreBolt, URL: filepath.Join(t.TempDir(), "session.db")}},
		{description: "redis", store: ClientStore{Kind: StoreRedis, RedisAddr: redisServer.Addr()}},
		{description: "unsupported", store: ClientStore{Kind: "etcd"}, expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer abc", r.Header.Get(client.HeaderAuthorization))
				http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "1", Path: "/"})
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			defer server.Close()
			ctx := context.Background()
			cli, err := NewClient(ctx, &ClientOptions{BaseURL: server.URL, Store: testCase.store})
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer cli.Close()
			if testCase.store.Kind == StoreFile {
				_, err := os.Stat(filepath.Join(filepath.Dir(testCase.store.URL), "cookies.json"))
				assert.True(t, os.IsNotExist(err))
			}
			require.NoError(t, auth.Save(ctx, cli.Store(), auth.NewCredential("abc")))
			result := cli.Send(ctx, client.NewRequest(http.MethodGet, "/home/"))
			assert.True(t, result.Success)
			assert.Equal(t, map[string]interface{}{"ok": true}, result.Data)
			if testCase.store.Kind == StoreFile {
				data, err := os.ReadFile(filepath.Join(filepath.Dir(testCase.store.URL), "cookies.json"))
				require.NoError(t, err)
				assert.Contains(t, string(data), "sessionid")
			}
		})
	}
}

func TestNewClient_InvalidCookies(t *testing.T) {
	dir := t.TempDir()
	cookies := filepath.Join(dir, "cookies.json")
	require.NoError(t, os.WriteFile(cookies, []byte("{"), 0600))
	options := &ClientOptions{
		Store:     ClientStore{Kind: StoreBolt, URL: filepath.Join(dir, "session.db")},
		CookieURL: cookies,
	}
	_, err := NewClient(context.Background(), options)
	require.Error(t, err)

	reopened, err := store.NewBoltStore(filepath.Join(dir, "session.db"))
	require.NoError(t, err)
	assert.NoError(t, reopened.Close())
}
