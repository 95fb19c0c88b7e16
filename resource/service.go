package resource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viant/policyadmin/client"
)

// Service exposes the API resources
type Service struct {
	client *client.Client
}

// New creates a resource service on top of the request pipeline
func New(aClient *client.Client) *Service {
	return &Service{client: aClient}
}

// Client returns the underlying pipeline client
func (s *Service) Client() *client.Client {
	return s.client
}

// Login authenticates and returns the user
func (s *Service) Login(ctx context.Context, username, password string) *client.Envelope[*User] {
	return client.Login[*User](ctx, s.client, username, password)
}

// Logout ends the session
func (s *Service) Logout(ctx context.Context) *client.Envelope[bool] {
	return s.client.Logout(ctx)
}

func list[T any](ctx context.Context, s *Service, path string) *client.Envelope[[]T] {
	return client.Send[[]T](ctx, s.client, client.NewRequest(http.MethodGet, path))
}

func get[T any](ctx context.Context, s *Service, path string) *client.Envelope[*T] {
	return client.Send[*T](ctx, s.client, client.NewRequest(http.MethodGet, path))
}

func send[T any](ctx context.Context, s *Service, method, path string, payload interface{}) *client.Envelope[*T] {
	return client.Send[*T](ctx, s.client, client.JSON(method, path, payload))
}

func remove(ctx context.Context, s *Service, path string) *client.Envelope[bool] {
	result := client.Send[interface{}](ctx, s.client, client.NewRequest(http.MethodDelete, path))
	return client.Reshape(result, result.Success)
}

func itemPath(collection string, id int) string {
	return fmt.Sprintf("%s%d/", collection, id)
}

func filterPath(collection, key string, value int) string {
	return fmt.Sprintf("%s?%s=%d", collection, key, value)
}
