package client

import (
	"context"
	"net/http"

	"github.com/viant/policyadmin/client/auth"
	"github.com/viant/policyadmin/client/auth/store"
	"go.uber.org/zap"
)

const (
	loginPath  = "/login/"
	logoutPath = "/logout/"
)

type (
	loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	loginResponse[U any] struct {
		Token string `json:"token"`
		User  U      `json:"user"`
	}
)

// Login authenticates with the API and returns the logged in user decoded as U.
// The issued token is stored and the accepted Authorization header format is detected right away.
func Login[U any](ctx context.Context, c *Client, username, password string) *Envelope[U] {
	logger := c.logger.With(zap.String("username", username))
	result := Send[loginResponse[U]](ctx, c, JSON(http.MethodPost, loginPath, &loginRequest{Username: username, Password: password}))
	if !result.Success || result.Data.Token == "" {
		message := result.Message
		if message == "" || result.Success {
			message = "Authentication failed"
		}
		logger.Warn("login failed", zap.Int("status", result.Status), zap.String("message", message))
		return &Envelope[U]{Status: result.Status, Message: message}
	}
	credential := auth.NewCredential(result.Data.Token)
	if err := c.store.Put(ctx, store.KeyToken, credential.Token); err != nil {
		return Failure[U]("Login failed: " + err.Error())
	}
	if err := c.store.Put(ctx, store.KeyRawToken, credential.Raw); err != nil {
		return Failure[U]("Login failed: " + err.Error())
	}
	format, err := c.detectFormat(ctx, credential.Token, logger)
	if err != nil {
		logger.Warn("auth format detection failed", zap.Error(err))
	} else if err = auth.SaveFormat(ctx, c.store, format); err != nil {
		logger.Warn("failed to remember auth format", zap.Error(err))
	}
	logger.Info("login successful", zap.String("token", credential.Masked()))
	return Reshape(result, result.Data.User)
}

// Login authenticates with the API, the user is returned as generic JSON value.
func (c *Client) Login(ctx context.Context, username, password string) *Envelope[interface{}] {
	return Login[interface{}](ctx, c, username, password)
}

// detectFormat requests the probe path with each format in turn; the first 200 wins, bearer when none does.
// The raw candidate sends the token as issued.
func (c *Client) detectFormat(ctx context.Context, token string, logger *zap.Logger) (auth.Format, error) {
	candidate := &auth.Credential{Token: token, Raw: token}
	for _, format := range auth.Formats() {
		httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.probePath, nil)
		if err != nil {
			return "", err
		}
		httpRequest.Header.Set(HeaderContentType, ContentTypeJSON)
		httpRequest.Header.Set(HeaderAuthorization, format.Header(candidate))
		response, err := c.httpClient.Do(httpRequest)
		if err != nil {
			return "", err
		}
		discard(response)
		logger.Debug("auth format test", zap.String("format", string(format)), zap.Int("status", response.StatusCode))
		if response.StatusCode == http.StatusOK {
			return format, nil
		}
	}
	return auth.FormatBearer, nil
}

// Logout notifies the API and clears the stored credential whatever the outcome.
func (c *Client) Logout(ctx context.Context) *Envelope[bool] {
	credential, err := auth.Load(ctx, c.store)
	if err != nil {
		c.logger.Warn("failed to load credential", zap.Error(err))
	}
	if credential == nil {
		return &Envelope[bool]{Data: true, Status: http.StatusOK, Message: "Already logged out", Success: true}
	}
	response, err := c.logout(ctx, credential)
	if clearErr := auth.Clear(ctx, c.store); clearErr != nil {
		c.logger.Error("failed to clear credential", zap.Error(clearErr))
	}
	if err != nil {
		c.logger.Warn("logout failed", zap.Error(err))
		return &Envelope[bool]{
			Data:    true,
			Message: "Logout had network error but token was cleared: " + err.Error(),
			Success: true,
		}
	}
	discard(response)
	ret := &Envelope[bool]{Data: true, Status: response.StatusCode, Success: isOK(response.StatusCode)}
	if ret.Success {
		ret.Message = "Logged out successfully"
	} else {
		ret.Message = "Logout failed"
	}
	return ret
}

func (c *Client) logout(ctx context.Context, credential *auth.Credential) (*http.Response, error) {
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+logoutPath, nil)
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set(HeaderAuthorization, auth.FormatBearer.Header(credential))
	return c.httpClient.Do(httpRequest)
}
