package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/policyadmin"
	"github.com/viant/policyadmin/client"
	"github.com/viant/policyadmin/client/auth"
	"github.com/viant/policyadmin/resource"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
	"go.uber.org/zap"
)

// Service executes command line actions
type Service struct {
	options   *Options
	client    *client.Client
	resources *resource.Service
	logger    *zap.Logger
	writer    io.Writer
}

// New creates a service, client options from --config are overridden by flags.
func New(ctx context.Context, options *Options, writer io.Writer) (*Service, error) {
	clientOptions := &options.ClientOptions
	if options.ConfigURL != "" {
		loaded, err := policyadmin.LoadClientOptions(ctx, options.ConfigURL)
		if err != nil {
			return nil, err
		}
		loaded.Merge(clientOptions)
		clientOptions = loaded
	}
	logger, err := policyadmin.NewLogger(clientOptions)
	if err != nil {
		return nil, err
	}
	aClient, err := policyadmin.NewClient(ctx, clientOptions, client.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Service{
		options:   options,
		client:    aClient,
		resources: resource.New(aClient),
		logger:    logger,
		writer:    writer,
	}, nil
}

// Close releases the session store and flushes logs
func (s *Service) Close() error {
	_ = s.logger.Sync()
	return s.client.Close()
}

// Run executes the requested action
func (s *Service) Run(ctx context.Context) error {
	switch s.options.Args.Action {
	case ActionLogin:
		username, password, err := s.credentials(ctx)
		if err != nil {
			return err
		}
		return report(s, s.resources.Login(ctx, username, password))
	case ActionLogout:
		return report(s, s.resources.Logout(ctx))
	case ActionWhoami:
		return s.whoami(ctx)
	case ActionGet:
		if s.options.Args.Path == "" {
			return errors.New("path is required")
		}
		return report(s, s.client.Send(ctx, client.NewRequest(http.MethodGet, s.options.Args.Path)))
	case ActionDashboard:
		return report(s, s.resources.Dashboard(ctx))
	case ActionBranches:
		return report(s, s.resources.Branches(ctx))
	case ActionAgents:
		if s.options.Branch != 0 {
			return report(s, s.resources.AgentsByBranch(ctx, s.options.Branch))
		}
		return report(s, s.resources.Agents(ctx))
	case ActionPolicies:
		return report(s, s.resources.Policies(ctx))
	case "":
		return errors.New("action is required")
	}
	return fmt.Errorf("unsupported action: %v", s.options.Args.Action)
}

// credentials returns login credentials from a scy secret or flags
func (s *Service) credentials(ctx context.Context) (string, string, error) {
	if s.options.SecretURL == "" {
		if s.options.Username == "" || s.options.Password == "" {
			return "", "", errors.New("username and password are required")
		}
		return s.options.Username, s.options.Password, nil
	}
	secrets := scy.New()
	secret, err := secrets.Load(ctx, scy.NewResource(&cred.Basic{}, s.options.SecretURL, s.options.SecretKey))
	if err != nil {
		return "", "", fmt.Errorf("failed to load secret %v: %w", s.options.SecretURL, err)
	}
	switch actual := secret.Target.(type) {
	case *cred.Basic:
		username := actual.Username
		if s.options.Username != "" {
			username = s.options.Username
		}
		return username, actual.Password, nil
	}
	return "", "", fmt.Errorf("unsupported secret type: %T", secret.Target)
}

type identity struct {
	Token  string                 `json:"token"`
	Format auth.Format            `json:"format"`
	Claims map[string]interface{} `json:"claims,omitempty"`
}

func (s *Service) whoami(ctx context.Context) error {
	credential, err := auth.Load(ctx, s.client.Store())
	if err != nil {
		return err
	}
	if credential == nil {
		return errors.New("not logged in")
	}
	ret := &identity{Token: credential.Masked(), Format: credential.Format}
	if claims, err := credential.Claims(); err == nil {
		ret.Claims = claims
	} else {
		s.logger.Debug("opaque token", zap.Error(err))
	}
	return s.write(ret)
}

func report[T any](s *Service, result *client.Envelope[T]) error {
	if err := s.write(result); err != nil {
		return err
	}
	if !result.Success {
		return errors.New(result.Message)
	}
	return nil
}

func (s *Service) write(value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.writer, string(data))
	return err
}
