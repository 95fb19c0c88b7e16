package resource

import (
	"context"
	"net/http"

	"github.com/viant/policyadmin/client"
)

const (
	pathPolicies   = "/insurance-policies/"
	pathGSVRates   = "/gsv-rates/"
	pathSSVConfigs = "/ssv-configs/"
)

type (
	// GSVRateInput is the editable part of a guaranteed surrender value band
	GSVRateInput struct {
		MinYear int    `json:"min_year"`
		MaxYear int    `json:"max_year"`
		Rate    string `json:"rate"`
	}

	// SSVConfigInput is the editable part of a special surrender value band
	SSVConfigInput struct {
		MinYear          int    `json:"min_year"`
		MaxYear          int    `json:"max_year"`
		SSVFactor        string `json:"ssv_factor"`
		EligibilityYears int    `json:"eligibility_years"`
		CustomCondition  string `json:"custom_condition"`
	}

	gsvRateCreate struct {
		GSVRateInput
		Policy int `json:"policy"`
	}

	ssvConfigCreate struct {
		SSVConfigInput
		Policy int `json:"policy"`
	}
)

func (s *Service) Policies(ctx context.Context) *client.Envelope[[]Policy] {
	return list[Policy](ctx, s, pathPolicies)
}

func (s *Service) Policy(ctx context.Context, id int) *client.Envelope[*Policy] {
	return get[Policy](ctx, s, itemPath(pathPolicies, id))
}

// CreatePolicy creates a policy; rate tables are managed separately, so they are not sent.
func (s *Service) CreatePolicy(ctx context.Context, policy *Policy) *client.Envelope[*Policy] {
	payload := *policy
	payload.ID, payload.CreatedAt, payload.GSVRates, payload.SSVConfigs = 0, "", nil, nil
	return send[Policy](ctx, s, http.MethodPost, pathPolicies, &payload)
}

func (s *Service) UpdatePolicy(ctx context.Context, id int, fields Record) *client.Envelope[*Policy] {
	return send[Policy](ctx, s, http.MethodPatch, itemPath(pathPolicies, id), fields)
}

func (s *Service) DeletePolicy(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathPolicies, id))
}

// GSVRates lists the GSV bands of a policy
func (s *Service) GSVRates(ctx context.Context, policyID int) *client.Envelope[[]GSVRate] {
	return list[GSVRate](ctx, s, filterPath(pathGSVRates, "policy", policyID))
}

func (s *Service) CreateGSVRate(ctx context.Context, policyID int, rate *GSVRateInput) *client.Envelope[*GSVRate] {
	return send[GSVRate](ctx, s, http.MethodPost, pathGSVRates, &gsvRateCreate{GSVRateInput: *rate, Policy: policyID})
}

func (s *Service) UpdateGSVRate(ctx context.Context, id int, rate *GSVRateInput) *client.Envelope[*GSVRate] {
	return send[GSVRate](ctx, s, http.MethodPatch, itemPath(pathGSVRates, id), rate)
}

func (s *Service) DeleteGSVRate(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathGSVRates, id))
}

// SSVConfigs lists the SSV bands of a policy
func (s *Service) SSVConfigs(ctx context.Context, policyID int) *client.Envelope[[]SSVConfig] {
	return list[SSVConfig](ctx, s, filterPath(pathSSVConfigs, "policy", policyID))
}

func (s *Service) CreateSSVConfig(ctx context.Context, policyID int, config *SSVConfigInput) *client.Envelope[*SSVConfig] {
	return send[SSVConfig](ctx, s, http.MethodPost, pathSSVConfigs, &ssvConfigCreate{SSVConfigInput: *config, Policy: policyID})
}

func (s *Service) UpdateSSVConfig(ctx context.Context, id int, config *SSVConfigInput) *client.Envelope[*SSVConfig] {
	return send[SSVConfig](ctx, s, http.MethodPatch, itemPath(pathSSVConfigs, id), config)
}

func (s *Service) DeleteSSVConfig(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathSSVConfigs, id))
}
