package resource

import (
	"context"
	"net/http"

	"github.com/viant/policyadmin/client"
)

const (
	pathUsers             = "/users/"
	pathAgentApplications = "/agent-applications/"
	pathMortalityRates    = "/mortality-rates/"
)

type (
	// MortalityRateInput is the editable part of a mortality table row
	MortalityRateInput struct {
		AgeGroupStart int     `json:"age_group_start"`
		AgeGroupEnd   int     `json:"age_group_end"`
		Rate          float64 `json:"rate"`
	}

	applicationStatusUpdate struct {
		Status          ApplicationStatus `json:"status"`
		RejectionReason string            `json:"rejection_reason,omitempty"`
	}
)

func (s *Service) Users(ctx context.Context) *client.Envelope[[]User] {
	return list[User](ctx, s, pathUsers)
}

// CreateUser creates a user, the password is sent when set
func (s *Service) CreateUser(ctx context.Context, user *User) *client.Envelope[*User] {
	return send[User](ctx, s, http.MethodPost, pathUsers, user)
}

func (s *Service) UpdateUser(ctx context.Context, id int, fields Record) *client.Envelope[*User] {
	return send[User](ctx, s, http.MethodPatch, itemPath(pathUsers, id), fields)
}

func (s *Service) DeleteUser(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathUsers, id))
}

func (s *Service) AgentApplications(ctx context.Context) *client.Envelope[[]AgentApplication] {
	return list[AgentApplication](ctx, s, pathAgentApplications)
}

func (s *Service) AgentApplicationsByBranch(ctx context.Context, branchID int) *client.Envelope[[]AgentApplication] {
	return list[AgentApplication](ctx, s, filterPath(pathAgentApplications, "branch", branchID))
}

// CreateAgentApplication submits an application without documents
func (s *Service) CreateAgentApplication(ctx context.Context, application *AgentApplication) *client.Envelope[*AgentApplication] {
	payload := *application
	payload.ID, payload.Status, payload.CreatedAt, payload.RejectionReason, payload.BranchName = 0, "", "", "", ""
	request := client.JSON(http.MethodPost, pathAgentApplications, &payload).
		WithHeader(client.HeaderContentType, client.ContentTypeJSON)
	return client.Send[*AgentApplication](ctx, s.client, request)
}

// SubmitAgentApplication submits an application with its documents (resume, citizenship, license, photo)
func (s *Service) SubmitAgentApplication(ctx context.Context, form *client.Form) *client.Envelope[*AgentApplication] {
	return client.Send[*AgentApplication](ctx, s.client, client.Multipart(http.MethodPost, pathAgentApplications, form))
}

// UpdateAgentApplicationStatus records a review decision, the reason is only sent with a rejection.
func (s *Service) UpdateAgentApplicationStatus(ctx context.Context, id int, status ApplicationStatus, rejectionReason string) *client.Envelope[*AgentApplication] {
	payload := &applicationStatusUpdate{Status: status}
	if status == ApplicationRejected {
		payload.RejectionReason = rejectionReason
	}
	return send[AgentApplication](ctx, s, http.MethodPatch, itemPath(pathAgentApplications, id)+"status/", payload)
}

func (s *Service) MortalityRates(ctx context.Context) *client.Envelope[[]MortalityRate] {
	return list[MortalityRate](ctx, s, pathMortalityRates)
}

func (s *Service) CreateMortalityRate(ctx context.Context, rate *MortalityRateInput) *client.Envelope[*MortalityRate] {
	return send[MortalityRate](ctx, s, http.MethodPost, pathMortalityRates, rate)
}

func (s *Service) UpdateMortalityRate(ctx context.Context, id int, rate *MortalityRateInput) *client.Envelope[*MortalityRate] {
	return send[MortalityRate](ctx, s, http.MethodPatch, itemPath(pathMortalityRates, id), rate)
}

func (s *Service) DeleteMortalityRate(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathMortalityRates, id))
}
