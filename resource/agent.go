package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/viant/policyadmin/client"
)

const (
	pathAgents       = "/sales-agents/"
	pathAgentReports = "/agent-reports/"
)

// Agents lists sales agents; a non list payload is coerced into a list.
func (s *Service) Agents(ctx context.Context) *client.Envelope[[]SalesAgent] {
	return s.agents(ctx, pathAgents)
}

// AgentsByBranch lists the sales agents of one branch
func (s *Service) AgentsByBranch(ctx context.Context, branchID int) *client.Envelope[[]SalesAgent] {
	return s.agents(ctx, filterPath(pathAgents, "branch", branchID))
}

func (s *Service) agents(ctx context.Context, path string) *client.Envelope[[]SalesAgent] {
	result := client.Send[json.RawMessage](ctx, s.client, client.NewRequest(http.MethodGet, path))
	if !result.Success {
		return client.Reshape[json.RawMessage, []SalesAgent](result, nil)
	}
	agents, err := decodeList[SalesAgent](result.Data)
	if err != nil {
		return &client.Envelope[[]SalesAgent]{Status: result.Status, Message: "Error: " + err.Error()}
	}
	return client.Reshape(result, agents)
}

func (s *Service) Agent(ctx context.Context, id int) *client.Envelope[*SalesAgent] {
	return get[SalesAgent](ctx, s, itemPath(pathAgents, id))
}

func (s *Service) CreateAgent(ctx context.Context, agent *SalesAgent) *client.Envelope[*SalesAgent] {
	return send[SalesAgent](ctx, s, http.MethodPost, pathAgents, agent)
}

// UpdateAgent patches the agent with the supplied fields
func (s *Service) UpdateAgent(ctx context.Context, id int, fields Record) *client.Envelope[*SalesAgent] {
	return send[SalesAgent](ctx, s, http.MethodPatch, itemPath(pathAgents, id), fields)
}

func (s *Service) DeleteAgent(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathAgents, id))
}

func (s *Service) AgentReports(ctx context.Context) *client.Envelope[[]AgentReport] {
	return list[AgentReport](ctx, s, pathAgentReports)
}

func (s *Service) AgentReportsByBranch(ctx context.Context, branchID int) *client.Envelope[[]AgentReport] {
	return list[AgentReport](ctx, s, filterPath(pathAgentReports, "branch", branchID))
}

// decodeList decodes a list payload, reshaping other payloads first (see coerceList).
func decodeList[T any](data json.RawMessage) ([]T, error) {
	data, err := coerceList(data)
	if err != nil {
		return nil, err
	}
	var result = make([]T, 0)
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// coerceList reshapes a payload into a JSON array: an object with an "id" key becomes a one item
// list, otherwise the object's first array valued field in document order is used; anything else is empty.
func coerceList(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return json.RawMessage("[]"), nil
	}
	switch trimmed[0] {
	case '[':
		return trimmed, nil
	case '{':
	default:
		return json.RawMessage("[]"), nil
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	var firstArray json.RawMessage
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		var value json.RawMessage
		if err = decoder.Decode(&value); err != nil {
			return nil, err
		}
		if token == "id" {
			return json.RawMessage("[" + string(trimmed) + "]"), nil
		}
		if firstArray == nil && len(value) > 0 && value[0] == '[' {
			firstArray = value
		}
	}
	if firstArray != nil {
		return firstArray, nil
	}
	return json.RawMessage("[]"), nil
}
