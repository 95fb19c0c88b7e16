package resource

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/viant/policyadmin/client"
	"github.com/viant/policyadmin/internal/conv"
)

const pathDashboard = "/home/"

const (
	statusActive  = "Active"
	statusPending = "Pending"
)

// Dashboard returns portfolio statistics. A payload without totals is aggregated from its collections.
func (s *Service) Dashboard(ctx context.Context) *client.Envelope[*DashboardStats] {
	result := client.Send[json.RawMessage](ctx, s.client, client.NewRequest(http.MethodGet, pathDashboard))
	if !result.Success {
		return client.Reshape[json.RawMessage, *DashboardStats](result, nil)
	}
	stats, err := dashboardStats(result.Data)
	if err != nil {
		return &client.Envelope[*DashboardStats]{Status: result.Status, Message: "Error: " + err.Error()}
	}
	return client.Reshape(result, stats)
}

func dashboardStats(data json.RawMessage) (*DashboardStats, error) {
	var payload interface{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	}
	collections, isObject := payload.(map[string]interface{})
	if isObject && conv.AsFloat(collections["totalPolicies"]) != 0 {
		ret := &DashboardStats{}
		if err := json.Unmarshal(data, ret); err != nil {
			return nil, err
		}
		return ret, nil
	}
	ret := &DashboardStats{}
	if !isObject {
		return ret, nil
	}
	holders := items(collections, "policy_holders")
	payments := items(collections, "premium_payments")
	loans := items(collections, "loans")
	ret.TotalPolicies = len(holders)
	ret.ActivePolicies = count(holders, "status", statusActive)
	ret.TotalCustomers = len(items(collections, "customers"))
	ret.TotalAgents = len(items(collections, "sales_agents"))
	ret.TotalPremium = sum(payments, "total_paid")
	ret.PendingClaims = count(items(collections, "claim_requests"), "status", statusPending)
	ret.DuePayments = sum(payments, "remaining_premium")
	ret.ActiveLoans = count(loans, "loan_status", statusActive)
	ret.TotalLoanAmount = sum(loans, "loan_amount")
	ret.TotalRepayments = sum(items(collections, "loan_repayments"), "amount")
	ret.PendingLoans = count(loans, "loan_status", statusPending)
	return ret, nil
}

func items(collections map[string]interface{}, name string) []Record {
	values, _ := collections[name].([]interface{})
	var ret []Record
	for _, value := range values {
		if item, ok := value.(map[string]interface{}); ok {
			ret = append(ret, item)
			continue
		}
		ret = append(ret, Record{})
	}
	return ret
}

func count(records []Record, field, value string) int {
	ret := 0
	for _, record := range records {
		if actual, _ := record[field].(string); actual == value {
			ret++
		}
	}
	return ret
}

func sum(records []Record, field string) float64 {
	ret := 0.0
	for _, record := range records {
		ret += conv.AsFloat(record[field])
	}
	return ret
}
