package resource

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/policyadmin/client"
	"github.com/viant/policyadmin/client/auth/store"
)

type recorder struct {
	mux     sync.Mutex
	methods []string
	uris    []string
	bodies  []string
	types   []string
}

func (r *recorder) record(request *http.Request) {
	body, _ := io.ReadAll(request.Body)
	r.mux.Lock()
	defer r.mux.Unlock()
	r.methods = append(r.methods, request.Method)
	r.uris = append(r.uris, request.URL.RequestURI())
	r.bodies = append(r.bodies, string(body))
	r.types = append(r.types, request.Header.Get(client.HeaderContentType))
}

func (r *recorder) requests() []string {
	r.mux.Lock()
	defer r.mux.Unlock()
	return append([]string{}, r.uris...)
}

func newService(t *testing.T, handler http.HandlerFunc) (*Service, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	aClient := client.New(
		client.WithBaseURL(server.URL+"/api"),
		client.WithHTTPClient(server.Client()),
		client.WithStore(store.NewMemoryStore()),
	)
	return New(aClient), rec
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestService_Routes(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		description string
		call        func(s *Service) bool
		method      string
		uri         string
		body        string
	}{
		{description: "branches", call: func(s *Service) bool { return s.Branches(ctx).Success }, method: http.MethodGet, uri: "/api/branches/"},
		{description: "update branch", call: func(s *Service) bool {
			return s.UpdateBranch(ctx, &Branch{ID: 2, Name: "North"}).Success
		}, method: http.MethodPut, uri: "/api/branches/2/", body: `{"id":2,"name":"North"}`},
		{description: "policy holders all", call: func(s *Service) bool { return s.PolicyHolders(ctx, 0).Success }, method: http.MethodGet, uri: "/api/policy-holders/"},
		{description: "policy holders by branch", call: func(s *Service) bool { return s.PolicyHolders(ctx, 4).Success }, method: http.MethodGet, uri: "/api/policy-holders/?branch=4"},
		{description: "update policy", call: func(s *Service) bool {
			return s.UpdatePolicy(ctx, 7, Record{"name": "Endowment"}).Success
		}, method: http.MethodPatch, uri: "/api/insurance-policies/7/", body: `{"name":"Endowment"}`},
		{description: "gsv rates", call: func(s *Service) bool { return s.GSVRates(ctx, 7).Success }, method: http.MethodGet, uri: "/api/gsv-rates/?policy=7"},
		{description: "create gsv rate", call: func(s *Service) bool {
			return s.CreateGSVRate(ctx, 7, &GSVRateInput{MinYear: 1, MaxYear: 3, Rate: "30.00"}).Success
		}, method: http.MethodPost, uri: "/api/gsv-rates/", body: `{"min_year":1,"max_year":3,"rate":"30.00","policy":7}`},
		{description: "create ssv config", call: func(s *Service) bool {
			return s.CreateSSVConfig(ctx, 7, &SSVConfigInput{MinYear: 4, MaxYear: 10, SSVFactor: "50", EligibilityYears: 3}).Success
		}, method: http.MethodPost, uri: "/api/ssv-configs/", body: `{"min_year":4,"max_year":10,"ssv_factor":"50","eligibility_years":3,"custom_condition":"","policy":7}`},
		{description: "update premium payment", call: func(s *Service) bool {
			return s.UpdatePremiumPayment(ctx, 3, Record{"amount": "10"}).Success
		}, method: http.MethodPut, uri: "/api/premium-payments/3/", body: `{"amount":"10"}`},
		{description: "update loan", call: func(s *Service) bool {
			return s.UpdateLoan(ctx, 5, Record{"loan_status": "Active"}).Success
		}, method: http.MethodPatch, uri: "/api/loans/5/", body: `{"loan_status":"Active"}`},
		{description: "underwriting", call: func(s *Service) bool { return s.Underwriting(ctx).Success }, method: http.MethodGet, uri: "/api/underwriting/"},
		{description: "approve application", call: func(s *Service) bool {
			return s.UpdateAgentApplicationStatus(ctx, 9, ApplicationApproved, "ignored").Success
		}, method: http.MethodPatch, uri: "/api/agent-applications/9/status/", body: `{"status":"APPROVED"}`},
		{description: "reject application", call: func(s *Service) bool {
			return s.UpdateAgentApplicationStatus(ctx, 9, ApplicationRejected, "incomplete").Success
		}, method: http.MethodPatch, uri: "/api/agent-applications/9/status/", body: `{"status":"REJECTED","rejection_reason":"incomplete"}`},
		{description: "reject without reason", call: func(s *Service) bool {
			return s.UpdateAgentApplicationStatus(ctx, 9, ApplicationRejected, "").Success
		}, method: http.MethodPatch, uri: "/api/agent-applications/9/status/", body: `{"status":"REJECTED"}`},
		{description: "mortality rate", call: func(s *Service) bool {
			return s.UpdateMortalityRate(ctx, 1, &MortalityRateInput{AgeGroupStart: 18, AgeGroupEnd: 25, Rate: 1.5}).Success
		}, method: http.MethodPatch, uri: "/api/mortality-rates/1/", body: `{"age_group_start":18,"age_group_end":25,"rate":1.5}`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			service, rec := newService(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodGet {
					writeJSON(w, http.StatusOK, `[]`)
					return
				}
				writeJSON(w, http.StatusOK, `{"id":1}`)
			})
			assert.True(t, testCase.call(service))
			require.Len(t, rec.uris, 1)
			assert.Equal(t, testCase.method, rec.methods[0])
			assert.Equal(t, testCase.uri, rec.uris[0])
			if testCase.body != "" {
				assert.JSONEq(t, testCase.body, rec.bodies[0])
			}
		})
	}
}

func TestService_CreatePolicy(t *testing.T) {
	service, rec := newService(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":11,"name":"Term"}`)
	})
	policy := &Policy{ID: 3, Name: "Term", PolicyType: "Term", GSVRates: []GSVRate{{MinYear: 1}}}
	result := service.CreatePolicy(context.Background(), policy)
	require.True(t, result.Success)
	assert.Equal(t, 11, result.Data.ID)
	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rec.bodies[0]), &sent))
	assert.NotContains(t, sent, "id")
	assert.NotContains(t, sent, "gsv_rates")
	assert.Equal(t, 3, policy.ID)
}

func TestService_Delete(t *testing.T) {
	testCases := []struct {
		description string
		status      int
		expect      bool
	}{
		{description: "no content", status: http.StatusNoContent, expect: true},
		{description: "not found", status: http.StatusNotFound, expect: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			service, rec := newService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
			})
			result := service.DeleteBranch(context.Background(), 4)
			assert.Equal(t, http.MethodDelete, rec.methods[0])
			assert.Equal(t, testCase.expect, result.Data)
			assert.Equal(t, testCase.expect, result.Success)
			assert.Equal(t, testCase.status, result.Status)
		})
	}
}

func TestService_AgentApplication(t *testing.T) {
	service, rec := newService(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":2,"status":"PENDING"}`)
	})
	ctx := context.Background()

	result := service.CreateAgentApplication(ctx, &AgentApplication{ID: 5, FirstName: "Asha", Branch: 1, Status: "APPROVED"})
	require.True(t, result.Success)
	assert.Equal(t, "PENDING", result.Data.Status)
	assert.Equal(t, client.ContentTypeJSON, rec.types[0])
	assert.JSONEq(t, `{"first_name":"Asha","branch":1}`, rec.bodies[0])

	form := &client.Form{}
	form.AddField("first_name", "Asha")
	form.AddFile("resume", "resume.pdf", []byte("%PDF"))
	result = service.SubmitAgentApplication(ctx, form)
	require.True(t, result.Success)
	assert.Contains(t, rec.types[1], "multipart/form-data; boundary=")
	assert.Contains(t, rec.bodies[1], "resume.pdf")
}
