package resource

import (
	"context"
	"net/http"

	"github.com/viant/policyadmin/client"
)

const (
	pathBranches      = "/branches/"
	pathPolicyHolders = "/policy-holders/"
	pathCompanies     = "/companies/"
	pathCustomers     = "/customers/"
)

func (s *Service) Branches(ctx context.Context) *client.Envelope[[]Branch] {
	return list[Branch](ctx, s, pathBranches)
}

func (s *Service) Branch(ctx context.Context, id int) *client.Envelope[*Branch] {
	return get[Branch](ctx, s, itemPath(pathBranches, id))
}

func (s *Service) CreateBranch(ctx context.Context, branch *Branch) *client.Envelope[*Branch] {
	return send[Branch](ctx, s, http.MethodPost, pathBranches, branch)
}

// UpdateBranch replaces the branch identified by branch.ID
func (s *Service) UpdateBranch(ctx context.Context, branch *Branch) *client.Envelope[*Branch] {
	return send[Branch](ctx, s, http.MethodPut, itemPath(pathBranches, branch.ID), branch)
}

func (s *Service) DeleteBranch(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathBranches, id))
}

// PolicyHolders lists policy holders, a non zero branchID narrows the list to one branch.
func (s *Service) PolicyHolders(ctx context.Context, branchID int) *client.Envelope[[]PolicyHolder] {
	if branchID != 0 {
		return s.PolicyHoldersByBranch(ctx, branchID)
	}
	return list[PolicyHolder](ctx, s, pathPolicyHolders)
}

func (s *Service) PolicyHolder(ctx context.Context, id int) *client.Envelope[*PolicyHolder] {
	return get[PolicyHolder](ctx, s, itemPath(pathPolicyHolders, id))
}

func (s *Service) PolicyHoldersByBranch(ctx context.Context, branchID int) *client.Envelope[[]PolicyHolder] {
	return list[PolicyHolder](ctx, s, filterPath(pathPolicyHolders, "branch", branchID))
}

func (s *Service) Companies(ctx context.Context) *client.Envelope[[]Company] {
	return list[Company](ctx, s, pathCompanies)
}

func (s *Service) Customers(ctx context.Context) *client.Envelope[[]Customer] {
	return list[Customer](ctx, s, pathCustomers)
}

func (s *Service) Customer(ctx context.Context, id int) *client.Envelope[*Customer] {
	return get[Customer](ctx, s, itemPath(pathCustomers, id))
}
