package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/unigate/internal/common"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) scope(ctx context.Context) (access.Scope, error) {
	scope, ok := access.ScopeFrom(ctx)
	if !ok {
		return access.Scope{}, kindError(services.KindMissingToken)
	}
	return scope, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	password := req.GetPassword()
	defer common.WipeByteArray(password)

	res, err := s.auth.Login(ctx, req.GetTenantId(), req.GetUsername(), password)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{
		Token:     res.Token.Value,
		ExpiresAt: timestamppb.New(res.Token.ExpiresAt),
		AccountId: res.Scope.AccountID,
		TenantId:  res.Scope.TenantID,
		Role:      string(res.Scope.Role),
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	claims, ok := auth.ClaimsFrom(ctx)
	if !ok {
		return nil, kindError(services.KindMissingToken)
	}
	if err := s.auth.Logout(ctx, claims); err != nil {
		return nil, toStatus(err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.WhoAmIResponse{AccountId: scope.AccountID, TenantId: scope.TenantID, Role: string(scope.Role)}, nil
}

// provisionResponse reports a persisted but undelivered account as a
// successful call with a pending status.
func provisionResponse(res *services.ProvisionResult, err error) (*pb.ProvisionAccountResponse, error) {
	if err != nil && !(res != nil && errors.Is(err, common.ErrCredentialDeliveryFailed)) {
		return nil, toStatus(err)
	}
	out := &pb.ProvisionAccountResponse{
		Status:  string(res.Status),
		Account: accountToProto(res.Account),
	}
	if res.Status == services.StatusPendingDelivery {
		out.Error = services.KindDeliveryFailed
	}
	return out, nil
}

func (s *GRPCServer) ProvisionAccount(ctx context.Context, req *pb.ProvisionAccountRequest) (*pb.ProvisionAccountResponse, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.provisioning.Provision(ctx, scope, services.ProvisionRequest{
		TenantID:       req.GetTenantId(),
		Role:           models.Role(req.GetRole()),
		DisplayName:    req.GetDisplayName(),
		ContactAddress: req.GetContactAddress(),
	})
	return provisionResponse(res, err)
}

func (s *GRPCServer) ListPendingDelivery(ctx context.Context, req *pb.ListPendingDeliveryRequest) (*pb.ListPendingDeliveryResponse, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}

	accts, err := s.provisioning.ListPending(ctx, scope, req.GetTenantId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListPendingDeliveryResponse{Accounts: accountsToProto(accts)}, nil
}

func (s *GRPCServer) ReissueCredentials(ctx context.Context, req *pb.ReissueCredentialsRequest) (*pb.ProvisionAccountResponse, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.provisioning.Reissue(ctx, scope, req.GetTenantId(), req.GetAccountId())
	return provisionResponse(res, err)
}

func (s *GRPCServer) CreateTenant(ctx context.Context, req *pb.CreateTenantRequest) (*pb.CreateTenantResponse, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.tenants.Create(ctx, scope, models.Tenant{
		Code:           req.GetCode(),
		Name:           req.GetName(),
		MaxStudents:    int(req.GetMaxStudents()),
		MaxSupervisors: int(req.GetMaxSupervisors()),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateTenantResponse{Tenant: tenantToProto(t)}, nil
}

func (s *GRPCServer) ListTenants(ctx context.Context, _ *pb.ListTenantsRequest) (*pb.ListTenantsResponse, error) {
	scope, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}

	ts, err := s.tenants.List(ctx, scope)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListTenantsResponse{Tenants: tenantsToProto(ts)}, nil
}
