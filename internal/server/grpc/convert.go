package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/unigate/internal/proto"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// accountToProto never copies the verifier.
func accountToProto(a *models.Account) *pb.Account {
	if a == nil {
		return nil
	}
	return &pb.Account{
		Id:                a.ID,
		TenantId:          a.TenantID,
		Role:              string(a.Role),
		Username:          a.Username,
		DisplayName:       a.DisplayName,
		ContactAddress:    a.ContactAddress,
		DeliveryStatus:    string(a.DeliveryStatus),
		DeliveryAttempts:  int32(a.DeliveryAttempts),
		LastDeliveryError: a.LastDeliveryError,
		CreatedAt:         timestamp(a.CreatedAt),
	}
}

func accountsToProto(in []models.Account) []*pb.Account {
	out := make([]*pb.Account, 0, len(in))
	for i := range in {
		out = append(out, accountToProto(&in[i]))
	}
	return out
}

func tenantToProto(t *models.Tenant) *pb.Tenant {
	if t == nil {
		return nil
	}
	return &pb.Tenant{
		Code:           t.Code,
		Name:           t.Name,
		MaxStudents:    int32(t.MaxStudents),
		MaxSupervisors: int32(t.MaxSupervisors),
		CreatedAt:      timestamp(t.CreatedAt),
	}
}

func tenantsToProto(in []models.Tenant) []*pb.Tenant {
	out := make([]*pb.Tenant, 0, len(in))
	for i := range in {
		out = append(out, tenantToProto(&in[i]))
	}
	return out
}
