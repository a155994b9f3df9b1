package approval

import "context"

type ApprovalService interface {
	GetByID(ctx context.Context, id int64) (ApprovalResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ApprovalResponse, error)
	Create(ctx context.Context, req CreateApprovalRequest) (ApprovalResponse, error)
	Update(ctx context.Context, id int64, req UpdateApprovalRequest) (ApprovalResponse, error)
	Delete(ctx context.Context, id int64) (ApprovalResponse, error)
}
