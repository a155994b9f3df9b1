package approval

import "context"

type ApprovalRepository interface {
	// GetByID joins the expense and approver summaries.
	GetByID(ctx context.Context, id int64) (Approval, error)
	GetBare(ctx context.Context, id int64) (Approval, error)
	List(ctx context.Context, filter ListFilter) ([]Approval, error)
	Create(ctx context.Context, newApproval Approval) (Approval, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (Approval, error)
	Delete(ctx context.Context, id int64) (Approval, error)
}
