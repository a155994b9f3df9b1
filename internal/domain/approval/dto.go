package approval

import (
	"encoding/json"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/pkg/jsonutil"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

type ApprovalResponse struct {
	ID           int64            `json:"id"`
	ExpenseID    int64            `json:"expenseId"`
	ApproverID   int64            `json:"approverId"`
	WorkflowStep int              `json:"workflowStep"`
	Status       Status           `json:"status"`
	Remarks      *string          `json:"remarks"`
	ApprovedAt   *time.Time       `json:"approvedAt"`
	CreatedAt    time.Time        `json:"createdAt"`
	Expense      *ExpenseSummary  `json:"expense,omitempty"`
	Approver     *ApproverSummary `json:"approver,omitempty"`
}

func ToResponse(a Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:           a.ID,
		ExpenseID:    a.ExpenseID,
		ApproverID:   a.ApproverID,
		WorkflowStep: a.WorkflowStep,
		Status:       a.Status,
		Remarks:      a.Remarks,
		ApprovedAt:   a.ApprovedAt,
		CreatedAt:    a.CreatedAt,
		Expense:      a.Expense,
		Approver:     a.Approver,
	}
}

func ToResponseList(approvals []Approval) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(approvals))
	for _, a := range approvals {
		out = append(out, ToResponse(a))
	}
	return out
}

// CreateApprovalRequest captures userId/user_id keys raw so their presence can
// be rejected: the approver identity must never be injected through the body.
type CreateApprovalRequest struct {
	ExpenseID    *int64  `json:"expenseId"`
	ApproverID   *int64  `json:"approverId"`
	WorkflowStep *int    `json:"workflowStep"`
	Status       *Status `json:"status,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`

	RawUserID      json.RawMessage `json:"userId,omitempty"`
	RawUserIDSnake json.RawMessage `json:"user_id,omitempty"`
}

func (r *CreateApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RawUserID != nil || r.RawUserIDSnake != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Code:    "USER_ID_NOT_ALLOWED",
			Message: "User ID cannot be provided in request body",
		})
	}
	if r.ExpenseID == nil || *r.ExpenseID == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "expenseId",
			Code:    "MISSING_EXPENSE_ID",
			Message: "Expense ID is required",
		})
	}
	if r.ApproverID == nil || *r.ApproverID == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "approverId",
			Code:    "MISSING_APPROVER_ID",
			Message: "Approver ID is required",
		})
	}
	if r.WorkflowStep == nil || *r.WorkflowStep <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "workflowStep",
			Code:    "INVALID_WORKFLOW_STEP",
			Message: "Workflow step is required and must be a positive integer",
		})
	}
	if r.Status != nil && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Code:    "INVALID_STATUS",
			Message: "Status must be PENDING, APPROVED, or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewApproval builds the entity to persist. approved_at is stamped exactly
// when the initial status is APPROVED.
func (r *CreateApprovalRequest) NewApproval(now time.Time) Approval {
	status := StatusPending
	if r.Status != nil {
		status = *r.Status
	}
	a := Approval{
		ExpenseID:    *r.ExpenseID,
		ApproverID:   *r.ApproverID,
		WorkflowStep: *r.WorkflowStep,
		Status:       status,
		Remarks:      r.Remarks,
	}
	if status == StatusApproved {
		a.ApprovedAt = &now
	}
	return a
}

// UpdateApprovalRequest: Remarks decodes through jsonutil.Nullable so an
// explicit `"remarks": null` clears the column.
type UpdateApprovalRequest struct {
	Status       *Status                   `json:"status,omitempty"`
	Remarks      jsonutil.Nullable[string] `json:"remarks"`
	WorkflowStep *int                      `json:"workflowStep,omitempty"`

	RawUserID      json.RawMessage `json:"userId,omitempty"`
	RawUserIDSnake json.RawMessage `json:"user_id,omitempty"`
}

func (r *UpdateApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RawUserID != nil || r.RawUserIDSnake != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Code:    "USER_ID_NOT_ALLOWED",
			Message: "User ID cannot be provided in request body",
		})
	}
	if r.Status != nil && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Code:    "INVALID_STATUS",
			Message: "Status must be PENDING, APPROVED, or REJECTED",
		})
	}
	if r.WorkflowStep != nil && *r.WorkflowStep <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "workflowStep",
			Code:    "INVALID_WORKFLOW_STEP",
			Message: "Workflow step must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	ExpenseID    *int64
	ApproverID   *int64
	Status       string
	WorkflowStep *int
	Sort         string
	Order        string
	Limit        int
	Offset       int
}

type DeleteApprovalResponse struct {
	Message         string           `json:"message"`
	DeletedApproval ApprovalResponse `json:"deletedApproval"`
}
