package approval

import (
	"context"
	"errors"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/domain/approval"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/domain/user"
	"github.com/expenseflow/expense-backend-go/internal/observability/metrics"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
	"github.com/expenseflow/expense-backend-go/internal/repository/postgresql"
)

type approvalServiceImpl struct {
	db           *database.DB
	approvalRepo approval.ApprovalRepository
	expenseRepo  expense.ExpenseRepository
	userRepo     user.UserRepository
}

func NewApprovalService(db *database.DB, approvalRepo approval.ApprovalRepository, expenseRepo expense.ExpenseRepository, userRepo user.UserRepository) approval.ApprovalService {
	return &approvalServiceImpl{db: db, approvalRepo: approvalRepo, expenseRepo: expenseRepo, userRepo: userRepo}
}

// GetByID implements approval.ApprovalService.
func (s *approvalServiceImpl) GetByID(ctx context.Context, id int64) (approval.ApprovalResponse, error) {
	found, err := s.approvalRepo.GetByID(ctx, id)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}
	return approval.ToResponse(found), nil
}

// List implements approval.ApprovalService.
func (s *approvalServiceImpl) List(ctx context.Context, filter approval.ListFilter) ([]approval.ApprovalResponse, error) {
	approvals, err := s.approvalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return approval.ToResponseList(approvals), nil
}

// syncExpenseStatus mirrors a decided approval onto the parent expense in the
// same transaction, so expense.status and approval.status never drift.
func (s *approvalServiceImpl) syncExpenseStatus(ctx context.Context, expenseID int64, status approval.Status) error {
	switch status {
	case approval.StatusApproved:
		return s.expenseRepo.UpdateStatus(ctx, expenseID, expense.StatusApproved)
	case approval.StatusRejected:
		return s.expenseRepo.UpdateStatus(ctx, expenseID, expense.StatusRejected)
	}
	return nil
}

// Create implements approval.ApprovalService. The reference checks, the
// self-approval block, the insert and any expense-status sync run in one
// transaction.
func (s *approvalServiceImpl) Create(ctx context.Context, req approval.CreateApprovalRequest) (approval.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ApprovalResponse{}, err
	}

	newApproval := req.NewApproval(time.Now())
	var created approval.Approval
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		owned, err := s.expenseRepo.GetByID(txCtx, newApproval.ExpenseID)
		if err != nil {
			if errors.Is(err, expense.ErrExpenseNotFound) {
				return approval.ErrExpenseNotFound
			}
			return err
		}

		exists, err := s.userRepo.ExistsByID(txCtx, newApproval.ApproverID)
		if err != nil {
			return err
		}
		if !exists {
			return approval.ErrApproverNotFound
		}

		if owned.UserID == newApproval.ApproverID {
			return approval.ErrSelfApproval
		}

		created, err = s.approvalRepo.Create(txCtx, newApproval)
		if err != nil {
			return err
		}
		return s.syncExpenseStatus(txCtx, created.ExpenseID, created.Status)
	})
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	if created.Status.Decided() {
		metrics.ObserveApprovalDecision(string(created.Status))
	}
	return approval.ToResponse(created), nil
}

// Update implements approval.ApprovalService. Decisions are one-shot: a
// status change is accepted only while the approval is still PENDING. The
// existence and transition gates run before field validation, so a decided
// approval answers INVALID_STATUS_TRANSITION even for a malformed body.
func (s *approvalServiceImpl) Update(ctx context.Context, id int64, req approval.UpdateApprovalRequest) (approval.ApprovalResponse, error) {
	var updated approval.Approval
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.approvalRepo.GetBare(txCtx, id)
		if err != nil {
			return err
		}
		if req.Status != nil && existing.Status != approval.StatusPending {
			return approval.ErrInvalidStatusTransition
		}
		if err := req.Validate(); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Status != nil {
			updates["status"] = *req.Status
			if *req.Status == approval.StatusApproved {
				updates["approved_at"] = time.Now()
			}
		}
		if req.Remarks.Set {
			updates["remarks"] = req.Remarks.Value
		}
		if req.WorkflowStep != nil {
			updates["workflow_step"] = *req.WorkflowStep
		}

		updated, err = s.approvalRepo.Update(txCtx, id, updates)
		if err != nil {
			return err
		}
		if req.Status != nil {
			return s.syncExpenseStatus(txCtx, updated.ExpenseID, updated.Status)
		}
		return nil
	})
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	if req.Status != nil && updated.Status.Decided() {
		metrics.ObserveApprovalDecision(string(updated.Status))
	}
	return approval.ToResponse(updated), nil
}

// Delete implements approval.ApprovalService.
func (s *approvalServiceImpl) Delete(ctx context.Context, id int64) (approval.ApprovalResponse, error) {
	deleted, err := s.approvalRepo.Delete(ctx, id)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}
	return approval.ToResponse(deleted), nil
}
