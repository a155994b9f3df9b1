package expense

import (
	"context"
	"strings"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/domain/currency"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/domain/user"
	"github.com/expenseflow/expense-backend-go/internal/observability/metrics"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
	"github.com/expenseflow/expense-backend-go/internal/repository/postgresql"
)

type expenseServiceImpl struct {
	db          *database.DB
	expenseRepo expense.ExpenseRepository
	userRepo    user.UserRepository
}

func NewExpenseService(db *database.DB, expenseRepo expense.ExpenseRepository, userRepo user.UserRepository) expense.ExpenseService {
	return &expenseServiceImpl{db: db, expenseRepo: expenseRepo, userRepo: userRepo}
}

// GetByID implements expense.ExpenseService.
func (s *expenseServiceImpl) GetByID(ctx context.Context, id int64) (expense.ExpenseResponse, error) {
	found, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return expense.ToResponse(found), nil
}

// List implements expense.ExpenseService.
func (s *expenseServiceImpl) List(ctx context.Context, filter expense.ListFilter) ([]expense.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return expense.ToResponseList(expenses), nil
}

// Create implements expense.ExpenseService. The owner-existence check and the
// insert run in one transaction. Status is forced to PENDING whatever the
// request carried.
func (s *expenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	newExpense := req.NewExpense(time.Now())
	var created expense.Expense
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		exists, err := s.userRepo.ExistsByID(txCtx, newExpense.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return expense.ErrUserNotFound
		}

		created, err = s.expenseRepo.Create(txCtx, newExpense)
		return err
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	metrics.ObserveExpenseSubmitted()
	return expense.ToResponse(created), nil
}

// Update implements expense.ExpenseService. Only PENDING expenses may change;
// the existence and status gates run before field validation, so a decided
// expense answers UPDATE_NOT_ALLOWED even for a malformed body.
func (s *expenseServiceImpl) Update(ctx context.Context, id int64, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	var updated expense.Expense
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.expenseRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing.Status != expense.StatusPending {
			return expense.ErrUpdateNotAllowed
		}
		if err := req.Validate(); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Amount != nil {
			updates["amount"] = *req.Amount
		}
		if req.Currency != nil {
			updates["currency"] = currency.Normalize(*req.Currency)
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.Description != nil {
			updates["description"] = strings.TrimSpace(*req.Description)
		}
		if req.ExpenseDate != nil {
			expenseDate, _ := validator.IsValidDate(*req.ExpenseDate)
			updates["expense_date"] = expenseDate
		}
		if req.PaidBy != nil {
			updates["paid_by"] = *req.PaidBy
		}

		updated, err = s.expenseRepo.Update(txCtx, id, updates)
		return err
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return expense.ToResponse(updated), nil
}

// Delete implements expense.ExpenseService. Only PENDING expenses may be
// removed; the row is echoed back to the caller.
func (s *expenseServiceImpl) Delete(ctx context.Context, id int64) (expense.ExpenseResponse, error) {
	var deleted expense.Expense
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.expenseRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing.Status != expense.StatusPending {
			return expense.ErrDeleteNotAllowed
		}

		deleted, err = s.expenseRepo.Delete(txCtx, id)
		return err
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return expense.ToResponse(deleted), nil
}
