package expense

import "context"

type ExpenseRepository interface {
	// GetByID joins the owning user's name and email.
	GetByID(ctx context.Context, id int64) (Expense, error)
	List(ctx context.Context, filter ListFilter) ([]Expense, error)
	Create(ctx context.Context, newExpense Expense) (Expense, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (Expense, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) (Expense, error)
}
