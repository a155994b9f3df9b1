package expense

import "context"

type ExpenseService interface {
	GetByID(ctx context.Context, id int64) (ExpenseResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ExpenseResponse, error)
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	Update(ctx context.Context, id int64, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id int64) (ExpenseResponse, error)
}
