package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenseflow/expense-backend-go/internal/domain/currency"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type ExpenseResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ExpenseDate string          `json:"expenseDate"`
	PaidBy      PaidBy          `json:"paidBy"`
	Status      Status          `json:"status"`
	SubmittedAt time.Time       `json:"submittedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	UserName    *string         `json:"userName,omitempty"`
	UserEmail   *string         `json:"userEmail,omitempty"`
}

func ToResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Category:    e.Category,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.Format(dateLayout),
		PaidBy:      e.PaidBy,
		Status:      e.Status,
		SubmittedAt: e.SubmittedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		UserName:    e.UserName,
		UserEmail:   e.UserEmail,
	}
}

func ToResponseList(expenses []Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToResponse(e))
	}
	return out
}

// CreateExpenseRequest uses pointers for required fields so an absent field
// (MISSING_*) is distinguishable from an invalid one (INVALID_*). Any status
// supplied by the client is ignored: new expenses are always PENDING.
type CreateExpenseRequest struct {
	UserID      *int64           `json:"userId"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	ExpenseDate *string          `json:"expenseDate"`
	PaidBy      *PaidBy          `json:"paidBy,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID == nil || *r.UserID == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Code:    "MISSING_USER_ID",
			Message: "User ID is required",
		})
	}
	if r.Amount == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Code:    "MISSING_AMOUNT",
			Message: "Amount is required",
		})
	} else if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Code:    "INVALID_AMOUNT",
			Message: "Amount must be a positive number",
		})
	}
	if r.Currency == nil || *r.Currency == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Code:    "MISSING_CURRENCY",
			Message: "Currency is required",
		})
	} else if !currency.IsValid(*r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Code:    "INVALID_CURRENCY",
			Message: "Invalid currency code",
		})
	}
	if r.Category == nil || *r.Category == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Code:    "MISSING_CATEGORY",
			Message: "Category is required",
		})
	} else if !validator.IsInSlice(*r.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Code:    "INVALID_CATEGORY",
			Message: "Invalid category",
		})
	}
	if r.Description == nil || *r.Description == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Code:    "MISSING_DESCRIPTION",
			Message: "Description is required",
		})
	} else if len(strings.TrimSpace(*r.Description)) < 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Code:    "DESCRIPTION_TOO_SHORT",
			Message: "Description must be at least 5 characters long",
		})
	}
	if r.ExpenseDate == nil || *r.ExpenseDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "expenseDate",
			Code:    "MISSING_EXPENSE_DATE",
			Message: "Expense date is required",
		})
	} else if _, ok := validator.IsValidDate(*r.ExpenseDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "expenseDate",
			Code:    "INVALID_EXPENSE_DATE",
			Message: "Invalid expense date format",
		})
	}
	if r.PaidBy != nil && !r.PaidBy.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "paidBy",
			Code:    "INVALID_PAID_BY",
			Message: "Invalid paid by value",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewExpense builds the entity to persist. Status is forced to PENDING here
// regardless of request input.
func (r *CreateExpenseRequest) NewExpense(now time.Time) Expense {
	paidBy := PaidByPersonal
	if r.PaidBy != nil {
		paidBy = *r.PaidBy
	}
	expenseDate, _ := validator.IsValidDate(*r.ExpenseDate)
	return Expense{
		UserID:      *r.UserID,
		Amount:      *r.Amount,
		Currency:    currency.Normalize(*r.Currency),
		Category:    *r.Category,
		Description: strings.TrimSpace(*r.Description),
		ExpenseDate: expenseDate,
		PaidBy:      paidBy,
		Status:      StatusPending,
		SubmittedAt: now,
	}
}

type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	ExpenseDate *string          `json:"expenseDate,omitempty"`
	PaidBy      *PaidBy          `json:"paidBy,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Code:    "INVALID_AMOUNT",
			Message: "Amount must be a positive number",
		})
	}
	if r.Currency != nil && !currency.IsValid(*r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Code:    "INVALID_CURRENCY",
			Message: "Invalid currency code",
		})
	}
	if r.Category != nil && !validator.IsInSlice(*r.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Code:    "INVALID_CATEGORY",
			Message: "Invalid category",
		})
	}
	if r.Description != nil && len(strings.TrimSpace(*r.Description)) < 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Code:    "DESCRIPTION_TOO_SHORT",
			Message: "Description must be at least 5 characters long",
		})
	}
	if r.ExpenseDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpenseDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expenseDate",
				Code:    "INVALID_EXPENSE_DATE",
				Message: "Invalid expense date format",
			})
		}
	}
	if r.PaidBy != nil && !r.PaidBy.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "paidBy",
			Code:    "INVALID_PAID_BY",
			Message: "Invalid paid by value",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Search   string
	UserID   *int64
	Status   string
	Category string
	Currency string
	DateFrom *time.Time
	DateTo   *time.Time
	Sort     string
	Order    string
	Limit    int
	Offset   int
}

type DeleteExpenseResponse struct {
	Message string          `json:"message"`
	Deleted ExpenseResponse `json:"deleted"`
}
