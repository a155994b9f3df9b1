package approval

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenseflow/expense-backend-go/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decided reports whether the status is a final decision.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

type Approval struct {
	ID           int64
	ExpenseID    int64
	ApproverID   int64
	WorkflowStep int
	Status       Status
	Remarks      *string
	ApprovedAt   *time.Time
	CreatedAt    time.Time

	// Populated by joins on reads.
	Expense  *ExpenseSummary
	Approver *ApproverSummary
}

type ExpenseSummary struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ExpenseDate string          `json:"expenseDate"`
	Status      string          `json:"status"`
}

type ApproverSummary struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}
