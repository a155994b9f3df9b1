package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
	StatusInProgress Status = "IN_PROGRESS"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusInProgress:
		return true
	}
	return false
}

type PaidBy string

const (
	PaidByPersonal    PaidBy = "PERSONAL"
	PaidByCompanyCard PaidBy = "COMPANY_CARD"
)

func (p PaidBy) IsValid() bool {
	return p == PaidByPersonal || p == PaidByCompanyCard
}

// Categories is the fixed set of business expense categories.
var Categories = []string{
	"Travel",
	"Meals & Entertainment",
	"Office Supplies",
	"Software & Tools",
	"Client Entertainment",
	"Utilities",
	"Marketing",
	"Training & Development",
}

type Expense struct {
	ID          int64
	UserID      int64
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Description string
	ExpenseDate time.Time
	PaidBy      PaidBy
	Status      Status
	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by the user join on reads, nil otherwise.
	UserName  *string
	UserEmail *string
}
