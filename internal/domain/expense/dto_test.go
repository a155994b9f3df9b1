package expense

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs.First().Code
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }

func validCreateRequest() CreateExpenseRequest {
	return CreateExpenseRequest{
		UserID:      int64Ptr(4),
		Amount:      decPtr("125.50"),
		Currency:    strPtr("USD"),
		Category:    strPtr("Travel"),
		Description: strPtr("Business trip taxi fare"),
		ExpenseDate: strPtr("2024-01-15"),
	}
}

func TestCreateExpenseRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing user id", func(t *testing.T) {
		req := validCreateRequest()
		req.UserID = nil
		assert.Equal(t, "MISSING_USER_ID", firstCode(t, req.Validate()))
	})

	t.Run("missing amount", func(t *testing.T) {
		req := validCreateRequest()
		req.Amount = nil
		assert.Equal(t, "MISSING_AMOUNT", firstCode(t, req.Validate()))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		req := validCreateRequest()
		req.Amount = decPtr("0")
		assert.Equal(t, "INVALID_AMOUNT", firstCode(t, req.Validate()))

		req.Amount = decPtr("-10.00")
		assert.Equal(t, "INVALID_AMOUNT", firstCode(t, req.Validate()))
	})

	t.Run("missing vs invalid currency", func(t *testing.T) {
		req := validCreateRequest()
		req.Currency = nil
		assert.Equal(t, "MISSING_CURRENCY", firstCode(t, req.Validate()))

		req.Currency = strPtr("BTC")
		assert.Equal(t, "INVALID_CURRENCY", firstCode(t, req.Validate()))
	})

	t.Run("invalid category", func(t *testing.T) {
		req := validCreateRequest()
		req.Category = strPtr("Gambling")
		assert.Equal(t, "INVALID_CATEGORY", firstCode(t, req.Validate()))
	})

	t.Run("description too short", func(t *testing.T) {
		req := validCreateRequest()
		req.Description = strPtr("taxi")
		assert.Equal(t, "DESCRIPTION_TOO_SHORT", firstCode(t, req.Validate()))
	})

	t.Run("invalid expense date", func(t *testing.T) {
		req := validCreateRequest()
		req.ExpenseDate = strPtr("15-01-2024")
		assert.Equal(t, "INVALID_EXPENSE_DATE", firstCode(t, req.Validate()))
	})

	t.Run("invalid paid by", func(t *testing.T) {
		req := validCreateRequest()
		paidBy := PaidBy("CASH")
		req.PaidBy = &paidBy
		assert.Equal(t, "INVALID_PAID_BY", firstCode(t, req.Validate()))
	})
}

func TestCreateExpenseRequest_NewExpense(t *testing.T) {
	now := time.Now()

	t.Run("status is always PENDING", func(t *testing.T) {
		req := validCreateRequest()
		e := req.NewExpense(now)
		assert.Equal(t, StatusPending, e.Status)
		assert.Equal(t, now, e.SubmittedAt)
	})

	t.Run("normalizes currency and trims description", func(t *testing.T) {
		req := validCreateRequest()
		req.Currency = strPtr("usd")
		req.Description = strPtr("  Business trip taxi fare  ")
		e := req.NewExpense(now)
		assert.Equal(t, "USD", e.Currency)
		assert.Equal(t, "Business trip taxi fare", e.Description)
	})

	t.Run("paid by defaults to PERSONAL", func(t *testing.T) {
		req := validCreateRequest()
		assert.Equal(t, PaidByPersonal, req.NewExpense(now).PaidBy)

		card := PaidByCompanyCard
		req.PaidBy = &card
		assert.Equal(t, PaidByCompanyCard, req.NewExpense(now).PaidBy)
	})

	t.Run("parses expense date", func(t *testing.T) {
		req := validCreateRequest()
		e := req.NewExpense(now)
		assert.Equal(t, 2024, e.ExpenseDate.Year())
		assert.Equal(t, time.January, e.ExpenseDate.Month())
		assert.Equal(t, 15, e.ExpenseDate.Day())
	})
}

func TestUpdateExpenseRequest_Validate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdateExpenseRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid amount", func(t *testing.T) {
		req := UpdateExpenseRequest{Amount: decPtr("-1")}
		assert.Equal(t, "INVALID_AMOUNT", firstCode(t, req.Validate()))
	})

	t.Run("invalid currency", func(t *testing.T) {
		req := UpdateExpenseRequest{Currency: strPtr("XYZ")}
		assert.Equal(t, "INVALID_CURRENCY", firstCode(t, req.Validate()))
	})
}

func TestToResponse_DateFormat(t *testing.T) {
	e := Expense{
		ID:          1,
		UserID:      4,
		Amount:      decimal.RequireFromString("125.50"),
		Currency:    "USD",
		Category:    "Travel",
		Description: "Business trip taxi fare",
		ExpenseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		PaidBy:      PaidByPersonal,
		Status:      StatusPending,
	}
	resp := ToResponse(e)
	assert.Equal(t, "2024-01-15", resp.ExpenseDate)
}
