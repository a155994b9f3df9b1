package response

import (
	"errors"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/approval"
	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/domain/company"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/domain/user"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field validation: one code/message pair per response, field order.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		first := validationErrs.First()
		BadRequest(w, first.Code, first.Message)
		return
	}

	switch {
	case errors.Is(err, auth.ErrAuthenticationRequired):
		Unauthorized(w, "Authentication required")

	// Missing addressed entities
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, approval.ErrApprovalNotFound):
		NotFound(w, "Approval not found")

	// User relationship rules
	case errors.Is(err, user.ErrCompanyNotFound):
		BadRequest(w, "COMPANY_NOT_FOUND", "Company not found")
	case errors.Is(err, user.ErrManagerNotFound):
		BadRequest(w, "MANAGER_NOT_FOUND", "Manager not found")
	case errors.Is(err, user.ErrInvalidHierarchy):
		BadRequest(w, "INVALID_HIERARCHY", "User's manager must hold an equal or more senior role")
	case errors.Is(err, user.ErrEmailExists):
		BadRequest(w, "EMAIL_EXISTS", "Email already exists")

	// Expense state gating
	case errors.Is(err, expense.ErrUserNotFound):
		BadRequest(w, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, expense.ErrUpdateNotAllowed):
		BadRequest(w, "UPDATE_NOT_ALLOWED", "Only expenses with PENDING status can be updated")
	case errors.Is(err, expense.ErrDeleteNotAllowed):
		BadRequest(w, "DELETE_NOT_ALLOWED", "Only expenses with PENDING status can be deleted")

	// Approval rules
	case errors.Is(err, approval.ErrExpenseNotFound):
		BadRequest(w, "EXPENSE_NOT_FOUND", "Expense not found")
	case errors.Is(err, approval.ErrApproverNotFound):
		BadRequest(w, "APPROVER_NOT_FOUND", "Approver not found")
	case errors.Is(err, approval.ErrSelfApproval):
		BadRequest(w, "SELF_APPROVAL_NOT_ALLOWED", "Approver cannot approve their own expenses")
	case errors.Is(err, approval.ErrInvalidStatusTransition):
		BadRequest(w, "INVALID_STATUS_TRANSITION", "Status can only be changed from PENDING")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
