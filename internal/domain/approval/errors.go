package approval

import "errors"

var (
	ErrApprovalNotFound = errors.New("approval not found")

	// Foreign-reference failures on create; 400s with their own codes.
	ErrExpenseNotFound  = errors.New("referenced expense not found")
	ErrApproverNotFound = errors.New("referenced approver not found")

	ErrSelfApproval = errors.New("approver cannot approve their own expense")

	// Decisions are one-shot: status only changes away from PENDING.
	ErrInvalidStatusTransition = errors.New("status can only be changed from pending")
)
