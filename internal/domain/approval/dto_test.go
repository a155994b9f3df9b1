package approval

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

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

func intPtr(v int) *int { return &v }

func validCreateRequest() CreateApprovalRequest {
	return CreateApprovalRequest{
		ExpenseID:    int64Ptr(1),
		ApproverID:   int64Ptr(2),
		WorkflowStep: intPtr(1),
	}
}

func TestCreateApprovalRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("user id in body is rejected", func(t *testing.T) {
		var req CreateApprovalRequest
		require.NoError(t, json.Unmarshal([]byte(`{"expenseId": 1, "approverId": 2, "workflowStep": 1, "userId": 3}`), &req))
		assert.Equal(t, "USER_ID_NOT_ALLOWED", firstCode(t, req.Validate()))

		var snake CreateApprovalRequest
		require.NoError(t, json.Unmarshal([]byte(`{"expenseId": 1, "approverId": 2, "workflowStep": 1, "user_id": 3}`), &snake))
		assert.Equal(t, "USER_ID_NOT_ALLOWED", firstCode(t, snake.Validate()))
	})

	t.Run("missing expense id", func(t *testing.T) {
		req := validCreateRequest()
		req.ExpenseID = nil
		assert.Equal(t, "MISSING_EXPENSE_ID", firstCode(t, req.Validate()))
	})

	t.Run("missing approver id", func(t *testing.T) {
		req := validCreateRequest()
		req.ApproverID = nil
		assert.Equal(t, "MISSING_APPROVER_ID", firstCode(t, req.Validate()))
	})

	t.Run("non-positive workflow step", func(t *testing.T) {
		req := validCreateRequest()
		req.WorkflowStep = intPtr(0)
		assert.Equal(t, "INVALID_WORKFLOW_STEP", firstCode(t, req.Validate()))
	})

	t.Run("invalid status", func(t *testing.T) {
		req := validCreateRequest()
		status := Status("MAYBE")
		req.Status = &status
		assert.Equal(t, "INVALID_STATUS", firstCode(t, req.Validate()))
	})
}

func TestCreateApprovalRequest_NewApproval(t *testing.T) {
	now := time.Now()

	t.Run("defaults to PENDING without approved_at", func(t *testing.T) {
		req := validCreateRequest()
		a := req.NewApproval(now)
		assert.Equal(t, StatusPending, a.Status)
		assert.Nil(t, a.ApprovedAt)
	})

	t.Run("APPROVED stamps approved_at", func(t *testing.T) {
		req := validCreateRequest()
		status := StatusApproved
		req.Status = &status
		a := req.NewApproval(now)
		require.NotNil(t, a.ApprovedAt)
		assert.Equal(t, now, *a.ApprovedAt)
	})

	t.Run("REJECTED leaves approved_at nil", func(t *testing.T) {
		req := validCreateRequest()
		status := StatusRejected
		req.Status = &status
		assert.Nil(t, req.NewApproval(now).ApprovedAt)
	})
}

func TestUpdateApprovalRequest_Validate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdateApprovalRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("user id in body is rejected", func(t *testing.T) {
		var req UpdateApprovalRequest
		require.NoError(t, json.Unmarshal([]byte(`{"status": "APPROVED", "userId": 3}`), &req))
		assert.Equal(t, "USER_ID_NOT_ALLOWED", firstCode(t, req.Validate()))
	})

	t.Run("invalid status", func(t *testing.T) {
		status := Status("DONE")
		req := UpdateApprovalRequest{Status: &status}
		assert.Equal(t, "INVALID_STATUS", firstCode(t, req.Validate()))
	})

	t.Run("remarks null clears the column", func(t *testing.T) {
		var req UpdateApprovalRequest
		require.NoError(t, json.Unmarshal([]byte(`{"remarks": null}`), &req))
		assert.True(t, req.Remarks.Set)
		assert.Nil(t, req.Remarks.Value)
	})

	t.Run("absent remarks leave the column alone", func(t *testing.T) {
		var req UpdateApprovalRequest
		require.NoError(t, json.Unmarshal([]byte(`{"workflowStep": 2}`), &req))
		assert.False(t, req.Remarks.Set)
	})
}

func TestStatus_Decided(t *testing.T) {
	assert.False(t, StatusPending.Decided())
	assert.True(t, StatusApproved.Decided())
	assert.True(t, StatusRejected.Decided())
}
