package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/expense-backend-go/internal/domain/approval"
	"github.com/expenseflow/expense-backend-go/internal/domain/user"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

type approvalRepositoryImpl struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) approval.ApprovalRepository {
	return &approvalRepositoryImpl{db: db}
}

var approvalSortColumns = map[string]string{
	"status":       "a.status",
	"workflowStep": "a.workflow_step",
	"createdAt":    "a.created_at",
}

const approvalColumns = `a.id, a.expense_id, a.approver_id, a.workflow_step, a.status, a.remarks, a.approved_at, a.created_at`

func scanApproval(row pgx.Row) (approval.Approval, error) {
	var found approval.Approval
	err := row.Scan(
		&found.ID, &found.ExpenseID, &found.ApproverID, &found.WorkflowStep,
		&found.Status, &found.Remarks, &found.ApprovedAt, &found.CreatedAt,
	)
	return found, err
}

// scanApprovalJoined scans an approval row with its expense and approver
// summaries. The joins are LEFT JOINs, so summary columns may be NULL.
func scanApprovalJoined(row pgx.Row) (approval.Approval, error) {
	var found approval.Approval
	var (
		expID     *int64
		expAmount *decimal.Decimal
		expCur    *string
		expCat    *string
		expDesc   *string
		expDate   *time.Time
		expStatus *string
		apprID    *int64
		apprName  *string
		apprEmail *string
		apprRole  *string
	)
	err := row.Scan(
		&found.ID, &found.ExpenseID, &found.ApproverID, &found.WorkflowStep,
		&found.Status, &found.Remarks, &found.ApprovedAt, &found.CreatedAt,
		&expID, &expAmount, &expCur, &expCat, &expDesc, &expDate, &expStatus,
		&apprID, &apprName, &apprEmail, &apprRole,
	)
	if err != nil {
		return approval.Approval{}, err
	}
	if expID != nil {
		found.Expense = &approval.ExpenseSummary{
			ID:          *expID,
			Amount:      *expAmount,
			Currency:    *expCur,
			Category:    *expCat,
			Description: *expDesc,
			ExpenseDate: expDate.Format("2006-01-02"),
			Status:      *expStatus,
		}
	}
	if apprID != nil {
		found.Approver = &approval.ApproverSummary{
			ID:    *apprID,
			Name:  *apprName,
			Email: *apprEmail,
			Role:  user.Role(*apprRole),
		}
	}
	return found, nil
}

const approvalJoinedQuery = `
	SELECT ` + approvalColumns + `,
		e.id, e.amount, e.currency, e.category, e.description, e.expense_date, e.status,
		u.id, u.name, u.email, u.role
	FROM approvals a
	LEFT JOIN expenses e ON e.id = a.expense_id
	LEFT JOIN users u ON u.id = a.approver_id`

// GetByID implements approval.ApprovalRepository.
func (r *approvalRepositoryImpl) GetByID(ctx context.Context, id int64) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanApprovalJoined(q.QueryRow(ctx, approvalJoinedQuery+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.Approval{}, approval.ErrApprovalNotFound
		}
		return approval.Approval{}, err
	}
	return found, nil
}

// GetBare implements approval.ApprovalRepository: the row without joins, for
// status-transition checks.
func (r *approvalRepositoryImpl) GetBare(ctx context.Context, id int64) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanApproval(q.QueryRow(ctx, `SELECT `+approvalColumns+` FROM approvals a WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.Approval{}, approval.ErrApprovalNotFound
		}
		return approval.Approval{}, err
	}
	return found, nil
}

// List implements approval.ApprovalRepository.
func (r *approvalRepositoryImpl) List(ctx context.Context, filter approval.ListFilter) ([]approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	sql := approvalJoinedQuery
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 6)

	if filter.ExpenseID != nil {
		args = append(args, *filter.ExpenseID)
		conditions = append(conditions, fmt.Sprintf("a.expense_id = $%d", len(args)))
	}
	if filter.ApproverID != nil {
		args = append(args, *filter.ApproverID)
		conditions = append(conditions, fmt.Sprintf("a.approver_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.WorkflowStep != nil {
		args = append(args, *filter.WorkflowStep)
		conditions = append(conditions, fmt.Sprintf("a.workflow_step = $%d", len(args)))
	}
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}

	sql += orderClause(approvalSortColumns, filter.Sort, filter.Order, "a.id")

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	approvals := make([]approval.Approval, 0)
	for rows.Next() {
		found, err := scanApprovalJoined(rows)
		if err != nil {
			return nil, err
		}
		approvals = append(approvals, found)
	}
	return approvals, rows.Err()
}

// Create implements approval.ApprovalRepository.
func (r *approvalRepositoryImpl) Create(ctx context.Context, newApproval approval.Approval) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO approvals AS a (expense_id, approver_id, workflow_step, status, remarks, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + approvalColumns

	created, err := scanApproval(q.QueryRow(ctx, query,
		newApproval.ExpenseID, newApproval.ApproverID, newApproval.WorkflowStep,
		newApproval.Status, newApproval.Remarks, newApproval.ApprovedAt,
	))
	if err != nil {
		return approval.Approval{}, err
	}
	return created, nil
}

// Update implements approval.ApprovalRepository.
func (r *approvalRepositoryImpl) Update(ctx context.Context, id int64, updates map[string]interface{}) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	for _, col := range []string{"status", "remarks", "workflow_step", "approved_at"} {
		val, ok := updates[col]
		if !ok {
			continue
		}
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(setClauses) == 0 {
		return r.GetBare(ctx, id)
	}

	args = append(args, id)
	sql := "UPDATE approvals AS a SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)) + approvalColumns

	updated, err := scanApproval(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.Approval{}, approval.ErrApprovalNotFound
		}
		return approval.Approval{}, err
	}
	return updated, nil
}

// Delete implements approval.ApprovalRepository.
func (r *approvalRepositoryImpl) Delete(ctx context.Context, id int64) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	deleted, err := scanApproval(q.QueryRow(ctx, `DELETE FROM approvals AS a WHERE id = $1 RETURNING `+approvalColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.Approval{}, approval.ErrApprovalNotFound
		}
		return approval.Approval{}, err
	}
	return deleted, nil
}
