package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

var expenseSortColumns = map[string]string{
	"amount":      "e.amount",
	"expenseDate": "e.expense_date",
	"status":      "e.status",
	"createdAt":   "e.created_at",
}

const expenseColumns = `e.id, e.user_id, e.amount, e.currency, e.category, e.description,
		e.expense_date, e.paid_by, e.status, e.submitted_at, e.created_at, e.updated_at`

func scanExpense(row pgx.Row, withUser bool) (expense.Expense, error) {
	var found expense.Expense
	dest := []interface{}{
		&found.ID, &found.UserID, &found.Amount, &found.Currency, &found.Category,
		&found.Description, &found.ExpenseDate, &found.PaidBy, &found.Status,
		&found.SubmittedAt, &found.CreatedAt, &found.UpdatedAt,
	}
	if withUser {
		dest = append(dest, &found.UserName, &found.UserEmail)
	}
	err := row.Scan(dest...)
	return found, err
}

// GetByID implements expense.ExpenseRepository. Joins the owning user's name
// and email.
func (e *expenseRepositoryImpl) GetByID(ctx context.Context, id int64) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + expenseColumns + `, u.name, u.email
		FROM expenses e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	found, err := scanExpense(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, err
	}
	return found, nil
}

// List implements expense.ExpenseRepository.
func (e *expenseRepositoryImpl) List(ctx context.Context, filter expense.ListFilter) ([]expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	sql := `
		SELECT ` + expenseColumns + `, u.name, u.email
		FROM expenses e
		LEFT JOIN users u ON u.id = e.user_id`
	conditions := make([]string, 0, 7)
	args := make([]interface{}, 0, 9)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("e.description ILIKE $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("e.user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("e.category = $%d", len(args)))
	}
	if filter.Currency != "" {
		args = append(args, filter.Currency)
		conditions = append(conditions, fmt.Sprintf("e.currency = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("e.expense_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("e.expense_date <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}

	sql += orderClause(expenseSortColumns, filter.Sort, filter.Order, "e.id")

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]expense.Expense, 0)
	for rows.Next() {
		found, err := scanExpense(rows, true)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, found)
	}
	return expenses, rows.Err()
}

// Create implements expense.ExpenseRepository.
func (e *expenseRepositoryImpl) Create(ctx context.Context, newExpense expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO expenses AS e (user_id, amount, currency, category, description, expense_date, paid_by, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + expenseColumns

	created, err := scanExpense(q.QueryRow(ctx, query,
		newExpense.UserID, newExpense.Amount, newExpense.Currency, newExpense.Category,
		newExpense.Description, newExpense.ExpenseDate, newExpense.PaidBy,
		newExpense.Status, newExpense.SubmittedAt,
	), false)
	if err != nil {
		return expense.Expense{}, err
	}
	return created, nil
}

// Update implements expense.ExpenseRepository.
func (e *expenseRepositoryImpl) Update(ctx context.Context, id int64, updates map[string]interface{}) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	for _, col := range []string{"amount", "currency", "category", "description", "expense_date", "paid_by", "updated_at"} {
		val, ok := updates[col]
		if !ok {
			continue
		}
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	args = append(args, id)
	sql := "UPDATE expenses AS e SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)) + expenseColumns

	updated, err := scanExpense(q.QueryRow(ctx, sql, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, err
	}
	return updated, nil
}

// UpdateStatus implements expense.ExpenseRepository. Used by the approval
// flow to mirror a decision onto the parent expense.
func (e *expenseRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status expense.Status) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `UPDATE expenses SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}

// Delete implements expense.ExpenseRepository.
func (e *expenseRepositoryImpl) Delete(ctx context.Context, id int64) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM expenses AS e WHERE id = $1 RETURNING ` + expenseColumns

	deleted, err := scanExpense(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, err
	}
	return deleted, nil
}
