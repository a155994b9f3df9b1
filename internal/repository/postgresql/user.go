package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/expenseflow/expense-backend-go/internal/domain/user"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const userColumns = `id, company_id, name, email, password_hash, role, manager_id, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID, &found.CompanyID, &found.Name, &found.Email, &found.PasswordHash,
		&found.Role, &found.ManagerID, &found.IsActive, &found.CreatedAt, &found.UpdatedAt,
	)
	return found, err
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	found, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

// List implements user.UserRepository.
func (u *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	q := GetQuerier(ctx, u.db)

	sql := `SELECT ` + userColumns + ` FROM users`
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 6)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conditions = append(conditions, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}

	sql += orderClause(userSortColumns, filter.Sort, filter.Order, "id")

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, found)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (company_id, name, email, password_hash, role, manager_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.CompanyID, newUser.Name, newUser.Email, newUser.PasswordHash,
		newUser.Role, newUser.ManagerID, newUser.IsActive,
	))
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

// ExistsByID implements user.UserRepository.
func (u *userRepositoryImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, u.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// EmailTaken implements user.UserRepository.
func (u *userRepositoryImpl) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, u.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1) AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements user.UserRepository.
func (u *userRepositoryImpl) Update(ctx context.Context, id int64, updates map[string]interface{}) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	for _, col := range []string{"company_id", "name", "email", "role", "manager_id", "is_active", "updated_at"} {
		val, ok := updates[col]
		if !ok {
			continue
		}
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	args = append(args, id)
	sql := "UPDATE users SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)) + userColumns

	updated, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return updated, nil
}

// Delete implements user.UserRepository. No cascade: dependent expenses and
// approvals keep their rows and surface as FK errors at the database.
func (u *userRepositoryImpl) Delete(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	deleted, err := scanUser(q.QueryRow(ctx, `DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return deleted, nil
}
