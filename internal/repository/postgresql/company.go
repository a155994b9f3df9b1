package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/expenseflow/expense-backend-go/internal/domain/company"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

var companySortColumns = map[string]string{
	"name":         "name",
	"baseCurrency": "base_currency",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, base_currency, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.BaseCurrency, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}

	return found, nil
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context, filter company.ListFilter) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	sql := `SELECT id, name, base_currency, created_at, updated_at FROM companies`
	args := make([]interface{}, 0, 3)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		sql += fmt.Sprintf(" WHERE name ILIKE $%d", len(args))
	}

	sql += orderClause(companySortColumns, filter.Sort, filter.Order, "id")

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		var found company.Company
		if err := rows.Scan(&found.ID, &found.Name, &found.BaseCurrency, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, found)
	}
	return companies, rows.Err()
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, base_currency)
		VALUES ($1, $2)
		RETURNING id, name, base_currency, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query, newCompany.Name, newCompany.BaseCurrency).
		Scan(&created.ID, &created.Name, &created.BaseCurrency, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return company.Company{}, err
	}
	return created, nil
}

// ExistsByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, c.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if req.Name != nil {
		args = append(args, strings.TrimSpace(*req.Name))
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.BaseCurrency != nil {
		args = append(args, strings.ToUpper(*req.BaseCurrency))
		setClauses = append(setClauses, fmt.Sprintf("base_currency = $%d", len(args)))
	}
	args = append(args, time.Now())
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id, name, base_currency, created_at, updated_at", len(args))

	var updated company.Company
	err := q.QueryRow(ctx, sql, args...).
		Scan(&updated.ID, &updated.Name, &updated.BaseCurrency, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return updated, nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		DELETE FROM companies
		WHERE id = $1
		RETURNING id, name, base_currency, created_at, updated_at
	`

	var deleted company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&deleted.ID, &deleted.Name, &deleted.BaseCurrency, &deleted.CreatedAt, &deleted.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return deleted, nil
}
