// Seeds the demo dataset: two companies, the four demo identities, a handful
// of expenses in every status, their approvals, and a few audit log rows.
// Safe to run against an empty database only.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/expenseflow/expense-backend-go/internal/config"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

const demoPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	schema, err := os.ReadFile("migrations/schema.sql")
	if err != nil {
		log.Fatal("Error reading schema: ", err)
	}
	if _, err := db.Exec(ctx, string(schema)); err != nil {
		log.Fatal("Error applying schema: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing demo password: ", err)
	}

	if err := seed(ctx, db, string(hash)); err != nil {
		log.Fatal("Seeder failed: ", err)
	}
	fmt.Println("Seeder completed successfully")
}

func seed(ctx context.Context, db *database.DB, passwordHash string) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO companies (name, base_currency) VALUES
			('Acme Corp', 'USD'),
			('Global Tech', 'EUR')`,
	); err != nil {
		return fmt.Errorf("seed companies: %w", err)
	}

	users := []struct {
		name, email, role string
		managerID         *int64
	}{
		{name: "John Admin", email: "admin@acme.com", role: "ADMIN"},
		{name: "Sarah Manager", email: "manager1@acme.com", role: "MANAGER"},
		{name: "Mike Manager", email: "manager2@acme.com", role: "MANAGER"},
		{name: "Alice Employee", email: "employee1@acme.com", role: "EMPLOYEE", managerID: int64Ptr(2)},
	}
	for _, u := range users {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (company_id, name, email, password_hash, role, manager_id)
			VALUES (1, $1, $2, $3, $4, $5)`,
			u.name, u.email, passwordHash, u.role, u.managerID,
		); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	expenses := []struct {
		userID      int64
		amount      string
		currency    string
		category    string
		description string
		date        string
		paidBy      string
		status      string
	}{
		{4, "125.50", "USD", "Travel", "Business trip taxi fare", "2024-01-15", "PERSONAL", "APPROVED"},
		{4, "89.99", "USD", "Meals & Entertainment", "Team lunch with visiting client", "2024-01-17", "COMPANY_CARD", "REJECTED"},
		{4, "450.00", "USD", "Training & Development", "Conference registration fee", "2024-01-18", "PERSONAL", "APPROVED"},
		{4, "35.20", "USD", "Office Supplies", "Whiteboard markers and notepads", "2024-01-19", "COMPANY_CARD", "PENDING"},
		{2, "220.00", "EUR", "Travel", "Train tickets for client visit", "2024-01-22", "PERSONAL", "PENDING"},
	}
	for i, e := range expenses {
		if _, err := tx.Exec(ctx, `
			INSERT INTO expenses (user_id, amount, currency, category, description, expense_date, paid_by, status, submitted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.userID, e.amount, e.currency, e.category, e.description, e.date, e.paidBy, e.status, time.Now(),
		); err != nil {
			return fmt.Errorf("seed expense %d: %w", i+1, err)
		}
	}

	approvals := []struct {
		expenseID  int64
		approverID int64
		status     string
		remarks    *string
		approvedAt *time.Time
	}{
		{1, 2, "APPROVED", strPtr("Approved for legitimate business travel."), timePtr(time.Date(2024, 1, 16, 10, 30, 0, 0, time.UTC))},
		{2, 2, "REJECTED", strPtr("Receipt missing. Please resubmit with proper documentation."), nil},
		{3, 3, "APPROVED", strPtr("Conference attendance approved as part of professional development."), timePtr(time.Date(2024, 1, 18, 14, 20, 0, 0, time.UTC))},
		{4, 3, "PENDING", nil, nil},
	}
	for i, a := range approvals {
		if _, err := tx.Exec(ctx, `
			INSERT INTO approvals (expense_id, approver_id, workflow_step, status, remarks, approved_at)
			VALUES ($1, $2, 1, $3, $4, $5)`,
			a.expenseID, a.approverID, a.status, a.remarks, a.approvedAt,
		); err != nil {
			return fmt.Errorf("seed approval %d: %w", i+1, err)
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO audit_logs (user_id, action, entity_type, entity_id, new_value, ip_address) VALUES
			(4, 'CREATE_EXPENSE', 'expense', 1, '{"amount": 125.50, "currency": "USD", "status": "PENDING"}', '192.168.1.45'),
			(2, 'APPROVE_EXPENSE', 'expense', 1, '{"status": "APPROVED"}', '192.168.1.67'),
			(2, 'REJECT_EXPENSE', 'expense', 2, '{"status": "REJECTED"}', '192.168.1.67')`,
	); err != nil {
		return fmt.Errorf("seed audit logs: %w", err)
	}

	return tx.Commit(ctx)
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }
