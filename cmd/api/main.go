package main

import (
	"fmt"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/config"
	appHTTP "github.com/expenseflow/expense-backend-go/internal/handler/http"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
	"github.com/expenseflow/expense-backend-go/internal/repository/postgresql"
	approvalService "github.com/expenseflow/expense-backend-go/internal/service/approval"
	companyService "github.com/expenseflow/expense-backend-go/internal/service/company"
	expenseService "github.com/expenseflow/expense-backend-go/internal/service/expense"
	userService "github.com/expenseflow/expense-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)

	companySvc := companyService.NewCompanyService(db, companyRepo)
	userSvc := userService.NewUserService(db, userRepo, companyRepo)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, userRepo)
	approvalSvc := approvalService.NewApprovalService(db, approvalRepo, expenseRepo, userRepo)

	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc)

	router := appHTTP.NewRouter(cfg, companyHandler, userHandler, expenseHandler, approvalHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
