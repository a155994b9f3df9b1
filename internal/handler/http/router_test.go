package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expenseflow/expense-backend-go/internal/config"
)

func TestNewRouter_ServesLivenessAndMetrics(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			FrontendURL: "http://localhost:3000",
		},
	}
	router := NewRouter(cfg,
		NewCompanyHandler(nil),
		NewUserHandler(nil),
		NewExpenseHandler(nil),
		NewApprovalHandler(nil),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
}
