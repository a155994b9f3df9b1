package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/currency"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

type ExpenseHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &expenseHandlerImpl{expenseService: expenseService}
}

// Get implements ExpenseHandler.
func (h *expenseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	if hasIDParam(r) {
		id, ok := parseID(r)
		if !ok {
			response.BadRequest(w, "INVALID_ID", "Valid ID is required")
			return
		}
		found, err := h.expenseService.GetByID(r.Context(), id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.OK(w, found)
		return
	}

	filter := expense.ListFilter{
		Search: r.URL.Query().Get("search"),
		UserID: parseInt64Param(r, "userId"),
		Sort:   r.URL.Query().Get("sort"),
		Order:  r.URL.Query().Get("order"),
	}
	// Unknown filter values are ignored rather than rejected.
	if status := r.URL.Query().Get("status"); expense.Status(status).IsValid() {
		filter.Status = status
	}
	if category := r.URL.Query().Get("category"); validator.IsInSlice(category, expense.Categories) {
		filter.Category = category
	}
	if cur := r.URL.Query().Get("currency"); currency.IsValid(cur) {
		filter.Currency = currency.Normalize(cur)
	}
	if dateFrom := r.URL.Query().Get("dateFrom"); dateFrom != "" {
		if parsed, ok := validator.IsValidDate(dateFrom); ok {
			filter.DateFrom = &parsed
		}
	}
	if dateTo := r.URL.Query().Get("dateTo"); dateTo != "" {
		if parsed, ok := validator.IsValidDate(dateTo); ok {
			filter.DateTo = &parsed
		}
	}
	filter.Limit, filter.Offset = parsePagination(r)

	results, err := h.expenseService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list expenses", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, results)
}

// Create implements ExpenseHandler.
func (h *expenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	created, err := h.expenseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// Update implements ExpenseHandler.
func (h *expenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	var req expense.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	updated, err := h.expenseService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

// Delete implements ExpenseHandler.
func (h *expenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	deleted, err := h.expenseService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, expense.DeleteExpenseResponse{
		Message: "Expense deleted successfully",
		Deleted: deleted,
	})
}
