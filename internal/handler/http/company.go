package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/company"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

// Get implements CompanyHandler: a single company when ?id= is present, a
// filtered page otherwise.
func (h *companyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	if hasIDParam(r) {
		id, ok := parseID(r)
		if !ok {
			response.BadRequest(w, "INVALID_ID", "Valid ID is required")
			return
		}
		found, err := h.companyService.GetByID(r.Context(), id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.OK(w, found)
		return
	}

	filter := company.ListFilter{
		Search: r.URL.Query().Get("search"),
		Sort:   r.URL.Query().Get("sort"),
		Order:  r.URL.Query().Get("order"),
	}
	filter.Limit, filter.Offset = parsePagination(r)

	results, err := h.companyService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list companies", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, results)
}

// Create implements CompanyHandler.
func (h *companyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	created, err := h.companyService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// Update implements CompanyHandler.
func (h *companyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	updated, err := h.companyService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

// Delete implements CompanyHandler. Physical delete; the removed row is
// echoed back.
func (h *companyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	deleted, err := h.companyService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, company.DeleteCompanyResponse{
		Message:        "Company deleted successfully",
		DeletedCompany: deleted,
	})
}
