package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/approval"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
)

type ApprovalHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService approval.ApprovalService
}

func NewApprovalHandler(approvalService approval.ApprovalService) ApprovalHandler {
	return &approvalHandlerImpl{approvalService: approvalService}
}

// Get implements ApprovalHandler.
func (h *approvalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	if hasIDParam(r) {
		id, ok := parseID(r)
		if !ok {
			response.BadRequest(w, "INVALID_ID", "Valid ID is required")
			return
		}
		found, err := h.approvalService.GetByID(r.Context(), id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.OK(w, found)
		return
	}

	filter := approval.ListFilter{
		ExpenseID:    parseInt64Param(r, "expenseId"),
		ApproverID:   parseInt64Param(r, "approverId"),
		WorkflowStep: parseIntParam(r, "workflowStep"),
		Sort:         r.URL.Query().Get("sort"),
		Order:        r.URL.Query().Get("order"),
	}
	if status := r.URL.Query().Get("status"); approval.Status(status).IsValid() {
		filter.Status = status
	}
	filter.Limit, filter.Offset = parsePagination(r)

	results, err := h.approvalService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list approvals", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, results)
}

// Create implements ApprovalHandler.
func (h *approvalHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req approval.CreateApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	created, err := h.approvalService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// Update implements ApprovalHandler.
func (h *approvalHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	var req approval.UpdateApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	updated, err := h.approvalService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

// Delete implements ApprovalHandler.
func (h *approvalHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	deleted, err := h.approvalService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, approval.DeleteApprovalResponse{
		Message:         "Approval deleted successfully",
		DeletedApproval: deleted,
	})
}
