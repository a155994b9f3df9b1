package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/domain/user"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// Get implements UserHandler.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	if hasIDParam(r) {
		id, ok := parseID(r)
		if !ok {
			response.BadRequest(w, "INVALID_ID", "Valid ID is required")
			return
		}
		found, err := h.userService.GetByID(r.Context(), id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.OK(w, found)
		return
	}

	filter := user.ListFilter{
		Search:    r.URL.Query().Get("search"),
		CompanyID: parseInt64Param(r, "companyId"),
		Role:      r.URL.Query().Get("role"),
		Sort:      r.URL.Query().Get("sort"),
		Order:     r.URL.Query().Get("order"),
	}
	if isActive := r.URL.Query().Get("isActive"); isActive != "" {
		active := isActive == "true"
		filter.IsActive = &active
	}
	filter.Limit, filter.Offset = parsePagination(r)

	results, err := h.userService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, results)
}

// Create implements UserHandler.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	created, err := h.userService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// Update implements UserHandler.
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_REQUEST_BODY", "Invalid request format")
		return
	}

	updated, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

// Delete implements UserHandler.
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "INVALID_ID", "Valid ID is required")
		return
	}

	deleted, err := h.userService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, user.DeleteUserResponse{
		Message: "User deleted successfully",
		User:    deleted,
	})
}
