package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
	MyDetails(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Upsert implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	var req employee.UpsertEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.UpsertEmployee(r.Context(), orgID, req)
	if err != nil {
		slog.Error("Upsert employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee details saved successfully", emp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	userID := chi.URLParam(r, "userID")

	emp, err := h.employeeService.GetEmployee(r.Context(), orgID, userID)
	if err != nil {
		slog.Error("Get employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	employees, err := h.employeeService.ListEmployees(r.Context(), orgID)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Deactivate implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	userID := chi.URLParam(r, "userID")

	if err := h.employeeService.DeactivateEmployee(r.Context(), orgID, userID); err != nil {
		slog.Error("Deactivate employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}

// Reactivate implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Reactivate(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	userID := chi.URLParam(r, "userID")

	if err := h.employeeService.ReactivateEmployee(r.Context(), orgID, userID); err != nil {
		slog.Error("Reactivate employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee reactivated successfully", nil)
}

// MyDetails implements EmployeeHandler.
func (h *EmployeeHandlerImpl) MyDetails(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	emp, err := h.employeeService.MyDetails(r.Context(), orgID)
	if err != nil {
		slog.Error("My details service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}
