package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
	"github.com/payadjust/payadjust-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	UpdatePeriodStatus(w http.ResponseWriter, r *http.Request)
	RevertPeriod(w http.ResponseWriter, r *http.Request)
	DeletePeriod(w http.ResponseWriter, r *http.Request)

	GeneratePayslips(w http.ResponseWriter, r *http.Request)
	RegeneratePayslip(w http.ResponseWriter, r *http.Request)
	DeletePayslip(w http.ResponseWriter, r *http.Request)

	AddBonus(w http.ResponseWriter, r *http.Request)
	AddBonusToAll(w http.ResponseWriter, r *http.Request)
	UpdateBonus(w http.ResponseWriter, r *http.Request)
	DeleteBonus(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ========== PERIODS ==========

// CreatePeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	var req payroll.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create period decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	period, err := h.payrollService.CreatePeriod(r.Context(), orgID, req)
	if err != nil {
		slog.Error("Create period service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created successfully", period)
}

// ListPeriods implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	periods, err := h.payrollService.ListPeriods(r.Context(), orgID)
	if err != nil {
		slog.Error("List periods service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// GetPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	detail, err := h.payrollService.GetPeriod(r.Context(), orgID, periodID)
	if err != nil {
		slog.Error("Get period service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// UpdatePeriodStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdatePeriodStatus(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	var req payroll.UpdatePeriodStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update period status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.UpdatePeriodStatus(r.Context(), orgID, periodID, req); err != nil {
		slog.Error("Update period status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period status updated successfully", nil)
}

// RevertPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) RevertPeriod(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	if err := h.payrollService.RevertPeriodToDraft(r.Context(), orgID, periodID); err != nil {
		slog.Error("Revert period service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period reverted to draft successfully", nil)
}

// DeletePeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")
	force := r.URL.Query().Get("force") == "true"

	if err := h.payrollService.DeletePeriod(r.Context(), orgID, periodID, force); err != nil {
		slog.Error("Delete period service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period deleted successfully", nil)
}

// ========== PAYSLIPS ==========

// GeneratePayslips implements PayrollHandler.
func (h *PayrollHandlerImpl) GeneratePayslips(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	result, err := h.payrollService.GeneratePayslips(r.Context(), orgID, periodID)
	if err != nil {
		slog.Error("Generate payslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslips generated successfully", result)
}

// RegeneratePayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) RegeneratePayslip(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.payrollService.RegeneratePayslip(r.Context(), orgID, periodID, employeeID); err != nil {
		slog.Error("Regenerate payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip regenerated successfully", nil)
}

// DeletePayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) DeletePayslip(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")
	payslipID := chi.URLParam(r, "payslipID")

	if err := h.payrollService.DeletePayslip(r.Context(), orgID, periodID, payslipID); err != nil {
		slog.Error("Delete payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted successfully", nil)
}

// ========== BONUSES ==========

// AddBonus implements PayrollHandler.
func (h *PayrollHandlerImpl) AddBonus(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	payslipID := chi.URLParam(r, "payslipID")

	var req payroll.AddBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add bonus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.AddBonus(r.Context(), orgID, payslipID, req); err != nil {
		slog.Error("Add bonus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus added successfully", nil)
}

// AddBonusToAll implements PayrollHandler.
func (h *PayrollHandlerImpl) AddBonusToAll(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	var req payroll.AddBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add bonus to all decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.AddBonusToAll(r.Context(), orgID, periodID, req)
	if err != nil {
		slog.Error("Add bonus to all service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus added to all payslips successfully", result)
}

// UpdateBonus implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateBonus(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	bonusID := chi.URLParam(r, "bonusID")

	var req payroll.UpdateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update bonus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = bonusID

	if err := h.payrollService.UpdateBonus(r.Context(), orgID, req); err != nil {
		slog.Error("Update bonus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus updated successfully", nil)
}

// DeleteBonus implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteBonus(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	bonusID := chi.URLParam(r, "bonusID")

	if err := h.payrollService.DeleteBonus(r.Context(), orgID, bonusID); err != nil {
		slog.Error("Delete bonus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted successfully", nil)
}
