package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
	"github.com/payadjust/payadjust-backend-go/internal/handler/http/response"
)

// PayslipHandler exposes the employee self-service payslip endpoints.
type PayslipHandler interface {
	ListMyPayslips(w http.ResponseWriter, r *http.Request)
	CurrentPayslip(w http.ResponseWriter, r *http.Request)
	CanAdjustPension(w http.ResponseWriter, r *http.Request)
	AdjustPension(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	payslipService payroll.PayslipService
}

func NewPayslipHandler(payslipService payroll.PayslipService) PayslipHandler {
	return &PayslipHandlerImpl{payslipService: payslipService}
}

// ListMyPayslips implements PayslipHandler.
func (h *PayslipHandlerImpl) ListMyPayslips(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	payslips, err := h.payslipService.ListMyPayslips(r.Context(), orgID)
	if err != nil {
		slog.Error("List my payslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// CurrentPayslip implements PayslipHandler.
func (h *PayslipHandlerImpl) CurrentPayslip(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	payslip, err := h.payslipService.CurrentPayslip(r.Context(), orgID)
	if err != nil {
		slog.Error("Current payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip)
}

// CanAdjustPension implements PayslipHandler.
func (h *PayslipHandlerImpl) CanAdjustPension(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	payslipID := chi.URLParam(r, "payslipID")

	canAdjust, err := h.payslipService.CanAdjustPension(r.Context(), orgID, payslipID)
	if err != nil {
		slog.Error("Can adjust pension service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.CanAdjustResponse{CanAdjust: canAdjust})
}

// AdjustPension implements PayslipHandler.
func (h *PayslipHandlerImpl) AdjustPension(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	payslipID := chi.URLParam(r, "payslipID")

	var req payroll.AdjustPensionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Adjust pension decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payslipService.AdjustPension(r.Context(), orgID, payslipID, req)
	if err != nil {
		slog.Error("Adjust pension service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pension contribution updated successfully", result)
}
