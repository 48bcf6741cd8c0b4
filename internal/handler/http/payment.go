package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payment"
	"github.com/payadjust/payadjust-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetDetails(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportBACS(w http.ResponseWriter, r *http.Request)
	MarkProcessing(w http.ResponseWriter, r *http.Request)
	MarkProcessed(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// ListPeriods implements PaymentHandler.
func (h *PaymentHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	periods, err := h.paymentService.ListPaymentPeriods(r.Context(), orgID)
	if err != nil {
		slog.Error("List payment periods service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// GetDetails implements PaymentHandler.
func (h *PaymentHandlerImpl) GetDetails(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	details, err := h.paymentService.GetPaymentDetails(r.Context(), orgID, periodID)
	if err != nil {
		slog.Error("Get payment details service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// ExportCSV implements PaymentHandler.
func (h *PaymentHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	csv, err := h.paymentService.GenerateCSV(r.Context(), orgID, periodID)
	if err != nil {
		slog.Error("Export CSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payments-"+periodID+".csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

// ExportBACS implements PaymentHandler.
func (h *PaymentHandlerImpl) ExportBACS(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	bacs, err := h.paymentService.GenerateBACS(r.Context(), orgID, periodID)
	if err != nil {
		slog.Error("Export BACS service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payments-"+periodID+".txt"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(bacs))
}

// MarkProcessing implements PaymentHandler.
func (h *PaymentHandlerImpl) MarkProcessing(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	if err := h.paymentService.MarkProcessing(r.Context(), orgID, periodID); err != nil {
		slog.Error("Mark processing service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period marked as processing", nil)
}

// MarkProcessed implements PaymentHandler.
func (h *PaymentHandlerImpl) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	periodID := chi.URLParam(r, "periodID")

	if err := h.paymentService.MarkProcessed(r.Context(), orgID, periodID); err != nil {
		slog.Error("Mark processed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period marked as processed", nil)
}

// Stats implements PaymentHandler.
func (h *PaymentHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	stats, err := h.paymentService.Stats(r.Context(), orgID)
	if err != nil {
		slog.Error("Payment stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
