package payment

import "context"

// PaymentService exposes the payment run built from approved payroll
// periods: exports for the bank, status transitions, and summary stats.
// All operations are admin only.
type PaymentService interface {
	// ListPaymentPeriods returns approved, processing and processed periods.
	ListPaymentPeriods(ctx context.Context, organizationID string) ([]PaymentPeriodResponse, error)

	// GetPaymentDetails returns per-employee net pay joined with bank details.
	GetPaymentDetails(ctx context.Context, organizationID string, periodID string) (PaymentListResponse, error)

	// GenerateCSV renders the payment run as a CSV document.
	GenerateCSV(ctx context.Context, organizationID string, periodID string) (string, error)

	// GenerateBACS renders the payment run in BACS Standard 18 format,
	// skipping employees without bank details.
	GenerateBACS(ctx context.Context, organizationID string, periodID string) (string, error)

	// MarkProcessing moves an approved period to processing.
	MarkProcessing(ctx context.Context, organizationID string, periodID string) error

	// MarkProcessed moves a period to processed and marks its payslips paid.
	MarkProcessed(ctx context.Context, organizationID string, periodID string) error

	// Stats summarizes pending and processed payment totals.
	Stats(ctx context.Context, organizationID string) (PaymentStatsResponse, error)
}
