package payment

import "github.com/shopspring/decimal"

type PaymentPeriodResponse struct {
	ID             string          `json:"id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Status         string          `json:"status"`
	TotalNet       decimal.Decimal `json:"total_net"`
	EmployeeCount  int             `json:"employee_count"`
	ProcessingDate *string         `json:"processing_date,omitempty"`
}

type PaymentDetailResponse struct {
	PayslipID         string          `json:"payslip_id"`
	EmployeeID        string          `json:"employee_id"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	NetPay            decimal.Decimal `json:"net_pay"`
	BankAccountName   *string         `json:"bank_account_name,omitempty"`
	BankAccountNumber *string         `json:"bank_account_number,omitempty"`
	BankSortCode      *string         `json:"bank_sort_code,omitempty"`
	Status            string          `json:"status"`
}

type PaymentListResponse struct {
	Period   PaymentPeriodResponse   `json:"period"`
	Payments []PaymentDetailResponse `json:"payments"`
}

type PaymentStatsResponse struct {
	PendingTotal      decimal.Decimal `json:"pending_total"`
	PendingCount      int             `json:"pending_count"`
	ProcessedThisYear decimal.Decimal `json:"processed_this_year"`
}
