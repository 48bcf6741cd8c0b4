package payroll

import "errors"

var (
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrPeriodAlreadyExists = errors.New("payroll period already exists for this month")
	ErrPeriodNotDraft      = errors.New("payslips can only be generated for draft periods")
	ErrPeriodLocked        = errors.New("payslips can only be modified while the period is draft or preview")
	ErrPeriodNotPreview    = errors.New("only preview periods can be reverted to draft")
	ErrPeriodNotDeletable  = errors.New("only draft or preview periods can be deleted")
	ErrDeleteNeedsConfirm  = errors.New("preview period deletion requires confirmation")
	ErrInvalidTransition   = errors.New("invalid payroll period status transition")

	ErrPayslipNotFound    = errors.New("payslip not found")
	ErrAdjustmentClosed   = errors.New("pension adjustment is not allowed for this payslip")
	ErrPensionOutOfRange  = errors.New("pension percent is outside the allowed range")
	ErrBonusNotFound      = errors.New("bonus not found")
	ErrNoPayslipsInPeriod = errors.New("no payslips found in this period")

	ErrNoActiveEmployees = errors.New("no active employees with payroll details found")
)
