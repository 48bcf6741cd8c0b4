package response

import (
	"errors"
	"net/http"

	"github.com/payadjust/payadjust-backend-go/internal/domain/auth"
	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payment"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
	"github.com/payadjust/payadjust-backend-go/internal/domain/user"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrNoPasswordSet):
		Unauthorized(w, "Account has no password set")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrSlugAlreadyExists):
		Conflict(w, "Organization slug already taken")
	case errors.Is(err, organization.ErrMemberAlreadyExists):
		Conflict(w, "User is already a member of this organization")
	case errors.Is(err, organization.ErrNotAMember):
		Forbidden(w, "Not a member of this organization")
	case errors.Is(err, organization.ErrAdminRequired):
		Forbidden(w, "Organization admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeAlreadyExists):
		Conflict(w, "Employee payroll details already exist")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyExists):
		Conflict(w, "Payroll period already exists for this month")
	case errors.Is(err, payroll.ErrPeriodNotDraft):
		Conflict(w, "Payslips can only be generated for draft periods")
	case errors.Is(err, payroll.ErrPeriodLocked):
		Conflict(w, "Payslips can only be modified while the period is draft or preview")
	case errors.Is(err, payroll.ErrPeriodNotPreview):
		Conflict(w, "Only preview periods can be reverted to draft")
	case errors.Is(err, payroll.ErrPeriodNotDeletable):
		Conflict(w, "Only draft or preview periods can be deleted")
	case errors.Is(err, payroll.ErrDeleteNeedsConfirm):
		Conflict(w, "Preview period deletion requires confirmation")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Invalid payroll period status transition")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, payroll.ErrAdjustmentClosed):
		Conflict(w, "Pension adjustment is not allowed for this payslip")
	case errors.Is(err, payroll.ErrPensionOutOfRange):
		BadRequest(w, "Pension percent is outside the allowed range", nil)
	case errors.Is(err, payroll.ErrNoPayslipsInPeriod):
		BadRequest(w, "No payslips found in this period", nil)
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees with payroll details found", nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrNoBankDetails):
		BadRequest(w, "No payments with valid bank details", nil)
	case errors.Is(err, payment.ErrPeriodNotApproved):
		Conflict(w, "Period must be approved before processing payments")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
