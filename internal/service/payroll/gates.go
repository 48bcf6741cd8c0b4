package payroll

import (
	"time"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
)

// Period lifecycle: draft -> preview -> approved -> processing -> processed,
// with a single backward edge preview -> draft. Everything that mutates
// payslips checks these predicates before touching a row.

var allowedTransitions = map[payroll.PeriodStatus][]payroll.PeriodStatus{
	payroll.PeriodStatusDraft:      {payroll.PeriodStatusPreview},
	payroll.PeriodStatusPreview:    {payroll.PeriodStatusDraft, payroll.PeriodStatusApproved},
	payroll.PeriodStatusApproved:   {payroll.PeriodStatusProcessing},
	payroll.PeriodStatusProcessing: {payroll.PeriodStatusProcessed},
	payroll.PeriodStatusProcessed:  {},
}

// CanTransition reports whether a period may move from one status to
// another.
func CanTransition(from, to payroll.PeriodStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanGeneratePayslips - wholesale payslip generation replaces the whole
// set, so it is only allowed while the period is still a draft.
func CanGeneratePayslips(status payroll.PeriodStatus) bool {
	return status == payroll.PeriodStatusDraft
}

// CanModifyPayslip - admin edits (bonuses, single regeneration, payslip
// removal) are allowed until the period is approved.
func CanModifyPayslip(status payroll.PeriodStatus) bool {
	return status == payroll.PeriodStatusDraft || status == payroll.PeriodStatusPreview
}

// CanAdjustPension - employees may change their pension rate only while
// the period is in preview and the adjustment window is still open. A
// nil deadline means the window never closes.
func CanAdjustPension(status payroll.PeriodStatus, deadline *time.Time, now time.Time) bool {
	if status != payroll.PeriodStatusPreview {
		return false
	}
	if deadline == nil {
		return true
	}
	return !now.After(*deadline)
}

// CanDeletePeriod - only draft and preview periods may be deleted;
// preview deletion additionally requires explicit confirmation from the
// caller since employees may already have adjusted payslips.
func CanDeletePeriod(status payroll.PeriodStatus, confirmed bool) error {
	switch status {
	case payroll.PeriodStatusDraft:
		return nil
	case payroll.PeriodStatusPreview:
		if !confirmed {
			return payroll.ErrDeleteNeedsConfirm
		}
		return nil
	default:
		return payroll.ErrPeriodNotDeletable
	}
}
