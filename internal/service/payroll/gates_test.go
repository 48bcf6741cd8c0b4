package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to payroll.PeriodStatus }{
		{payroll.PeriodStatusDraft, payroll.PeriodStatusPreview},
		{payroll.PeriodStatusPreview, payroll.PeriodStatusDraft},
		{payroll.PeriodStatusPreview, payroll.PeriodStatusApproved},
		{payroll.PeriodStatusApproved, payroll.PeriodStatusProcessing},
		{payroll.PeriodStatusProcessing, payroll.PeriodStatusProcessed},
	}
	for _, c := range allowed {
		assert.True(t, CanTransition(c.from, c.to), "%s -> %s should be allowed", c.from, c.to)
	}

	denied := []struct{ from, to payroll.PeriodStatus }{
		{payroll.PeriodStatusDraft, payroll.PeriodStatusApproved},
		{payroll.PeriodStatusDraft, payroll.PeriodStatusProcessed},
		{payroll.PeriodStatusApproved, payroll.PeriodStatusPreview},
		{payroll.PeriodStatusApproved, payroll.PeriodStatusDraft},
		{payroll.PeriodStatusProcessed, payroll.PeriodStatusProcessing},
		{payroll.PeriodStatusProcessed, payroll.PeriodStatusDraft},
	}
	for _, c := range denied {
		assert.False(t, CanTransition(c.from, c.to), "%s -> %s should be denied", c.from, c.to)
	}
}

func TestCanGeneratePayslips(t *testing.T) {
	assert.True(t, CanGeneratePayslips(payroll.PeriodStatusDraft))
	assert.False(t, CanGeneratePayslips(payroll.PeriodStatusPreview))
	assert.False(t, CanGeneratePayslips(payroll.PeriodStatusApproved))
	assert.False(t, CanGeneratePayslips(payroll.PeriodStatusProcessed))
}

func TestCanModifyPayslip(t *testing.T) {
	assert.True(t, CanModifyPayslip(payroll.PeriodStatusDraft))
	assert.True(t, CanModifyPayslip(payroll.PeriodStatusPreview))
	assert.False(t, CanModifyPayslip(payroll.PeriodStatusApproved))
	assert.False(t, CanModifyPayslip(payroll.PeriodStatusProcessing))
	assert.False(t, CanModifyPayslip(payroll.PeriodStatusProcessed))
}

func TestCanAdjustPension(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	assert.True(t, CanAdjustPension(payroll.PeriodStatusPreview, nil, now))
	assert.True(t, CanAdjustPension(payroll.PeriodStatusPreview, &future, now))
	assert.True(t, CanAdjustPension(payroll.PeriodStatusPreview, &now, now), "deadline itself is still open")

	assert.False(t, CanAdjustPension(payroll.PeriodStatusPreview, &past, now))
	assert.False(t, CanAdjustPension(payroll.PeriodStatusDraft, nil, now))
	assert.False(t, CanAdjustPension(payroll.PeriodStatusApproved, &future, now))
	assert.False(t, CanAdjustPension(payroll.PeriodStatusProcessed, nil, now))
}

func TestCanDeletePeriod(t *testing.T) {
	assert.NoError(t, CanDeletePeriod(payroll.PeriodStatusDraft, false))
	assert.NoError(t, CanDeletePeriod(payroll.PeriodStatusPreview, true))

	assert.ErrorIs(t, CanDeletePeriod(payroll.PeriodStatusPreview, false), payroll.ErrDeleteNeedsConfirm)
	assert.ErrorIs(t, CanDeletePeriod(payroll.PeriodStatusApproved, true), payroll.ErrPeriodNotDeletable)
	assert.ErrorIs(t, CanDeletePeriod(payroll.PeriodStatusProcessed, true), payroll.ErrPeriodNotDeletable)
}
