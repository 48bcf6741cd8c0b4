package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
)

// RecomputeTotals folds a period's full payslip set into its aggregate
// totals. Totals are always rebuilt from scratch after a mutation, never
// patched incrementally, so they cannot drift from the payslips.
func RecomputeTotals(payslips []payroll.Payslip) payroll.PeriodTotals {
	totals := payroll.PeriodTotals{
		TotalGross:           decimal.Zero,
		TotalNet:             decimal.Zero,
		TotalTax:             decimal.Zero,
		TotalNI:              decimal.Zero,
		TotalPensionEmployee: decimal.Zero,
		TotalPensionEmployer: decimal.Zero,
		EmployeeCount:        len(payslips),
	}

	for _, p := range payslips {
		totals.TotalGross = totals.TotalGross.Add(p.GrossPay)
		totals.TotalNet = totals.TotalNet.Add(p.NetPay)
		totals.TotalTax = totals.TotalTax.Add(p.IncomeTax)
		totals.TotalNI = totals.TotalNI.Add(p.NationalInsurance)
		totals.TotalPensionEmployee = totals.TotalPensionEmployee.Add(p.PensionEmployee)
		totals.TotalPensionEmployer = totals.TotalPensionEmployer.Add(p.PensionEmployer)
	}

	return totals
}
