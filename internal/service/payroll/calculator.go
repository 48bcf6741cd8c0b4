package payroll

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
)

// TaxYear holds the income tax and National Insurance constants for one
// UK tax year. Values are immutable once constructed; a new tax year is
// a new value, never a mutation.
type TaxYear struct {
	PersonalAllowance decimal.Decimal
	BasicRateLimit    decimal.Decimal
	HigherRateLimit   decimal.Decimal
	BasicRate         decimal.Decimal
	HigherRate        decimal.Decimal
	AdditionalRate    decimal.Decimal

	TaperThreshold decimal.Decimal

	NIPrimaryThreshold   decimal.Decimal
	NIUpperEarningsLimit decimal.Decimal
	NIEmployeeRate       decimal.Decimal
	NIEmployeeUpperRate  decimal.Decimal
	NIEmployerRate       decimal.Decimal
	NIEmployerThreshold  decimal.Decimal
}

// UKTaxYear2024 returns the 2024/25 rates and thresholds.
func UKTaxYear2024() TaxYear {
	return TaxYear{
		PersonalAllowance: decimal.NewFromInt(12570),
		BasicRateLimit:    decimal.NewFromInt(50270),
		HigherRateLimit:   decimal.NewFromInt(125140),
		BasicRate:         decimal.NewFromFloat(0.20),
		HigherRate:        decimal.NewFromFloat(0.40),
		AdditionalRate:    decimal.NewFromFloat(0.45),

		TaperThreshold: decimal.NewFromInt(100000),

		NIPrimaryThreshold:   decimal.NewFromInt(12570),
		NIUpperEarningsLimit: decimal.NewFromInt(50270),
		NIEmployeeRate:       decimal.NewFromFloat(0.08),
		NIEmployeeUpperRate:  decimal.NewFromFloat(0.02),
		NIEmployerRate:       decimal.NewFromFloat(0.138),
		NIEmployerThreshold:  decimal.NewFromInt(9100),
	}
}

// NIContribution is the monthly National Insurance split. Employer is a
// company cost, reported alongside the payslip but never deducted.
type NIContribution struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// PayInput is everything needed to compute one monthly payslip.
type PayInput struct {
	AnnualSalary           decimal.Decimal
	TaxCode                string
	PensionPercent         decimal.Decimal
	EmployerPensionPercent decimal.Decimal
	Bonus                  decimal.Decimal
	OtherAdditions         decimal.Decimal
	OtherDeductions        decimal.Decimal
}

// Calculator computes monthly payslip breakdowns for a single tax year.
type Calculator struct {
	year TaxYear
}

func NewCalculator(year TaxYear) *Calculator {
	return &Calculator{year: year}
}

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// round2 rounds to 2 decimal places, half away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ========== PAYSLIP ==========

// CalculatePayslip produces the full monthly breakdown. Each monetary
// field is rounded as it is assigned and later fields are derived from
// the already-rounded ones, so gross_pay == base + bonus + additions and
// net_pay == gross − total_deductions hold to the cent.
func (c *Calculator) CalculatePayslip(in PayInput) payroll.Breakdown {
	baseSalary := round2(in.AnnualSalary.Div(twelve))
	bonus := round2(in.Bonus)
	otherAdditions := round2(in.OtherAdditions)
	grossPay := round2(baseSalary.Add(bonus).Add(otherAdditions))

	pensionEmployee := round2(grossPay.Mul(in.PensionPercent).Div(hundred))
	pensionEmployer := round2(grossPay.Mul(in.EmployerPensionPercent).Div(hundred))

	taxablePay := round2(grossPay.Sub(pensionEmployee))
	annualTaxablePay := taxablePay.Mul(twelve)

	incomeTax := c.MonthlyTax(annualTaxablePay, in.TaxCode)

	// NI is assessed on gross earnings, not the pension-reduced figure.
	ni := c.MonthlyNI(grossPay.Mul(twelve))

	otherDeductions := round2(in.OtherDeductions)
	totalDeductions := round2(pensionEmployee.Add(incomeTax).Add(ni.Employee).Add(otherDeductions))
	netPay := round2(grossPay.Sub(totalDeductions))

	return payroll.Breakdown{
		BaseSalary:        baseSalary,
		Bonus:             bonus,
		OtherAdditions:    otherAdditions,
		GrossPay:          grossPay,
		PensionPercent:    in.PensionPercent,
		PensionEmployee:   pensionEmployee,
		PensionEmployer:   pensionEmployer,
		TaxablePay:        taxablePay,
		IncomeTax:         incomeTax,
		NationalInsurance: ni.Employee,
		EmployerNI:        ni.Employer,
		OtherDeductions:   otherDeductions,
		TotalDeductions:   totalDeductions,
		NetPay:            netPay,
	}
}

// ========== INCOME TAX ==========

var taxCodeDigitsRegex = regexp.MustCompile(`^([0-9]+)`)

// MonthlyTax computes one month of income tax from the annual taxable
// pay and the employee's tax code. Annual figures stay unrounded; the
// monthly result is rounded once at return. Band widths are measured
// against the standard personal allowance even when the code carries a
// different one.
func (c *Calculator) MonthlyTax(annualTaxablePay decimal.Decimal, taxCode string) decimal.Decimal {
	// Special codes match exactly; "br" is not BR, it falls through to
	// the standard allowance like any other unrecognized code.
	switch taxCode {
	case "BR":
		return round2(annualTaxablePay.Mul(c.year.BasicRate).Div(twelve))
	case "D0":
		return round2(annualTaxablePay.Mul(c.year.HigherRate).Div(twelve))
	case "D1":
		return round2(annualTaxablePay.Mul(c.year.AdditionalRate).Div(twelve))
	case "NT":
		return decimal.Zero
	}

	allowance := c.year.PersonalAllowance
	if taxCode == "0T" {
		allowance = decimal.Zero
	} else if m := taxCodeDigitsRegex.FindString(taxCode); m != "" {
		if n, err := decimal.NewFromString(m); err == nil {
			allowance = n.Mul(decimal.NewFromInt(10))
		}
	}

	// Allowance tapers away above 100k: £1 lost per £2 of income.
	if annualTaxablePay.GreaterThan(c.year.TaperThreshold) {
		reduction := annualTaxablePay.Sub(c.year.TaperThreshold).Div(two).Floor()
		allowance = decimal.Max(decimal.Zero, allowance.Sub(reduction))
	}

	taxableIncome := decimal.Max(decimal.Zero, annualTaxablePay.Sub(allowance))

	basicBand := c.year.BasicRateLimit.Sub(c.year.PersonalAllowance)
	higherBand := c.year.HigherRateLimit.Sub(c.year.BasicRateLimit)

	var annualTax decimal.Decimal
	switch {
	case taxableIncome.LessThanOrEqual(basicBand):
		annualTax = taxableIncome.Mul(c.year.BasicRate)
	case taxableIncome.LessThanOrEqual(c.year.HigherRateLimit.Sub(c.year.PersonalAllowance)):
		annualTax = basicBand.Mul(c.year.BasicRate)
		annualTax = annualTax.Add(taxableIncome.Sub(basicBand).Mul(c.year.HigherRate))
	default:
		annualTax = basicBand.Mul(c.year.BasicRate)
		annualTax = annualTax.Add(higherBand.Mul(c.year.HigherRate))
		annualTax = annualTax.Add(taxableIncome.Sub(basicBand).Sub(higherBand).Mul(c.year.AdditionalRate))
	}

	return round2(annualTax.Div(twelve))
}

// ========== NATIONAL INSURANCE ==========

// MonthlyNI computes one month of employee and employer National
// Insurance from annual gross pay. Both figures are rounded once at
// return.
func (c *Calculator) MonthlyNI(annualGrossPay decimal.Decimal) NIContribution {
	var employeeNI, employerNI decimal.Decimal

	if annualGrossPay.GreaterThan(c.year.NIPrimaryThreshold) {
		if annualGrossPay.LessThanOrEqual(c.year.NIUpperEarningsLimit) {
			employeeNI = annualGrossPay.Sub(c.year.NIPrimaryThreshold).Mul(c.year.NIEmployeeRate)
		} else {
			employeeNI = c.year.NIUpperEarningsLimit.Sub(c.year.NIPrimaryThreshold).Mul(c.year.NIEmployeeRate)
			employeeNI = employeeNI.Add(annualGrossPay.Sub(c.year.NIUpperEarningsLimit).Mul(c.year.NIEmployeeUpperRate))
		}
	}

	if annualGrossPay.GreaterThan(c.year.NIEmployerThreshold) {
		employerNI = annualGrossPay.Sub(c.year.NIEmployerThreshold).Mul(c.year.NIEmployerRate)
	}

	return NIContribution{
		Employee: round2(employeeNI.Div(twelve)),
		Employer: round2(employerNI.Div(twelve)),
	}
}
