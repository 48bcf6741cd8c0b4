package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestCalculator() *Calculator {
	return NewCalculator(UKTaxYear2024())
}

func TestCalculatePayslip_StandardCode(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculatePayslip(PayInput{
		AnnualSalary:           d("50000"),
		TaxCode:                "1257L",
		PensionPercent:         d("5"),
		EmployerPensionPercent: d("3"),
	})

	assert.Equal(t, "4166.67", got.BaseSalary.StringFixed(2))
	assert.Equal(t, "4166.67", got.GrossPay.StringFixed(2))
	assert.Equal(t, "208.33", got.PensionEmployee.StringFixed(2))
	assert.Equal(t, "125.00", got.PensionEmployer.StringFixed(2))
	assert.Equal(t, "3958.34", got.TaxablePay.StringFixed(2))
	assert.Equal(t, "582.17", got.IncomeTax.StringFixed(2))
	assert.Equal(t, "249.53", got.NationalInsurance.StringFixed(2))
	assert.Equal(t, "470.35", got.EmployerNI.StringFixed(2))
	assert.Equal(t, "1040.03", got.TotalDeductions.StringFixed(2))
	assert.Equal(t, "3126.64", got.NetPay.StringFixed(2))
}

func TestCalculatePayslip_BasicRateCode(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculatePayslip(PayInput{
		AnnualSalary:           d("30000"),
		TaxCode:                "BR",
		PensionPercent:         decimal.Zero,
		EmployerPensionPercent: decimal.Zero,
	})

	// BR taxes every pound at 20% with no allowance.
	assert.Equal(t, "2500.00", got.GrossPay.StringFixed(2))
	assert.Equal(t, "500.00", got.IncomeTax.StringFixed(2))
	assert.Equal(t, "116.20", got.NationalInsurance.StringFixed(2))
	assert.Equal(t, "616.20", got.TotalDeductions.StringFixed(2))
	assert.Equal(t, "1883.80", got.NetPay.StringFixed(2))
}

func TestCalculatePayslip_TaperedAllowance(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculatePayslip(PayInput{
		AnnualSalary:           d("150000"),
		TaxCode:                "1257L",
		PensionPercent:         d("5"),
		EmployerPensionPercent: d("3"),
	})

	// Annual taxable pay 142,500 wipes out the allowance entirely:
	// reduction = floor((142500-100000)/2) = 21250 > 12570.
	assert.Equal(t, "12500.00", got.GrossPay.StringFixed(2))
	assert.Equal(t, "625.00", got.PensionEmployee.StringFixed(2))
	assert.Equal(t, "11875.00", got.TaxablePay.StringFixed(2))
	assert.Equal(t, "4246.38", got.IncomeTax.StringFixed(2))
	assert.Equal(t, "417.55", got.NationalInsurance.StringFixed(2))
	assert.Equal(t, "1620.35", got.EmployerNI.StringFixed(2))
}

func TestCalculatePayslip_BonusRaisesEverything(t *testing.T) {
	calc := newTestCalculator()

	base := calc.CalculatePayslip(PayInput{
		AnnualSalary:           d("30000"),
		TaxCode:                "1257L",
		PensionPercent:         d("8"),
		EmployerPensionPercent: d("3"),
	})
	withBonus := calc.CalculatePayslip(PayInput{
		AnnualSalary:           d("30000"),
		TaxCode:                "1257L",
		PensionPercent:         d("8"),
		EmployerPensionPercent: d("3"),
		Bonus:                  d("500"),
	})

	assert.Equal(t, "3000.00", withBonus.GrossPay.StringFixed(2))
	assert.Equal(t, "240.00", withBonus.PensionEmployee.StringFixed(2))
	assert.Equal(t, "342.50", withBonus.IncomeTax.StringFixed(2))
	assert.Equal(t, "156.20", withBonus.NationalInsurance.StringFixed(2))
	assert.Equal(t, "2261.30", withBonus.NetPay.StringFixed(2))

	// The adjusted pension rate survives the recalculation and every
	// dependent figure rises with the larger gross.
	assert.True(t, withBonus.PensionPercent.Equal(base.PensionPercent))
	assert.True(t, withBonus.GrossPay.GreaterThan(base.GrossPay))
	assert.True(t, withBonus.PensionEmployee.GreaterThan(base.PensionEmployee))
	assert.True(t, withBonus.IncomeTax.GreaterThan(base.IncomeTax))
	assert.True(t, withBonus.NetPay.GreaterThan(base.NetPay))
}

func TestCalculatePayslip_Invariants(t *testing.T) {
	calc := newTestCalculator()

	inputs := []PayInput{
		{AnnualSalary: d("22000"), TaxCode: "1257L", PensionPercent: d("3"), EmployerPensionPercent: d("3")},
		{AnnualSalary: d("61750"), TaxCode: "1257L", PensionPercent: d("6"), EmployerPensionPercent: d("4"), Bonus: d("1250.55")},
		{AnnualSalary: d("99999.96"), TaxCode: "0T", PensionPercent: d("10"), EmployerPensionPercent: d("5"), OtherAdditions: d("100"), OtherDeductions: d("42.42")},
		{AnnualSalary: d("180000"), TaxCode: "D0", PensionPercent: d("5"), EmployerPensionPercent: d("3")},
	}

	for _, in := range inputs {
		got := calc.CalculatePayslip(in)

		gross := got.BaseSalary.Add(got.Bonus).Add(got.OtherAdditions)
		assert.True(t, got.GrossPay.Equal(gross),
			"gross %s != base+bonus+additions %s", got.GrossPay, gross)

		deductions := got.PensionEmployee.Add(got.IncomeTax).Add(got.NationalInsurance).Add(got.OtherDeductions)
		assert.True(t, got.TotalDeductions.Equal(deductions),
			"total_deductions %s != sum of parts %s", got.TotalDeductions, deductions)

		net := got.GrossPay.Sub(got.TotalDeductions)
		assert.True(t, got.NetPay.Equal(net),
			"net %s != gross-deductions %s", got.NetPay, net)
	}
}

func TestMonthlyTax_CodeDispatch(t *testing.T) {
	calc := newTestCalculator()

	cases := []struct {
		name             string
		annualTaxablePay string
		taxCode          string
		want             string
	}{
		{"BR flat 20%", "30000", "BR", "500.00"},
		{"D0 flat 40%", "60000", "D0", "2000.00"},
		{"D1 flat 45%", "60000", "D1", "2250.00"},
		{"NT no tax", "60000", "NT", "0.00"},
		{"0T zero allowance", "30000", "0T", "500.00"},
		{"numeric prefix times ten", "30000", "500T", "416.67"},
		{"lowercase br is not a special code", "30000", "br", "290.50"},
		{"unrecognized falls back to standard allowance", "30000", "X99", "290.50"},
		{"below allowance pays nothing", "12000", "1257L", "0.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calc.MonthlyTax(d(c.annualTaxablePay), c.taxCode)
			assert.Equal(t, c.want, got.StringFixed(2))
		})
	}
}

func TestMonthlyTax_BandBoundaries(t *testing.T) {
	calc := newTestCalculator()

	// Taxable income of exactly 37,700 is the last pound taxed wholly
	// at the basic rate.
	atEdge := calc.MonthlyTax(d("50270"), "1257L")
	assert.Equal(t, "628.33", atEdge.StringFixed(2))

	aboveEdge := calc.MonthlyTax(d("50271"), "1257L")
	assert.Equal(t, "628.37", aboveEdge.StringFixed(2))
}

func TestMonthlyTax_PartialTaper(t *testing.T) {
	calc := newTestCalculator()

	// 110,000: reduction = floor(10000/2) = 5000, allowance 7570,
	// taxable 102,430 ends in the higher band.
	got := calc.MonthlyTax(d("110000"), "1257L")
	assert.Equal(t, "2786.00", got.StringFixed(2))
}

func TestMonthlyNI_Bands(t *testing.T) {
	calc := newTestCalculator()

	cases := []struct {
		name         string
		annualGross  string
		wantEmployee string
		wantEmployer string
	}{
		{"below primary threshold", "12000", "0.00", "33.35"},
		{"at primary threshold", "12570", "0.00", "39.91"},
		{"within main band", "30000", "116.20", "240.35"},
		{"at upper earnings limit", "50270", "251.33", "473.46"},
		{"above upper earnings limit", "150000", "417.55", "1620.35"},
		{"below employer threshold", "9000", "0.00", "0.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calc.MonthlyNI(d(c.annualGross))
			assert.Equal(t, c.wantEmployee, got.Employee.StringFixed(2))
			assert.Equal(t, c.wantEmployer, got.Employer.StringFixed(2))
		})
	}
}

func TestRecomputeTotals(t *testing.T) {
	slips := []payroll.Payslip{
		{
			GrossPay:          d("4166.67"),
			NetPay:            d("3126.64"),
			IncomeTax:         d("582.17"),
			NationalInsurance: d("249.53"),
			PensionEmployee:   d("208.33"),
			PensionEmployer:   d("125.00"),
		},
		{
			GrossPay:          d("2500.00"),
			NetPay:            d("1883.80"),
			IncomeTax:         d("500.00"),
			NationalInsurance: d("116.20"),
			PensionEmployee:   d("0"),
			PensionEmployer:   d("0"),
		},
	}

	totals := RecomputeTotals(slips)

	assert.Equal(t, 2, totals.EmployeeCount)
	assert.Equal(t, "6666.67", totals.TotalGross.StringFixed(2))
	assert.Equal(t, "5010.44", totals.TotalNet.StringFixed(2))
	assert.Equal(t, "1082.17", totals.TotalTax.StringFixed(2))
	assert.Equal(t, "365.73", totals.TotalNI.StringFixed(2))
	assert.Equal(t, "208.33", totals.TotalPensionEmployee.StringFixed(2))
	assert.Equal(t, "125.00", totals.TotalPensionEmployer.StringFixed(2))

	// Recomputing the same set is idempotent.
	again := RecomputeTotals(slips)
	assert.Equal(t, totals, again)

	empty := RecomputeTotals(nil)
	assert.Equal(t, 0, empty.EmployeeCount)
	assert.Equal(t, "0.00", empty.TotalGross.StringFixed(2))
}
