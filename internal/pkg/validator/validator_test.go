package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"acme", "acme-payroll", "team-42"}
	invalid := []string{"ab", "Acme", "acme payroll", "acme_payroll", ""}
	for _, slug := range valid {
		if !IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range invalid {
		if IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = true, want false", slug)
		}
	}
}

func TestIsValidTaxCode(t *testing.T) {
	valid := []string{"1257L", "1257l", "K475", "BR", "D0", "D1", "NT", "0T", "1257L W1", "500T"}
	invalid := []string{"", "L1257", "D2", "12-57L", "BRX1"}
	for _, code := range valid {
		if !IsValidTaxCode(code) {
			t.Errorf("IsValidTaxCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidTaxCode(code) {
			t.Errorf("IsValidTaxCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidSortCode(t *testing.T) {
	valid := []string{"123456", "12-34-56", "12 34 56"}
	invalid := []string{"12345", "1234567", "12-34-5a", ""}
	for _, sc := range valid {
		if !IsValidSortCode(sc) {
			t.Errorf("IsValidSortCode(%q) = false, want true", sc)
		}
	}
	for _, sc := range invalid {
		if IsValidSortCode(sc) {
			t.Errorf("IsValidSortCode(%q) = true, want false", sc)
		}
	}
}

func TestIsValidAccountNumber(t *testing.T) {
	valid := []string{"12345678", "00000001"}
	invalid := []string{"1234567", "123456789", "1234567a", ""}
	for _, an := range valid {
		if !IsValidAccountNumber(an) {
			t.Errorf("IsValidAccountNumber(%q) = false, want true", an)
		}
	}
	for _, an := range invalid {
		if IsValidAccountNumber(an) {
			t.Errorf("IsValidAccountNumber(%q) = true, want false", an)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "tax_code", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; tax_code: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "tax_code", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "tax_code": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
