package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Slug validation: 3-50 chars, a-z, 0-9, -
var slugRegex = regexp.MustCompile(`^[a-z0-9-]{3,50}$`)

func IsValidSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

// Tax code validation: HMRC codes like 1257L, K475, BR, D0, D1, NT, 0T,
// with optional W1/M1/X emergency suffix.
var taxCodeRegex = regexp.MustCompile(`^(?:[0-9]+[LMNT]|K[0-9]+|BR|D0|D1|NT|0T)(?:\s?(?:W1|M1|X))?$`)

func IsValidTaxCode(code string) bool {
	return taxCodeRegex.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

// Sort code validation: six digits, dashes and spaces allowed (e.g. "12-34-56").
func IsValidSortCode(sortCode string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(sortCode)
	return len(cleaned) == 6 && IsNumeric(cleaned)
}

// Account number validation: exactly eight digits.
func IsValidAccountNumber(accountNumber string) bool {
	return len(accountNumber) == 8 && IsNumeric(accountNumber)
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	// Try RFC3339 format (ISO8601 with timezone)
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	// Try RFC3339Nano format (with nanoseconds)
	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
