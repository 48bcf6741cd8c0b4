package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee payroll details already exist for this member")
	ErrEmployeeInactive      = errors.New("employee is not active")
)
