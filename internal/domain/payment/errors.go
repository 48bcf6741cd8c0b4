package payment

import "errors"

var (
	ErrNoBankDetails     = errors.New("no payments with valid bank details")
	ErrPeriodNotApproved = errors.New("period must be approved before processing payments")
)
