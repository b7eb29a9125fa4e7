package usecase

import "errors"

// InvalidPurchaseError is the single failure kind returned by a purchase.
// Each layer that passes a failure up wraps it with its own prefix, so Error()
// reads as a trail from the outermost layer down to the rule that was broken.
type InvalidPurchaseError struct {
	msg string
	err error
}

func newInvalidPurchase(msg string) *InvalidPurchaseError {
	return &InvalidPurchaseError{msg: msg}
}

func wrapInvalidPurchase(prefix string, err error) *InvalidPurchaseError {
	return &InvalidPurchaseError{msg: prefix, err: err}
}

func (e *InvalidPurchaseError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + e.err.Error()
}

func (e *InvalidPurchaseError) Unwrap() error {
	return e.err
}

// Reason returns the message of the innermost failure, without layer prefixes
func (e *InvalidPurchaseError) Reason() string {
	var inner *InvalidPurchaseError
	if e.err != nil && errors.As(e.err, &inner) {
		return inner.Reason()
	}
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

// IsInvalidPurchase reports whether err is, or wraps, an InvalidPurchaseError
func IsInvalidPurchase(err error) bool {
	var target *InvalidPurchaseError
	return errors.As(err, &target)
}
