package httperr

import "errors"

// BusinessError is an expected rejection the customer can act on.
type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail != "" {
		return e.Code + ": " + e.Detail
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessDetail(code, detail string) error {
	return BusinessError{Code: code, Detail: detail}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError when it carries one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
