package controller

import "errors"

// reportedError marks an error that a UI already showed to the operator.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}

	return reportedError{err: err}
}

// IsReported reports whether err was already displayed by a UI.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
