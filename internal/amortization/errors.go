package amortization

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the sentinel matched by errors.Is for every
// rejected input, regardless of which parameter failed.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError reports which input was rejected and why. No schedule is
// produced when any parameter is invalid.
type ParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func paramErr(name string, value interface{}, reason string) error {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}
