package m61

import "github.com/pkg/errors"

// ErrDivisionByZero is returned when inverting or dividing by the zero
// residue.
var ErrDivisionByZero = errors.New("m61: division by zero")
