// SPDX-License-Identifier: MIT
// Package cplx: sentinel errors.
// Callers match them with errors.Is; call sites may wrap with context.

package cplx

import "errors"

// ErrDivisionByZero is returned by Div when the squared modulus of the divisor
// is below DivisionEpsilon.
var ErrDivisionByZero = errors.New("cplx: division by zero")
