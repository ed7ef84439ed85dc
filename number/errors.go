// SPDX-License-Identifier: MIT

package number

import "errors"

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("number: division by zero")
