// SPDX-License-Identifier: MIT

package field

import "github.com/katalvlaran/lvmath/number"

// ErrDivisionByZero is shared with package number so callers can match
// either source with a single errors.Is.
var ErrDivisionByZero = number.ErrDivisionByZero
