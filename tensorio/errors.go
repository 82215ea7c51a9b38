// SPDX-License-Identifier: MIT

package tensorio

import "errors"

// ErrMalformed indicates input that does not follow the expected format.
var ErrMalformed = errors.New("tensorio: malformed input")
