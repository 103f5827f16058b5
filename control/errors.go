// SPDX-License-Identifier: EPL-2.0

package control

import "errors"

var (
	ErrInvalidUpdate = errors.New("update does not address a bus parameter")
	ErrInvalidTick   = errors.New("tick interval must be positive")
)
