// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid engine config")
	ErrDeckFormat    = errors.New("deck is not stereo at the session rate")
	ErrOutputSize    = errors.New("output must hold whole stereo frames")
)
