// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrInvalidCapacity = errors.New("parameter channel capacity must be at least 1")
	ErrChannelFull     = errors.New("parameter channel is full")
)
