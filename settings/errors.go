// SPDX-License-Identifier: EPL-2.0

package settings

import "errors"

var (
	ErrRead            = errors.New("failed to read settings file")
	ErrParse           = errors.New("failed to parse settings file")
	ErrWrite           = errors.New("failed to write settings file")
	ErrInvalidSettings = errors.New("invalid settings")
)
