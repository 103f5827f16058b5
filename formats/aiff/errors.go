// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrUnsupportedBitDepth   = errors.New("only 16 and 24-bit PCM AIFF is supported")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
