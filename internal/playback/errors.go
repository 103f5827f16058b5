// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var ErrUnavailable = errors.New("audio output not available in headless builds")
