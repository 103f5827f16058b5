// SPDX-License-Identifier: EPL-2.0

//go:build headless

package playback

// Player is unavailable in headless builds.
type Player struct{}

func Open(int, int, *Stream) (*Player, error) { return nil, ErrUnavailable }

func (*Player) Play()         {}
func (*Player) Playing() bool { return false }
func (*Player) Close() error  { return nil }
