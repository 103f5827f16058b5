// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays a Stream on the default output device.
type Player struct {
	mu     sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

// Open creates the device context for stereo float32 output at sampleRate
// with about bufferFrames of latency. Only one context may exist per
// process.
func Open(sampleRate, bufferFrames int, stream *Stream) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(bufferFrames) * time.Second / time.Duration(sampleRate),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(stream),
	}, nil
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.player.Play()
}

// Playing reports whether the device is still pulling from the stream.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.player.IsPlaying()
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
