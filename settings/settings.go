// SPDX-License-Identifier: EPL-2.0

// Package settings persists the audio device configuration of a session.
//
// The file is plain JSON:
//
//	{
//	  "device": "default",
//	  "buffer_frames": 512,
//	  "sample_rate": 48000
//	}
//
// A missing file is not an error; Load falls back to Default.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultPath is where the CLI looks for settings, relative to the working
// directory.
const DefaultPath = "settings.json"

// Settings is the session configuration.
type Settings struct {
	Device       string `json:"device"`
	BufferFrames uint32 `json:"buffer_frames"`
	SampleRate   uint32 `json:"sample_rate"`
}

func Default() Settings {
	return Settings{
		Device:       "default",
		BufferFrames: 512,
		SampleRate:   48000,
	}
}

// Load reads settings from path. A file that does not exist yields Default.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return s, nil
}

// Marshal renders s the way Save writes it.
func (s Settings) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return data, nil
}

func (s Settings) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Validate rejects values the engine cannot run with.
func (s Settings) Validate() error {
	if s.BufferFrames == 0 {
		return fmt.Errorf("%w: buffer_frames must be positive", ErrInvalidSettings)
	}
	if s.SampleRate == 0 {
		return fmt.Errorf("%w: sample_rate must be positive", ErrInvalidSettings)
	}

	return nil
}
