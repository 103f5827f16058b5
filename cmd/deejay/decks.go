// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"log/slog"

	"github.com/ik5/deejay"
	"github.com/ik5/deejay/audio"
	"github.com/ik5/deejay/formats"
)

var errNoDecks = errors.New("at least one of -a and -b is required")

// openDecks opens the files for deck A and deck B. An empty path leaves
// that deck silent.
func openDecks(sampleRate int, logger *slog.Logger, paths ...string) ([]audio.Source, error) {
	if len(paths) != 2 || (paths[0] == "" && paths[1] == "") {
		return nil, errNoDecks
	}

	reg := formats.NewRegistry()
	decks := make([]audio.Source, 2)

	for i, path := range paths {
		if path == "" {
			continue
		}

		src, err := deejay.OpenDeck(reg, path, sampleRate)
		if err != nil {
			closeAll(decks)
			return nil, err
		}
		decks[i] = src
		logger.Info("deck loaded", "deck", string(rune('A'+i)), "path", path)
	}

	return decks, nil
}

func closeAll(decks []audio.Source) {
	for _, d := range decks {
		if d != nil {
			_ = d.Close()
		}
	}
}
