// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source returned by Decoder
// reports two channels regardless of how the file was encoded. Samples are
// normalised to float32 in [-1, 1).
//
//	f, _ := os.Open("deck-a.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	deck := audio.NewResampler(src, 48000)
package mp3
