// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The channel count and rate come from the stream header; samples arrive
// already interleaved as float32, so reads are a straight copy.
package vorbis
