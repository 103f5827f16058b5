// SPDX-License-Identifier: EPL-2.0

// Command deejay configures the audio session, bundles a distribution and
// mixes two files, offline or live.
//
//	deejay [global flags]                   print the active settings
//	deejay [global flags] bundle [flags]    lay out dist/<target>
//	deejay [global flags] render [flags]    mix two files into a WAV
//	deejay [global flags] play [flags]      mix two files to the sound card
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/deejay/crashlog"
	"github.com/ik5/deejay/settings"
	"github.com/ik5/deejay/version"
)

type globalFlags struct {
	device       string
	bufferFrames uint
	sampleRate   uint
	save         bool
	crashLog     string
	settingsPath string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var g globalFlags
	fs := flag.NewFlagSet("deejay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&g.device, "device", "", "device identifier to use for audio IO")
	fs.UintVar(&g.bufferFrames, "buffer-frames", 0, "buffer size in frames")
	fs.UintVar(&g.sampleRate, "sample-rate", 0, "sample rate for the session")
	fs.BoolVar(&g.save, "save", false, "persist the overrides to the settings file")
	fs.StringVar(&g.crashLog, "crash-log", "crash.log", "where panics are recorded")
	fs.StringVar(&g.settingsPath, "settings", settings.DefaultPath, "settings file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	defer crashlog.Recover(g.crashLog, version.Current())

	rest := fs.Args()
	cmd := ""
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}

	var err error
	switch cmd {
	case "":
		err = showSettings(fs, g, stdout, logger)
	case "bundle":
		err = runBundle(rest, stdout, stderr)
	case "render", "play":
		var s settings.Settings
		if s, err = loadSettings(fs, g, logger); err != nil {
			break
		}
		if cmd == "render" {
			err = runRender(rest, s, stderr, logger)
		} else {
			err = runPlay(rest, s, g.crashLog, stdin, stdout, stderr, logger)
		}
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Error("deejay failed", "err", err)
		return 1
	}

	return 0
}

// loadSettings reads the settings file and applies the flags that were
// given on the command line.
func loadSettings(fs *flag.FlagSet, g globalFlags, logger *slog.Logger) (settings.Settings, error) {
	s, err := settings.Load(g.settingsPath)
	if err != nil {
		return settings.Settings{}, err
	}
	logger.Debug("settings loaded", "path", g.settingsPath)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			s.Device = g.device
		case "buffer-frames":
			s.BufferFrames = uint32(g.bufferFrames)
		case "sample-rate":
			s.SampleRate = uint32(g.sampleRate)
		}
	})

	if err := s.Validate(); err != nil {
		return settings.Settings{}, err
	}

	if g.save {
		if err := s.Save(g.settingsPath); err != nil {
			return settings.Settings{}, err
		}
		logger.Info("settings saved", "path", g.settingsPath)
	}

	return s, nil
}

func showSettings(fs *flag.FlagSet, g globalFlags, stdout io.Writer, logger *slog.Logger) error {
	s, err := loadSettings(fs, g, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "DeeJay v%s\ndevice: %s\nbuffer_frames: %d\nsample_rate: %d\n",
		version.Current(), s.Device, s.BufferFrames, s.SampleRate)

	return nil
}
