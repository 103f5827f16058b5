// SPDX-License-Identifier: EPL-2.0

// Package bundle lays out a distributable directory: the binary, the assets
// and runtime trees, and a default settings file.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ik5/deejay/settings"
)

const defaultBinaryName = "deejay"

// Trees copied next to the binary when they exist.
var trees = []string{"assets", "runtime"}

// Plan names where a bundle goes.
type Plan struct {
	Target  string
	DistDir string
}

func NewPlan(target, distDir string) Plan {
	return Plan{Target: target, DistDir: distDir}
}

// OutputDir is DistDir/Target.
func (p Plan) OutputDir() string {
	return filepath.Join(p.DistDir, p.Target)
}

// DefaultTarget returns $TARGET, or a host triple such as
// amd64-unknown-linux.
func DefaultTarget() string {
	if t := os.Getenv("TARGET"); t != "" {
		return t
	}

	return runtime.GOARCH + "-unknown-" + runtime.GOOS
}

// Assets bundles binPath with the trees found in the working directory.
func Assets(plan Plan, binPath string) error {
	return AssetsFrom(plan, binPath, ".")
}

// AssetsFrom is Assets with the assets and runtime trees resolved against
// root.
func AssetsFrom(plan Plan, binPath, root string) error {
	out := plan.OutputDir()
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}

	name := filepath.Base(binPath)
	if name == "." || name == string(filepath.Separator) {
		name = defaultBinaryName
	}
	if err := copyFile(binPath, filepath.Join(out, name)); err != nil {
		return err
	}

	for _, tree := range trees {
		if err := copyTree(filepath.Join(root, tree), filepath.Join(out, tree)); err != nil {
			return err
		}
	}

	return writeDefaultSettings(filepath.Join(out, settings.DefaultPath))
}

// copyTree mirrors from into to. A missing from is not an error.
func copyTree(from, to string) error {
	if _, err := os.Stat(from); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	err := filepath.WalkDir(from, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(from, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(to, rel)

		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		return copyFile(path, dest)
	})
	if err != nil {
		return fmt.Errorf("copying %s: %w", from, err)
	}

	return nil
}

func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	dst, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copying %s: %w", from, err)
	}

	return dst.Close()
}

func writeDefaultSettings(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := settings.Default().Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
