// SPDX-License-Identifier: EPL-2.0

package bundle

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ik5/deejay/settings"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestPlan_OutputDir(t *testing.T) {
	t.Parallel()

	p := NewPlan("arm64-unknown-darwin", "dist")
	if got, want := p.OutputDir(), filepath.Join("dist", "arm64-unknown-darwin"); got != want {
		t.Errorf("OutputDir() = %q, want %q", got, want)
	}
}

func TestAssetsFrom_CopiesEverything(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dummy"), "bin")
	writeFile(t, filepath.Join(root, "assets", "a.txt"), "asset")
	writeFile(t, filepath.Join(root, "assets", "skins", "dark.json"), "{}")
	writeFile(t, filepath.Join(root, "runtime", "r.txt"), "runtime")

	plan := NewPlan("test-target", filepath.Join(root, "dist"))
	if err := AssetsFrom(plan, filepath.Join(root, "dummy"), root); err != nil {
		t.Fatalf("AssetsFrom() error = %v", err)
	}

	out := plan.OutputDir()
	for path, want := range map[string]string{
		"dummy":                  "bin",
		"assets/a.txt":           "asset",
		"assets/skins/dark.json": "{}",
		"runtime/r.txt":          "runtime",
	} {
		if got := readFile(t, filepath.Join(out, filepath.FromSlash(path))); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}

	s, err := settings.Load(filepath.Join(out, settings.DefaultPath))
	if err != nil {
		t.Fatalf("settings.Load() error = %v", err)
	}
	if s != settings.Default() {
		t.Errorf("bundled settings = %+v, want defaults", s)
	}
}

func TestAssetsFrom_MissingTreesAreSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "deejay"), "bin")

	plan := NewPlan("t", filepath.Join(root, "dist"))
	if err := AssetsFrom(plan, filepath.Join(root, "deejay"), root); err != nil {
		t.Fatalf("AssetsFrom() error = %v", err)
	}

	for _, tree := range []string{"assets", "runtime"} {
		if _, err := os.Stat(filepath.Join(plan.OutputDir(), tree)); !os.IsNotExist(err) {
			t.Errorf("%s: Stat() error = %v, want not exist", tree, err)
		}
	}
}

func TestAssetsFrom_KeepsExistingSettings(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "deejay"), "bin")

	plan := NewPlan("t", filepath.Join(root, "dist"))
	existing := filepath.Join(plan.OutputDir(), settings.DefaultPath)
	writeFile(t, existing, `{"device":"usb","buffer_frames":64,"sample_rate":96000}`)

	if err := AssetsFrom(plan, filepath.Join(root, "deejay"), root); err != nil {
		t.Fatalf("AssetsFrom() error = %v", err)
	}

	s, err := settings.Load(existing)
	if err != nil {
		t.Fatal(err)
	}
	if s.Device != "usb" {
		t.Errorf("settings overwritten: %+v", s)
	}
}

func TestAssetsFrom_MissingBinary(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	plan := NewPlan("t", filepath.Join(root, "dist"))

	if err := AssetsFrom(plan, filepath.Join(root, "nope"), root); err == nil {
		t.Error("AssetsFrom() error = nil, want error for missing binary")
	}
}

func TestDefaultTarget(t *testing.T) {
	t.Setenv("TARGET", "")
	if got, want := DefaultTarget(), runtime.GOARCH+"-unknown-"+runtime.GOOS; got != want {
		t.Errorf("DefaultTarget() = %q, want %q", got, want)
	}

	t.Setenv("TARGET", "x86_64-pc-windows-msvc")
	if got := DefaultTarget(); got != "x86_64-pc-windows-msvc" {
		t.Errorf("DefaultTarget() = %q, want $TARGET", got)
	}
}
