// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ik5/deejay/bundle"
)

func runBundle(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bundle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	target := fs.String("target", bundle.DefaultTarget(), "target triple to place artifacts under")
	distDir := fs.String("dist-dir", "dist", "output directory")
	binary := fs.String("binary", "", "binary to bundle (default: this executable)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	bin := *binary
	if bin == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating executable: %w", err)
		}
		bin = exe
	}

	plan := bundle.NewPlan(*target, *distDir)
	if err := bundle.Assets(plan, bin); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Bundled assets and runtime dependencies to %s\n", plan.OutputDir())

	return nil
}
