// SPDX-License-Identifier: EPL-2.0

// Package version reports the build version of the binary.
package version

import "runtime/debug"

const fallback = "0.1.0"

// BuildVersion is set at link time:
//
//	go build -ldflags "-X github.com/ik5/deejay/version.BuildVersion=1.4.0"
var BuildVersion string

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Current prefers BuildVersion, then the main module version recorded by the
// go tool, then a fixed fallback.
func Current() string {
	if BuildVersion != "" {
		return BuildVersion
	}

	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return fallback
}
