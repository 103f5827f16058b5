// SPDX-License-Identifier: EPL-2.0

package version

import (
	"runtime/debug"
	"testing"
)

func TestCurrent(t *testing.T) {
	tests := []struct {
		name  string
		build string
		info  *debug.BuildInfo
		want  string
	}{
		{name: "ldflags wins", build: "2.0.0", info: &debug.BuildInfo{Main: debug.Module{Version: "v1.0.0"}}, want: "2.0.0"},
		{name: "module version", info: &debug.BuildInfo{Main: debug.Module{Version: "v1.0.0"}}, want: "v1.0.0"},
		{name: "devel build", info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, want: fallback},
		{name: "no build info", want: fallback},
	}

	prevBuild, prevRead := BuildVersion, readBuildInfo
	t.Cleanup(func() { BuildVersion, readBuildInfo = prevBuild, prevRead })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			BuildVersion = tt.build
			readBuildInfo = func() (*debug.BuildInfo, bool) { return tt.info, tt.info != nil }

			if got := Current(); got != tt.want {
				t.Errorf("Current() = %q, want %q", got, tt.want)
			}
		})
	}
}
