// Package version exposes the build version of carbonreport.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is set at build time with
// -ldflags "-X github.com/gulievsadigg/carbon-emission/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var version = "0.0.0-dev"

// GetVersion returns the build version.
func GetVersion() string {
	return version
}

// IsRelease reports whether v is a valid semantic version without a
// prerelease suffix.
func IsRelease(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}
