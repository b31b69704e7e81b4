package version

import (
	_ "embed"
)

//go:embed VERSION
var version string

// Get reports the build version embedded from the VERSION file.
func Get() string {
	return version
}
