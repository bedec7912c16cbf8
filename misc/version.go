// Package misc keeps program identity helpers.
package misc

import "runtime/debug"

const appName = "cssb"

// set by the linker during release builds
var appVersion = "development"

// GetAppName returns program name to be used in messages and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return appVersion
}

// GetGitHash returns git revision program was built from, if known.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
