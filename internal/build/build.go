// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the source revision the binary was built from, set by linker flags.
var Commit = ""

// Info returns the version string shown by the CLI.
func Info() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
