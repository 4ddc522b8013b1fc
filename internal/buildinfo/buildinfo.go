// Package buildinfo prints the build banner fed through ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Print writes the build banner to w. Empty values render as "N/A".
// main passes stderr so the banner stays off the report stream.
func Print(w io.Writer, version, date, commit string) {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", version)
	fmt.Fprintf(w, "Build date: %s\n", date)
	fmt.Fprintf(w, "Build commit: %s\n", commit)
}
