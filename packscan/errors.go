// CLAUDE:SUMMARY Sentinel errors for packscan: corrupt archive, unreadable manifest.
package packscan

import (
	"errors"
	"fmt"
)

// ErrCorruptArchive is returned when the uploaded bytes cannot be opened as
// a zip container at all. No format is assigned in that case.
var ErrCorruptArchive = errors.New("packscan: corrupt archive")

// ErrManifestUnreadable is returned when a marker file exists but its content
// is not parseable at all (as opposed to merely missing optional fields,
// which never fail). Wrapped with the offending path via manifestErr.
var ErrManifestUnreadable = errors.New("packscan: manifest unreadable")

func manifestErr(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrManifestUnreadable, path, cause)
}
