// CLAUDE:SUMMARY In-memory zip inspector with case-insensitive, depth-tolerant entry lookup.
package packscan

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Archive wraps a zip container held in memory and exposes a normalized,
// case-insensitive view of its entries. Real-world packages frequently wrap
// all content in a single top-level folder, so lookups match an entry either
// at archive root or exactly one path segment down.
type Archive struct {
	reader *zip.Reader
	// names holds the normalized entry paths in archive order.
	names []string
	files map[string]*zip.File
}

// OpenArchive opens package bytes as a zip container.
// Returns ErrCorruptArchive if the bytes are not a valid archive.
func OpenArchive(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}

	a := &Archive{
		reader: zr,
		files:  make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		name := normalizeEntryPath(f.Name)
		if name == "" || strings.HasSuffix(name, "/") {
			continue
		}
		a.names = append(a.names, name)
		a.files[name] = f
	}
	return a, nil
}

// Names returns the normalized entry paths in archive order.
func (a *Archive) Names() []string { return a.names }

// Find looks up an entry by base name, case-insensitively, at archive root
// or one directory level down. Returns the actual entry path.
func (a *Archive) Find(base string) (string, bool) {
	target := strings.ToLower(base)
	// Root entries win over nested ones regardless of archive order.
	for _, name := range a.names {
		if strings.ToLower(name) == target {
			return name, true
		}
	}
	for _, name := range a.names {
		dir, rest, ok := strings.Cut(name, "/")
		if ok && dir != "" && !strings.Contains(rest, "/") && strings.ToLower(rest) == target {
			return name, true
		}
	}
	return "", false
}

// FindSuffix looks up the first entry whose name ends with the given suffix
// (case-insensitive), at archive root or one directory level down.
func (a *Archive) FindSuffix(suffix string) (string, bool) {
	target := strings.ToLower(suffix)
	for _, name := range a.names {
		if strings.Count(name, "/") > 1 {
			continue
		}
		if strings.HasSuffix(strings.ToLower(name), target) {
			return name, true
		}
	}
	return "", false
}

// ReadText reads an entry's content as text.
func (a *Archive) ReadText(path string) (string, error) {
	f, ok := a.files[path]
	if !ok {
		return "", fmt.Errorf("archive entry not found: %s", path)
	}
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open entry %s: %w", path, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read entry %s: %w", path, err)
	}
	return string(data), nil
}

// normalizeEntryPath converts backslash separators (zips produced by Windows
// tooling) to forward slashes and strips leading "./" and "/".
func normalizeEntryPath(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimPrefix(name, "./")
	name = strings.TrimPrefix(name, "/")
	return name
}
