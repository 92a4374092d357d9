// CLAUDE:SUMMARY Fallback title derivation from the uploaded filename.
package packscan

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// exportSuffixRe matches trailing format-tag suffixes appended by upstream
// export tooling: a hyphen, the format tag, then an alphanumeric export
// identifier (e.g. "-scorm12-AB12CD"). Both parts must be present; a bare
// format word at the end of a name is part of the title, not an artifact.
var exportSuffixRe = regexp.MustCompile(`(?i)-(scorm12|scorm2004|xapi|cmi5|aicc|raw)-[a-z0-9]+$`)

// DeriveTitle turns an uploaded filename into a human-facing course title:
// extension stripped, export suffix stripped, separators replaced by spaces,
// each word title-cased. Pure string transformation; an empty input yields
// DefaultTitle.
func DeriveTitle(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return DefaultTitle
	}
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return DefaultTitle
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = exportSuffixRe.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = collapseSpace(name)
	if name == "" {
		return DefaultTitle
	}
	// cases.Title returns a stateful Caser; build one per call so DeriveTitle
	// stays safe under concurrent ingestion.
	return cases.Title(language.English).String(name)
}
