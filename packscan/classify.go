// CLAUDE:SUMMARY Priority-ordered format classifier over the archive entry listing.
package packscan

import "strings"

// markerRule binds one format family to its marker-file lookup.
type markerRule struct {
	format Format
	find   func(a *Archive) (string, bool)
}

// markerRules is the fixed classification order. A package may in principle
// carry markers for more than one standard; the first matching rule wins.
// SCORM's manifest is authoritative and checked first; AICC and HTML5 markers
// are structural conventions rather than dedicated manifests and are checked
// last so that e.g. an AICC package shipping an index.html launch page is not
// misclassified as bare HTML5.
var markerRules = []markerRule{
	{FormatScorm12, func(a *Archive) (string, bool) { return a.Find("imsmanifest.xml") }},
	{FormatXAPI, func(a *Archive) (string, bool) { return a.Find("tincan.xml") }},
	{FormatCMI5, func(a *Archive) (string, bool) { return a.Find("cmi5.xml") }},
	{FormatAICC, findAICC},
	{FormatHTML5, func(a *Archive) (string, bool) { return a.Find("index.html") }},
}

func findAICC(a *Archive) (string, bool) {
	if path, ok := a.FindSuffix(".au"); ok {
		return path, true
	}
	return a.Find("course.ini")
}

// Classify inspects the entry listing and returns exactly one Detection.
// FormatUnknown is a valid terminal outcome, not an error.
func Classify(a *Archive) Detection {
	for _, r := range markerRules {
		path, ok := r.find(a)
		if !ok {
			continue
		}
		det := Detection{Format: r.format}
		switch r.format {
		case FormatScorm12, FormatXAPI, FormatCMI5:
			det.ManifestPath = path
		case FormatHTML5:
			det.EntryPoint = path
		}
		if r.format == FormatScorm12 {
			// Exact SCORM version comes from the manifest's schemaversion
			// string; unrecognized or missing defaults to 1.2.
			if text, err := a.ReadText(path); err == nil {
				det.SCORMVersion = scormSchemaVersion(text)
				if isScorm2004(det.SCORMVersion) {
					det.Format = FormatScorm2004
				}
			}
		}
		return det
	}
	return Detection{Format: FormatUnknown}
}

// isScorm2004 reports whether a schemaversion string denotes SCORM 2004.
// The standard uses "2004 <edition>" strings; some tooling emits the
// underlying IMS CAM version "1.3".
func isScorm2004(version string) bool {
	return strings.Contains(version, "2004") || strings.Contains(version, "1.3")
}
