// CLAUDE:SUMMARY AICC parser — course.ini key/value pairs plus .au descriptor entry point.
package packscan

import "strings"

// parseAICC extracts course metadata from the AICC structural convention:
// a flat Key = Value course.ini for the title, and the first .au descriptor
// for the launch file. AICC has no single manifest, so absence of either
// file yields the format-level defaults rather than an error.
func parseAICC(a *Archive) (CourseMetadata, error) {
	var meta CourseMetadata

	if path, ok := a.Find("course.ini"); ok {
		if text, err := a.ReadText(path); err == nil {
			fields := parseKeyValueLines(text)
			meta.Title = fields["course_title"]
			meta.Description = fields["course_description"]
			meta.Version = fields["version"]
		}
	}

	if path, ok := a.FindSuffix(".au"); ok {
		if text, err := a.ReadText(path); err == nil {
			fields := parseKeyValueLines(text)
			meta.EntryPoint = fields["file_name"]
		}
	}

	return meta, nil
}

// parseKeyValueLines parses line-oriented "Key = Value" text into a map with
// lower-cased keys. Lines without '=' and comment lines are skipped.
func parseKeyValueLines(text string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if _, dup := fields[key]; !dup {
			fields[key] = strings.TrimSpace(value)
		}
	}
	return fields
}
