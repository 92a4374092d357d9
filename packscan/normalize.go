// CLAUDE:SUMMARY Metadata normalizer — title/entry-point invariant, description sanitizing.
package packscan

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// descPolicy strips all markup from manifest descriptions. Authoring tools
// routinely embed HTML fragments in description fields.
var descPolicy = bluemonday.StrictPolicy()

// Normalize enforces the output invariant on a parser's draft: Title and
// EntryPoint are never empty in the final record. Before settling for
// DefaultTitle, the fallback deriver gets one attempt at producing a better
// title from the original filename.
func Normalize(meta CourseMetadata, sourceFilename string) CourseMetadata {
	if meta.Title == "" || meta.Title == DefaultTitle {
		meta.Title = DeriveTitle(sourceFilename)
	}
	if meta.EntryPoint == "" {
		meta.EntryPoint = DefaultEntryPoint
	}
	if meta.Description != "" {
		sanitized := descPolicy.Sanitize(meta.Description)
		meta.Description = collapseSpace(html.UnescapeString(sanitized))
	}
	meta.Title = strings.TrimSpace(meta.Title)
	if meta.Title == "" {
		meta.Title = DefaultTitle
	}
	return meta
}
