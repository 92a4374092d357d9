// CLAUDE:SUMMARY xAPI tincan.xml parser — first activity id, name, launch URL.
package packscan

import (
	"encoding/xml"
	"io"
	"strings"
)

// parseTinCan extracts course metadata from a tincan.xml.
//
// Only the first <activity> under <activities> is considered. The standard
// requires its id attribute, but an absent id degrades to an empty string
// rather than failing. <name> may hold plain text or a nested language-string
// child; character data accumulation covers both. A missing <launch> defaults
// to index.html.
func parseTinCan(a *Archive, manifestPath string) (CourseMetadata, error) {
	text, err := a.ReadText(manifestPath)
	if err != nil {
		return CourseMetadata{}, manifestErr(manifestPath, err)
	}

	decoder := xml.NewDecoder(strings.NewReader(text))
	var meta CourseMetadata

	var (
		depth         int
		sawElement    bool
		activitySeen  bool
		inActivity    bool
		activityDepth int

		capture   *strings.Builder
		captureEl string
	)

	for {
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			if !sawElement {
				return CourseMetadata{}, manifestErr(manifestPath, err)
			}
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawElement = true
			depth++
			if depth > maxXMLDepth {
				return CourseMetadata{}, manifestErr(manifestPath, errTooDeep)
			}

			switch t.Name.Local {
			case "activity":
				if !activitySeen {
					activitySeen = true
					inActivity = true
					activityDepth = depth
					for _, attr := range t.Attr {
						if attr.Name.Local == "id" {
							meta.ActivityID = attr.Value
						}
					}
				}
			case "name":
				if inActivity && meta.Title == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = "name"
				}
			case "description":
				if inActivity && meta.Description == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = "description"
				}
			case "launch":
				if inActivity && meta.LaunchURL == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = "launch"
				}
			}

		case xml.CharData:
			if capture != nil {
				capture.Write(t)
			}

		case xml.EndElement:
			if capture != nil && t.Name.Local == captureEl {
				value := strings.TrimSpace(capture.String())
				capture = nil
				switch captureEl {
				case "name":
					meta.Title = collapseSpace(value)
				case "description":
					meta.Description = collapseSpace(value)
				case "launch":
					meta.LaunchURL = value
				}
			}
			if inActivity && t.Name.Local == "activity" && depth == activityDepth {
				inActivity = false
			}
			depth--
		}
	}

	if meta.LaunchURL == "" {
		meta.LaunchURL = DefaultEntryPoint
	}
	meta.EntryPoint = meta.LaunchURL
	return meta, nil
}
