// CLAUDE:SUMMARY cmi5.xml parser — course block with assignable-unit fallback.
package packscan

import (
	"encoding/xml"
	"io"
	"strings"
)

// parseCMI5 extracts course metadata from a cmi5.xml course structure.
//
// <course> carries the canonical title, description, and activity id; some
// authoring tools omit it or leave it empty, so the parser falls back to the
// first assignable unit — whether a direct child of <courseStructure> or
// nested inside a <block>. Document order makes the block case free: the
// first <au> token encountered is the fallback either way.
func parseCMI5(a *Archive, manifestPath string) (CourseMetadata, error) {
	text, err := a.ReadText(manifestPath)
	if err != nil {
		return CourseMetadata{}, manifestErr(manifestPath, err)
	}

	decoder := xml.NewDecoder(strings.NewReader(text))

	var (
		depth      int
		sawElement bool

		inCourse bool
		inAU     bool
		auSeen   bool

		capture   *strings.Builder
		captureEl string

		courseTitle, courseDesc, courseID string
		auTitle, auURL, auID              string
		language                          string
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
			case "course":
				inCourse = true
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" {
						courseID = attr.Value
					}
				}
			case "au":
				if !auSeen {
					auSeen = true
					inAU = true
					for _, attr := range t.Attr {
						if attr.Name.Local == "id" {
							auID = attr.Value
						}
					}
				}
			case "title":
				if (inCourse && courseTitle == "" || inAU && auTitle == "") && capture == nil {
					capture = &strings.Builder{}
					captureEl = "title"
				}
			case "description":
				if inCourse && courseDesc == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = "description"
				}
			case "url":
				if inAU && auURL == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = "url"
				}
			case "langstring":
				if capture != nil && language == "" {
					for _, attr := range t.Attr {
						if attr.Name.Local == "lang" && attr.Value != "" {
							language = attr.Value
						}
					}
				}
			}

		case xml.CharData:
			if capture != nil {
				capture.Write(t)
			}

		case xml.EndElement:
			if capture != nil && t.Name.Local == captureEl {
				value := collapseSpace(capture.String())
				capture = nil
				switch captureEl {
				case "title":
					if inCourse && courseTitle == "" {
						courseTitle = value
					} else if inAU && auTitle == "" {
						auTitle = value
					}
				case "description":
					courseDesc = value
				case "url":
					auURL = strings.TrimSpace(value)
				}
			}
			switch t.Name.Local {
			case "course":
				inCourse = false
			case "au":
				inAU = false
			}
			depth--
		}
	}

	meta := CourseMetadata{
		Title:       courseTitle,
		Description: courseDesc,
		ActivityID:  courseID,
		LaunchURL:   auURL,
		EntryPoint:  auURL,
		Language:    language,
	}
	if meta.Title == "" {
		meta.Title = auTitle
	}
	if meta.ActivityID == "" {
		meta.ActivityID = auID
	}
	return meta, nil
}
