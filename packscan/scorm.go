// CLAUDE:SUMMARY SCORM imsmanifest.xml parser — title, SCO entry point, schemaversion.
package packscan

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// maxXMLDepth bounds element nesting in all manifest parsers.
const maxXMLDepth = 256

var errTooDeep = errors.New("xml nesting depth exceeded")

// parseScorm extracts course metadata from an imsmanifest.xml.
//
// Title comes from the first title-bearing element under the first
// <organization>; SCORM 1.2 metadata nests <langstring> children there, and
// character data accumulation covers both the plain and the nested form.
// The entry point is the href of the resource referenced by the first
// launchable <item>, falling back to the first SCO resource, then the first
// resource with an href at all.
func parseScorm(a *Archive, manifestPath string) (CourseMetadata, error) {
	text, err := a.ReadText(manifestPath)
	if err != nil {
		return CourseMetadata{}, manifestErr(manifestPath, err)
	}

	decoder := xml.NewDecoder(strings.NewReader(text))
	var meta CourseMetadata

	var (
		depth          int
		sawElement     bool
		inOrganization bool
		itemRef        string

		capture   *strings.Builder
		captureEl string

		firstHref    string
		firstSCOHref string
		resourceHref = make(map[string]string)
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
			// Truncated or partially malformed manifest: keep what we have.
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawElement = true
			depth++
			if depth > maxXMLDepth {
				return CourseMetadata{}, manifestErr(manifestPath, errTooDeep)
			}
			local := t.Name.Local

			switch local {
			case "organization":
				inOrganization = true
			case "title":
				if inOrganization && meta.Title == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = local
				}
			case "description":
				if meta.Description == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = local
				}
			case "schemaversion":
				if meta.Version == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = local
				}
			case "language":
				if meta.Language == "" && capture == nil {
					capture = &strings.Builder{}
					captureEl = local
				}
			case "typicallearningtime":
				if meta.DurationMinutes == 0 && capture == nil {
					capture = &strings.Builder{}
					captureEl = local
				}
			case "item":
				if inOrganization && itemRef == "" {
					for _, attr := range t.Attr {
						if attr.Name.Local == "identifierref" && attr.Value != "" {
							itemRef = attr.Value
						}
					}
				}
			case "resource":
				var id, href, scormType string
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "identifier":
						id = attr.Value
					case "href":
						href = attr.Value
					case "scormtype", "scormType":
						scormType = strings.ToLower(attr.Value)
					}
				}
				if href != "" {
					if id != "" {
						resourceHref[id] = href
					}
					if firstHref == "" {
						firstHref = href
					}
					if firstSCOHref == "" && scormType == "sco" {
						firstSCOHref = href
					}
				}
			}

		case xml.CharData:
			if capture != nil {
				capture.Write(t)
			}

		case xml.EndElement:
			depth--
			if capture != nil && t.Name.Local == captureEl {
				value := strings.TrimSpace(capture.String())
				capture = nil
				switch captureEl {
				case "title":
					meta.Title = collapseSpace(value)
				case "description":
					meta.Description = collapseSpace(value)
				case "schemaversion":
					meta.Version = value
				case "language":
					meta.Language = value
				case "typicallearningtime":
					meta.DurationMinutes = parseClockDuration(value)
				}
			}
			if t.Name.Local == "organization" {
				inOrganization = false
			}
		}
	}

	switch {
	case itemRef != "" && resourceHref[itemRef] != "":
		meta.EntryPoint = resourceHref[itemRef]
	case firstSCOHref != "":
		meta.EntryPoint = firstSCOHref
	default:
		meta.EntryPoint = firstHref
	}

	return meta, nil
}

// scormSchemaVersion scans a manifest for its <schemaversion> text.
// Returns "" when absent or unparseable.
func scormSchemaVersion(text string) string {
	decoder := xml.NewDecoder(strings.NewReader(text))
	var capturing bool
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "schemaversion" {
				capturing = true
			}
		case xml.CharData:
			if capturing {
				sb.Write(t)
			}
		case xml.EndElement:
			if capturing && t.Name.Local == "schemaversion" {
				return strings.TrimSpace(sb.String())
			}
		}
	}
}

// parseClockDuration converts an hh:mm:ss[.frac] value (IMS typical learning
// time) to whole-ish minutes. Returns 0 for anything unparseable.
func parseClockDuration(s string) float64 {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	sec, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}
	return float64(h)*60 + float64(m) + sec/60
}

// collapseSpace folds runs of whitespace (including newlines from nested
// langstring markup) into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
