// CLAUDE:SUMMARY HTML5 parser — <title> extraction from the located index.html.
package packscan

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseHTML5 extracts course metadata from a bare HTML5 package's launch
// page. golang.org/x/net/html tolerates essentially any byte soup, so a
// missing or empty <title> degrades to the default rather than failing.
func parseHTML5(a *Archive, entryPoint string) (CourseMetadata, error) {
	meta := CourseMetadata{EntryPoint: entryPoint}

	text, err := a.ReadText(entryPoint)
	if err != nil {
		return meta, nil
	}
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return meta, nil
	}
	meta.Title = findHTMLTitle(doc)
	return meta, nil
}

// findHTMLTitle returns the text of the first <title> element.
func findHTMLTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		if n.FirstChild != nil {
			return collapseSpace(n.FirstChild.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findHTMLTitle(c); t != "" {
			return t
		}
	}
	return ""
}
