// CLAUDE:SUMMARY Best-effort PDF title enrichment for the single-file document path.
package packscan

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// parsePDFDocument attempts to recover a title from a PDF's first page of
// text. The document path classifies on extension alone, so this is strictly
// best-effort: a broken or non-PDF byte stream returns empty metadata and
// the caller falls through to filename-derived defaults.
func parsePDFDocument(data []byte) CourseMetadata {
	var meta CourseMetadata

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return meta
	}

	for pageNr := 1; pageNr <= ctx.PageCount && meta.Title == ""; pageNr++ {
		for _, line := range strings.Split(extractPDFPageText(ctx, pageNr), "\n") {
			line = collapseSpace(line)
			if line != "" {
				if len(line) > 200 {
					line = line[:200]
				}
				meta.Title = line
				break
			}
		}
	}
	return meta
}

func extractPDFPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream pulls the string operands of Tj/TJ show-text
// operators out of a page content stream.
func textFromContentStream(data []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if !bytes.HasSuffix(line, []byte("Tj")) && !bytes.HasSuffix(line, []byte("TJ")) {
			continue
		}
		for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
			if len(m[1]) > 0 {
				sb.Write(m[1])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
