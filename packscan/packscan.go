// CLAUDE:SUMMARY Core pipeline engine that classifies and parses course packages by format (SCORM, xAPI, cmi5, AICC, HTML5, PDF).
// Package packscan classifies uploaded course packages and extracts
// normalized metadata from their manifests.
//
// Supported formats:
//   - SCORM 1.2 / 2004 — archive/zip → imsmanifest.xml (version from <schemaversion>)
//   - xAPI            — archive/zip → tincan.xml
//   - cmi5            — archive/zip → cmi5.xml
//   - AICC            — archive/zip → course.ini + *.au descriptors
//   - HTML5           — archive/zip → index.html launch page
//   - PDF             — single document file, classified by extension alone
//
// Classification is priority-ordered: a package carrying markers for more
// than one standard resolves to the first matching rule. Unknown is a valid
// terminal outcome, never an error. Missing optional manifest fields are
// silently defaulted; only a structurally unreadable marker file fails.
//
// Usage:
//
//	pipe := packscan.New(packscan.Config{})
//	res, err := pipe.Inspect(ctx, "Workplace-Safety-scorm12-AB12CD.zip", data)
//	fmt.Println(res.Detection.Format, res.Metadata.Title)
package packscan

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Pipeline is the package inspection engine. It is stateless across calls
// and safe for concurrent use.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{
		cfg:    cfg,
		logger: cfg.Logger,
	}
}

// Inspect classifies one uploaded package and extracts its normalized
// metadata. filename is used only for the document short-circuit and for
// fallback title derivation; data is the raw uploaded bytes.
func (p *Pipeline) Inspect(ctx context.Context, filename string, data []byte) (*Result, error) {
	if int64(len(data)) > p.cfg.MaxArchiveBytes {
		return nil, fmt.Errorf("package too large: %d bytes (max %d)", len(data), p.cfg.MaxArchiveBytes)
	}

	// Document short-circuit: a recognized document extension never touches
	// the archive inspector, even if the bytes happen to be a valid zip.
	if isDocumentFilename(filename) {
		meta := parsePDFDocument(data)
		return &Result{
			Detection: Detection{Format: FormatPDF},
			Metadata:  Normalize(meta, filename),
		}, nil
	}

	archive, err := OpenArchive(data)
	if err != nil {
		return nil, err
	}

	det := Classify(archive)
	p.logger.Debug("classified package", "filename", filename, "format", det.Format, "manifest", det.ManifestPath)

	var meta CourseMetadata
	switch det.Format {
	case FormatScorm12, FormatScorm2004:
		meta, err = parseScorm(archive, det.ManifestPath)
	case FormatXAPI:
		meta, err = parseTinCan(archive, det.ManifestPath)
	case FormatCMI5:
		meta, err = parseCMI5(archive, det.ManifestPath)
	case FormatAICC:
		meta, err = parseAICC(archive)
	case FormatHTML5:
		meta, err = parseHTML5(archive, det.EntryPoint)
	case FormatUnknown:
		// No parser runs; the normalizer supplies the defaults.
	}
	if err != nil {
		return nil, err
	}

	if det.SCORMVersion != "" && meta.Version == "" {
		meta.Version = det.SCORMVersion
	}

	return &Result{
		Detection: det,
		Metadata:  Normalize(meta, filename),
	}, nil
}

// isDocumentFilename reports whether the filename indicates a single-file
// document upload rather than a package archive.
func isDocumentFilename(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

// SupportedFormats returns all classifiable formats in priority order.
func SupportedFormats() []Format {
	return []Format{
		FormatScorm12, FormatScorm2004, FormatXAPI,
		FormatCMI5, FormatAICC, FormatHTML5, FormatPDF,
	}
}
