package packscan

// Format identifies a course-package interoperability standard.
type Format string

const (
	FormatScorm12   Format = "scorm_1.2"
	FormatScorm2004 Format = "scorm_2004"
	FormatXAPI      Format = "xapi"
	FormatCMI5      Format = "cmi5"
	FormatAICC      Format = "aicc"
	FormatHTML5     Format = "html5"
	FormatPDF       Format = "pdf"
	FormatUnknown   Format = "unknown"
)

// Default values applied by Normalize when a manifest yields nothing usable.
const (
	DefaultTitle      = "Untitled Course"
	DefaultEntryPoint = "index.html"
)

// Detection is the outcome of format classification for one package.
// ManifestPath is set only for formats declared by a single marker manifest
// (SCORM, xAPI, cmi5). EntryPoint is set at classification time only for
// HTML5, where the launch page itself is the marker.
type Detection struct {
	Format       Format `json:"format"`
	ManifestPath string `json:"manifest_path,omitempty"`
	EntryPoint   string `json:"entry_point,omitempty"`
	SCORMVersion string `json:"scorm_version,omitempty"`
}

// CourseMetadata is the normalized metadata record for one package.
// After Normalize, Title and EntryPoint are never empty. All other fields
// use their zero value when the source manifest did not provide them.
type CourseMetadata struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EntryPoint      string  `json:"entry_point"`
	Version         string  `json:"version,omitempty"`
	ActivityID      string  `json:"activity_id,omitempty"`
	LaunchURL       string  `json:"launch_url,omitempty"`
	Language        string  `json:"language,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
}

// Result pairs a package's detected format with its normalized metadata.
type Result struct {
	Detection Detection      `json:"detection"`
	Metadata  CourseMetadata `json:"metadata"`
}
