// CLAUDE:SUMMARY Filename-keyword compliance categorization rules.
package catalog

import "strings"

// Compliance holds the flags derived from an uploaded filename.
type Compliance struct {
	Required      bool `json:"required"`
	NeedsApproval bool `json:"needs_approval"`
}

// requiredKeywords mark mandatory-training content. Constant domain
// knowledge, matched case-insensitively against the uploaded filename.
var requiredKeywords = []string{
	"safety",
	"compliance",
	"harassment",
	"security",
	"privacy",
	"gdpr",
	"hipaa",
}

// approvalKeywords mark content that must not go live without review.
var approvalKeywords = []string{
	"draft",
	"pilot",
	"beta",
	"wip",
}

// Categorize derives compliance flags from the uploaded filename.
func Categorize(filename string) Compliance {
	lower := strings.ToLower(filename)
	var c Compliance
	for _, kw := range requiredKeywords {
		if strings.Contains(lower, kw) {
			c.Required = true
			break
		}
	}
	for _, kw := range approvalKeywords {
		if strings.Contains(lower, kw) {
			c.NeedsApproval = true
			break
		}
	}
	return c
}
