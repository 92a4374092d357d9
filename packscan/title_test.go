package packscan

import (
	"sync"
	"testing"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"Workplace-Safety-scorm12-AB12CD.zip", "Workplace Safety"},
		{"data_privacy-xapi-77fe.zip", "Data Privacy"},
		{"forklift-cmi5-X1.zip", "Forklift"},
		{"crane-ops-aicc-9Z.zip", "Crane Ops"},
		{"deck-raw-00AA.zip", "Deck"},
		{"annual_review-scorm2004-B2.zip", "Annual Review"},
		{"plain-course.zip", "Plain Course"},
		// A bare format word without an export identifier stays in the title.
		{"bare-aicc.zip", "Bare Aicc"},
		{"intro-to-xapi.zip", "Intro To Xapi"},
		{"no_extension", "No Extension"},
		{"UPPER-CASE.ZIP", "Upper Case"},
		{"nested/dir/Fire-Drill.zip", "Fire Drill"},
		{"", DefaultTitle},
		{"---.zip", DefaultTitle},
	}
	for _, tt := range tests {
		if got := DeriveTitle(tt.filename); got != tt.want {
			t.Errorf("DeriveTitle(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

// WHAT: DeriveTitle runs on every ingestion, from any number of workers.
// WHY: cases.Title casers are stateful; sharing one across goroutines races.
func TestDeriveTitle_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := DeriveTitle("Workplace-Safety-scorm12-AB12CD.zip"); got != "Workplace Safety" {
					t.Errorf("DeriveTitle = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
