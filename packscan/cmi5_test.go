package packscan

import "testing"

func TestParseCMI5_CourseLevel(t *testing.T) {
	a, err := OpenArchive(buildZip(t, map[string]string{"cmi5.xml": cmi5Manifest}))
	if err != nil {
		t.Fatal(err)
	}
	meta, err := parseCMI5(a, "cmi5.xml")
	if err != nil {
		t.Fatal(err)
	}
	if meta.Title != "Forklift Certification" {
		t.Errorf("title: got %q", meta.Title)
	}
	if meta.ActivityID != "https://example.com/courses/forklift" {
		t.Errorf("activity id: got %q", meta.ActivityID)
	}
	if meta.Description != "Certification prep." {
		t.Errorf("description: got %q", meta.Description)
	}
	if meta.LaunchURL != "au1/index.html" {
		t.Errorf("launch url: got %q", meta.LaunchURL)
	}
	if meta.Language != "en-US" {
		t.Errorf("language: got %q", meta.Language)
	}
}

func TestParseCMI5_AUFallback(t *testing.T) {
	// Some authoring tools omit course-level titles entirely.
	manifest := `<?xml version="1.0"?>
<courseStructure>
  <course id="https://example.com/c1"></course>
  <au id="https://example.com/c1/au1">
    <title><langstring>Lesson One</langstring></title>
    <url>lesson1.html</url>
  </au>
</courseStructure>`
	a, err := OpenArchive(buildZip(t, map[string]string{"cmi5.xml": manifest}))
	if err != nil {
		t.Fatal(err)
	}
	meta, err := parseCMI5(a, "cmi5.xml")
	if err != nil {
		t.Fatal(err)
	}
	if meta.Title != "Lesson One" {
		t.Errorf("title: got %q", meta.Title)
	}
	if meta.ActivityID != "https://example.com/c1" {
		t.Errorf("activity id: got %q", meta.ActivityID)
	}
	if meta.EntryPoint != "lesson1.html" {
		t.Errorf("entry point: got %q", meta.EntryPoint)
	}
}

func TestParseCMI5_BlockNestedAU(t *testing.T) {
	// The fallback AU may sit inside a <block>.
	manifest := `<?xml version="1.0"?>
<courseStructure>
  <block id="https://example.com/c2/b1">
    <title><langstring>Block</langstring></title>
    <au id="https://example.com/c2/au1">
      <title><langstring>Nested Unit</langstring></title>
      <url>nested/start.html</url>
    </au>
  </block>
</courseStructure>`
	a, err := OpenArchive(buildZip(t, map[string]string{"cmi5.xml": manifest}))
	if err != nil {
		t.Fatal(err)
	}
	meta, err := parseCMI5(a, "cmi5.xml")
	if err != nil {
		t.Fatal(err)
	}
	if meta.EntryPoint != "nested/start.html" {
		t.Errorf("entry point: got %q", meta.EntryPoint)
	}
	if meta.ActivityID != "https://example.com/c2/au1" {
		t.Errorf("activity id: got %q", meta.ActivityID)
	}
}
