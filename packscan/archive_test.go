package packscan

import (
	"errors"
	"testing"
)

func TestOpenArchive_Corrupt(t *testing.T) {
	_, err := OpenArchive([]byte("PK\x03\x04 but truncated"))
	if !errors.Is(err, ErrCorruptArchive) {
		t.Fatalf("expected ErrCorruptArchive, got %v", err)
	}
}

func TestArchive_Find(t *testing.T) {
	a, err := OpenArchive(buildZip(t, map[string]string{
		"Course/IMSManifest.XML": "<manifest/>",
		"course/deep/extra.xml":  "<x/>",
		"readme.txt":             "hi",
	}))
	if err != nil {
		t.Fatal(err)
	}

	path, ok := a.Find("imsmanifest.xml")
	if !ok {
		t.Fatal("expected nested manifest to be found")
	}
	if path != "Course/IMSManifest.XML" {
		t.Errorf("path: got %q", path)
	}

	// Two levels down is out of reach.
	if _, ok := a.Find("extra.xml"); ok {
		t.Error("entries two levels down must not match")
	}
}

func TestArchive_FindPrefersRoot(t *testing.T) {
	a, err := OpenArchive(buildZip(t, map[string]string{
		"wrap/imsmanifest.xml": "<nested/>",
		"imsmanifest.xml":      "<root/>",
	}))
	if err != nil {
		t.Fatal(err)
	}
	path, ok := a.Find("imsmanifest.xml")
	if !ok || path != "imsmanifest.xml" {
		t.Fatalf("expected root entry to win, got %q (ok=%v)", path, ok)
	}
}

func TestArchive_FindSuffix(t *testing.T) {
	a, err := OpenArchive(buildZip(t, map[string]string{
		"lessons/intro.AU": "File_Name = intro.htm",
		"notes.txt":        "x",
	}))
	if err != nil {
		t.Fatal(err)
	}
	path, ok := a.FindSuffix(".au")
	if !ok {
		t.Fatal("expected .au descriptor to be found")
	}
	if path != "lessons/intro.AU" {
		t.Errorf("path: got %q", path)
	}
}

func TestNormalizeEntryPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`content\imsmanifest.xml`, "content/imsmanifest.xml"},
		{"./index.html", "index.html"},
		{"/index.html", "index.html"},
		{"plain.txt", "plain.txt"},
	}
	for _, tt := range tests {
		if got := normalizeEntryPath(tt.in); got != tt.want {
			t.Errorf("normalizeEntryPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArchive_ReadText(t *testing.T) {
	a, err := OpenArchive(buildZip(t, map[string]string{"a.txt": "hello"}))
	if err != nil {
		t.Fatal(err)
	}
	text, err := a.ReadText("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if text != "hello" {
		t.Errorf("text: got %q", text)
	}
	if _, err := a.ReadText("missing.txt"); err == nil {
		t.Error("expected error for missing entry")
	}
}
