package ingest

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func postRaw(t *testing.T, srv *httptest.Server, filename string, data []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest("POST", srv.URL+"/courses/import", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("X-Filename", filename)
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	return resp
}

func decodeResult(t *testing.T, resp *http.Response) ImportResult {
	t.Helper()
	defer resp.Body.Close()
	var res ImportResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res
}

func TestRouter_ImportAndFetch(t *testing.T) {
	svc := newTestService(t)
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	data := buildZip(t, map[string]string{"imsmanifest.xml": testManifest})

	resp := postRaw(t, srv, "fire-safety.zip", data)
	if resp.StatusCode != 201 {
		t.Fatalf("import status = %d, want 201", resp.StatusCode)
	}
	res := decodeResult(t, resp)
	if res.Course.Title != "Fire Safety Basics" {
		t.Fatalf("title = %q", res.Course.Title)
	}

	// Re-upload: same bytes come back 200 with the existing record.
	resp = postRaw(t, srv, "fire-safety.zip", data)
	if resp.StatusCode != 200 {
		t.Fatalf("re-import status = %d, want 200", resp.StatusCode)
	}
	dup := decodeResult(t, resp)
	if !dup.Deduplicated || dup.Course.ID != res.Course.ID {
		t.Fatalf("expected dedup of %s, got %+v", res.Course.ID, dup)
	}

	get, err := srv.Client().Get(srv.URL + "/courses/" + res.Course.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if get.StatusCode != 200 {
		t.Fatalf("get status = %d", get.StatusCode)
	}
	get.Body.Close()

	list, err := srv.Client().Get(srv.URL + "/courses")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer list.Body.Close()
	var courses []json.RawMessage
	if err := json.NewDecoder(list.Body).Decode(&courses); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("list has %d courses, want 1", len(courses))
	}
}

func TestRouter_ImportMultipart(t *testing.T) {
	svc := newTestService(t)
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "onboarding.zip")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write(buildZip(t, map[string]string{"index.html": "<html><head><title>Onboarding</title></head></html>"}))
	mw.Close()

	resp, err := srv.Client().Post(srv.URL+"/courses/import", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	res := decodeResult(t, resp)
	if res.Course.Format != "html5" {
		t.Fatalf("format = %q, want html5", res.Course.Format)
	}
	if res.Course.SourceFilename != "onboarding.zip" {
		t.Fatalf("source filename = %q", res.Course.SourceFilename)
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	svc := newTestService(t)
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	// Corrupt archive is the client's fault.
	resp := postRaw(t, srv, "broken.zip", []byte("not a zip"))
	if resp.StatusCode != 422 {
		t.Fatalf("corrupt status = %d, want 422", resp.StatusCode)
	}
	resp.Body.Close()

	// Path components in the filename are rejected outright.
	resp = postRaw(t, srv, "../evil.zip", []byte("x"))
	if resp.StatusCode != 400 {
		t.Fatalf("invalid filename status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown course ID.
	get, err := srv.Client().Get(srv.URL + "/courses/crs_missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if get.StatusCode != 404 {
		t.Fatalf("missing course status = %d, want 404", get.StatusCode)
	}
	get.Body.Close()
}

func TestRouter_Delete(t *testing.T) {
	svc := newTestService(t)
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	data := buildZip(t, map[string]string{"index.html": "<html></html>"})
	res := decodeResult(t, postRaw(t, srv, "intro.zip", data))

	req, _ := http.NewRequest("DELETE", srv.URL+"/courses/"+res.Course.ID, nil)
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	get, _ := srv.Client().Get(srv.URL + "/courses/" + res.Course.ID)
	if get.StatusCode != 404 {
		t.Fatalf("deleted course still returns %d", get.StatusCode)
	}
	get.Body.Close()
}

func TestBasicAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	handler := BasicAuth("admin", string(hash))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
	}))
	srv := httptest.NewServer(handler)
	defer srv.Close()

	cases := []struct {
		name, user, pass string
		want             int
	}{
		{"valid", "admin", "s3cret", 200},
		{"wrong password", "admin", "nope", 401},
		{"wrong user", "root", "s3cret", 401},
		{"no credentials", "", "", 401},
	}
	for _, tc := range cases {
		req, _ := http.NewRequest("GET", srv.URL, nil)
		if tc.user != "" {
			req.SetBasicAuth(tc.user, tc.pass)
		}
		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if resp.StatusCode != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, resp.StatusCode, tc.want)
		}
		resp.Body.Close()
	}
}

func TestBasicAuth_DisabledWhenUnset(t *testing.T) {
	handler := BasicAuth("", "")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
	}))
	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200 with auth disabled", resp.StatusCode)
	}
	resp.Body.Close()
}
