// CLAUDE:SUMMARY HTTP surface: chi router over the ingestion service with JSON responses.
package ingest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hazyhaar/coursepack/packscan"
)

// Router builds the HTTP API over the service. The caller decides which
// middleware to stack on top (auth, logging).
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Post("/courses/import", func(w http.ResponseWriter, r *http.Request) {
		filename, data, err := readUpload(r)
		if err != nil {
			writeError(w, 400, err)
			return
		}
		res, err := svc.Import(r.Context(), filename, data)
		if err != nil {
			writeError(w, importStatus(err), err)
			return
		}
		code := 201
		if res.Deduplicated {
			code = 200
		}
		writeJSON(w, code, res)
	})

	r.Get("/courses", func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Store.List(r.Context())
		if err != nil {
			writeError(w, 500, err)
			return
		}
		writeJSON(w, 200, list)
	})

	r.Get("/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, 500, err)
			return
		}
		if c == nil {
			writeJSON(w, 404, map[string]string{"error": "course not found"})
			return
		}
		writeJSON(w, 200, c)
	})

	r.Delete("/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, 500, err)
			return
		}
		writeJSON(w, 200, map[string]string{"status": "deleted"})
	})

	return r
}

// importStatus maps ingestion failures to HTTP codes. Malformed uploads are
// the client's problem (422), everything else is ours.
func importStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidFilename):
		return 400
	case errors.Is(err, packscan.ErrCorruptArchive), errors.Is(err, packscan.ErrManifestUnreadable):
		return 422
	default:
		return 500
	}
}

// readUpload accepts either a multipart form with a "file" part or a raw body
// with the filename in the X-Filename header.
func readUpload(r *http.Request) (string, []byte, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", nil, err
		}
		return hdr.Filename, data, nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, err
	}
	return r.Header.Get("X-Filename"), data, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
