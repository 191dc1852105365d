package controllers

import (
	"mime/multipart"
	"net/http"
	"strings"
)

// maxUploadMemory bounds how much of a multipart body is held in memory;
// larger file parts spill to temp files.
const maxUploadMemory = 32 << 20

// parseForm parses the request body as multipart/form-data when it is, and
// as a urlencoded form otherwise. The admin UI always submits multipart;
// the urlencoded path keeps plain clients working.
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadMemory)
	}
	return r.ParseForm()
}

// formValue reports a field's first value and whether the field was present
// in the request at all. Presence is what distinguishes "set to empty" from
// "leave unchanged" in partial updates.
func formValue(r *http.Request, key string) (string, bool) {
	if vs, ok := r.PostForm[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

// formFile returns the first uploaded file for the field, or nil.
func formFile(r *http.Request, key string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if fhs := r.MultipartForm.File[key]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// formFiles returns all uploaded files for the field.
func formFiles(r *http.Request, key string) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	return r.MultipartForm.File[key]
}

// splitList parses a comma-separated form value into trimmed, non-empty
// items. The admin UI submits products this way.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
