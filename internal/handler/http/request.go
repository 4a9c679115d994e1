package http

import (
	"errors"
	"net/http"
	"strings"
)

// maxUploadSize caps the in-memory part of multipart form parsing.
const maxUploadSize = 10 << 20

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// saveUploadedImage stores the optional "image" form part and returns its
// storage path. A request without an image part yields an empty path, not
// an error.
func (h *Handler) saveUploadedImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	return h.images.Save(r.Context(), header.Filename, file)
}
