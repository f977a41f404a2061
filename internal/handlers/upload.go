// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"giftshop/internal/observability"
	"giftshop/internal/storage"
)

const (
	// maxUploadSize is the maximum accepted image size (10 MB).
	maxUploadSize = 10 << 20

	defaultUploadFolder = "uploads"
)

// Uploader stores a public object and reports its URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	FileURL(key string) string
}

// allowedImageTypes are the sniffed content types accepted for upload.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// uploadFolders keeps keys grouped by the record the image belongs to.
var uploadFolders = map[string]bool{
	"products":     true,
	"categories":   true,
	"hero-slides":  true,
	"testimonials": true,
	"stories":      true,
}

// Upload handles POST /api/admin/uploads: a multipart form with a "file"
// image and an optional "folder". Responds 201 with the public URL to save
// on the record.
func (a *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	if a.uploads == nil {
		writeError(w, r, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "image storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file too large, maximum size is 10 MB")
			return
		}
		writeError(w, r, http.StatusBadRequest, "INVALID_BODY", "request must be a multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "MISSING_FILE", "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, r, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file too large, maximum size is 10 MB")
		return
	}

	// Detect content type by sniffing; the client's header is not trusted.
	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "INVALID_FILE", "file could not be read")
		return
	}
	contentType := http.DetectContentType(sniff[:n])
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		writeError(w, r, http.StatusBadRequest, "INVALID_FILE_TYPE", "only JPEG, PNG, GIF and WebP images are allowed")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(w, r, err)
		return
	}

	folder := strings.TrimSpace(r.FormValue("folder"))
	if folder == "" {
		folder = defaultUploadFolder
	} else if !uploadFolders[folder] {
		writeError(w, r, http.StatusBadRequest, "INVALID_FOLDER", "unknown upload folder")
		return
	}

	key := storage.ObjectKey(folder, "image"+ext, time.Now())
	if err := a.uploads.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		observability.FromContext(r.Context()).Error("image upload failed",
			zap.String("key", key),
			zap.Error(err),
		)
		writeError(w, r, http.StatusBadGateway, "UPLOAD_FAILED", "failed to upload file")
		return
	}

	observability.FromContext(r.Context()).Info("image uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", header.Size),
	)
	writeJSON(w, r, http.StatusCreated, map[string]string{
		"url": a.uploads.FileURL(key),
		"key": key,
	})
}
