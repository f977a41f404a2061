// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// multipartRequest builds a POST /api/admin/uploads request with one file
// field and optional extra fields.
func multipartRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 200, G: 170, B: 80, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUpload_PNG(t *testing.T) {
	env := newTestEnv(t)
	data := tinyPNG(t)

	rec := httptest.NewRecorder()
	env.Admin.Upload(rec, multipartRequest(t, "photo.PNG", data, map[string]string{"folder": "products"}))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var body map[string]string
	decode(t, rec, &body)

	key := body["key"]
	if !strings.HasPrefix(key, "products/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q", key)
	}
	if body["url"] != "https://cdn.test/"+key {
		t.Errorf("url = %q", body["url"])
	}
	if !bytes.Equal(env.Uploads.objects[key], data) {
		t.Error("stored bytes differ from upload")
	}
	if env.Uploads.types[key] != "image/png" {
		t.Errorf("content type = %q", env.Uploads.types[key])
	}
}

func TestUpload_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		fields   map[string]string
		status   int
		code     string
	}{
		{"no file", "", nil, nil, http.StatusBadRequest, "MISSING_FILE"},
		{"not an image", "notes.png", []byte("just some text pretending"), nil, http.StatusBadRequest, "INVALID_FILE_TYPE"},
		{"unknown folder", "a.png", nil, map[string]string{"folder": "../etc"}, http.StatusBadRequest, "INVALID_FOLDER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			content := tt.content
			if content == nil && tt.filename != "" {
				content = tinyPNG(t)
			}
			rec := httptest.NewRecorder()
			env.Admin.Upload(rec, multipartRequest(t, tt.filename, content, tt.fields))
			wantError(t, rec, tt.status, tt.code)
			if len(env.Uploads.objects) != 0 {
				t.Error("nothing should be stored")
			}
		})
	}
}

func TestUpload_NotConfigured(t *testing.T) {
	env := newTestEnv(t)
	admin := NewAdmin(env.Service, nil, nil)

	rec := httptest.NewRecorder()
	admin.Upload(rec, multipartRequest(t, "a.png", tinyPNG(t), nil))
	wantError(t, rec, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE")
}

func TestUpload_NotMultipart(t *testing.T) {
	env := newTestEnv(t)
	rec := call(t, env.Admin.Upload, http.MethodPost, "/api/admin/uploads", `{"file":"x"}`)
	wantError(t, rec, http.StatusBadRequest, "INVALID_BODY")
}
