// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agrosan/site/internal/imaging"
	"github.com/agrosan/site/internal/util"
)

// maxUploadSize caps image uploads at 10 MB.
const maxUploadSize = 10 << 20

// Media handles admin photo uploads for products and news.
type Media struct {
	processor *imaging.Processor
}

// NewMedia creates the media upload handler.
func NewMedia(processor *imaging.Processor) *Media {
	return &Media{processor: processor}
}

// Upload handles POST /api/admin/media. The original is normalized and
// saved together with its resized variants under a fresh UUID.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("reading upload", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	if mime := h.processor.DetectMimeType(data); !h.processor.IsSupportedType(mime) {
		writeJSONError(w, http.StatusUnsupportedMediaType, "unsupported file type: "+mime)
		return
	}

	id := uuid.NewString()
	filename := safeUploadName(header.Filename)

	result, err := h.processor.ProcessImage(bytes.NewReader(data), id, filename)
	if err != nil {
		slog.Error("processing upload", "error", err)
		writeJSONError(w, http.StatusUnprocessableEntity, "failed to process image")
		return
	}

	variants, err := h.processor.CreateAllVariants(result.FilePath, id, filename)
	if err != nil {
		slog.Error("creating image variants", "id", id, "error", err)
	}

	urls := map[string]string{"original": "/uploads/originals/" + id + "/" + filename}
	for _, v := range variants {
		urls[v.Type] = "/uploads/" + v.Type + "/" + id + "/" + filename
	}

	slog.Info("media uploaded", "id", id, "file", filename,
		"width", result.Width, "height", result.Height, "size", result.Size)
	writeJSONSuccess(w, map[string]any{
		"id":     id,
		"urls":   urls,
		"width":  result.Width,
		"height": result.Height,
	})
}

// Delete handles DELETE /api/admin/media/{id}.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid media id")
		return
	}
	if err := h.processor.DeleteMediaFiles(id); err != nil {
		slog.Error("deleting media", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to delete media")
		return
	}
	slog.Info("media deleted", "id", id)
	writeJSONSuccess(w, nil)
}

// safeUploadName keeps the extension but replaces the base name with a
// slugified form so uploads never smuggle odd characters into URLs.
func safeUploadName(name string) string {
	ext := filepath.Ext(name)
	base := util.Slugify(name[:len(name)-len(ext)])
	if base == "" {
		base = "image"
	}
	return base + ext
}
