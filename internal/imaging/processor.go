// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging processes uploaded product and news photos: EXIF
// auto-rotation, format normalization and resized variants, all in pure Go.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// VariantConfig describes a resized rendition of an upload.
type VariantConfig struct {
	Width   int
	Height  int
	Quality int
	Crop    bool
}

// Variants are the renditions created for every upload. Thumb is cropped
// for uniform listing cards; large keeps the aspect ratio for detail pages.
var Variants = map[string]VariantConfig{
	"thumb": {Width: 480, Height: 360, Quality: 82, Crop: true},
	"large": {Width: 1600, Height: 1200, Quality: 88, Crop: false},
}

// ProcessResult contains the result of processing an uploaded image.
type ProcessResult struct {
	Width    int
	Height   int
	MimeType string
	Size     int64
	FilePath string
}

// VariantResult contains the result of creating an image variant.
type VariantResult struct {
	Type     string
	Width    int
	Height   int
	Size     int64
	FilePath string
}

// Processor handles image processing for the uploads directory.
type Processor struct {
	uploadDir string
}

// NewProcessor creates a new image processor rooted at uploadDir.
func NewProcessor(uploadDir string) *Processor {
	return &Processor{uploadDir: uploadDir}
}

// ProcessImage decodes an upload, applies its EXIF orientation, strips
// metadata by re-encoding and saves the normalized original under
// originals/{id}/.
func (p *Processor) ProcessImage(reader io.Reader, id, filename string) (*ProcessResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	format := detectFormat(data)
	if format == "" {
		return nil, fmt.Errorf("unsupported image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))

	bounds := img.Bounds()

	processed, err := encodeImage(img, format, 95)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	filePath, err := p.saveImageFile(filepath.Join("originals", id), filename, processed)
	if err != nil {
		return nil, fmt.Errorf("failed to save original image: %w", err)
	}

	return &ProcessResult{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		MimeType: formatToMimeType(format),
		Size:     int64(len(processed)),
		FilePath: filePath,
	}, nil
}

// CreateVariant creates one resized rendition. Returns nil when the source
// is already smaller than the target and no crop is requested.
func (p *Processor) CreateVariant(sourcePath, id, filename string, cfg VariantConfig, variantType string) (*VariantResult, error) {
	img, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= cfg.Width && bounds.Dy() <= cfg.Height && !cfg.Crop {
		return nil, nil
	}

	var resized image.Image
	if cfg.Crop {
		resized = imaging.Fill(img, cfg.Width, cfg.Height, imaging.Center, imaging.Lanczos)
	} else {
		resized = imaging.Fit(img, cfg.Width, cfg.Height, imaging.Lanczos)
	}

	format := detectFormatFromFilename(filename)
	processed, err := encodeImage(resized, format, cfg.Quality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode variant: %w", err)
	}

	variantPath, err := p.saveImageFile(filepath.Join(variantType, id), filename, processed)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s variant: %w", variantType, err)
	}

	resBounds := resized.Bounds()
	return &VariantResult{
		Type:     variantType,
		Width:    resBounds.Dx(),
		Height:   resBounds.Dy(),
		Size:     int64(len(processed)),
		FilePath: variantPath,
	}, nil
}

// CreateAllVariants creates every configured rendition, continuing past
// individual failures.
func (p *Processor) CreateAllVariants(sourcePath, id, filename string) ([]*VariantResult, error) {
	var results []*VariantResult
	var errs []string

	for variantType, cfg := range Variants {
		result, err := p.CreateVariant(sourcePath, id, filename, cfg, variantType)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", variantType, err))
			continue
		}
		if result != nil {
			results = append(results, result)
		}
	}

	if len(errs) > 0 && len(results) == 0 {
		return nil, fmt.Errorf("all variants failed: %s", strings.Join(errs, "; "))
	}
	return results, nil
}

// DeleteMediaFiles removes the original and every variant of an upload.
func (p *Processor) DeleteMediaFiles(id string) error {
	dirs := []string{filepath.Join("originals", id)}
	for variantType := range Variants {
		dirs = append(dirs, filepath.Join(variantType, id))
	}
	for _, d := range dirs {
		if err := os.RemoveAll(filepath.Join(p.uploadDir, d)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete %s: %w", d, err)
		}
	}
	return nil
}

// DetectMimeType detects the MIME type of image data.
func (p *Processor) DetectMimeType(data []byte) string {
	contentType := http.DetectContentType(data)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return contentType
}

// IsSupportedType reports whether a MIME type can be processed.
func (p *Processor) IsSupportedType(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

// applyOrientation applies an EXIF orientation transform (values 1-8).
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func encodeImage(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	default:
		// WebP has no pure Go encoder; it re-encodes as JPEG like every
		// other format here.
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// detectFormat detects the image format from raw bytes.
func detectFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	// Explicitly reject TIFF (CVE-2023-36308 in disintegration/imaging)
	if strings.Contains(contentType, "tiff") {
		return ""
	}
	switch {
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return ""
	}
}

func detectFormatFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "png"
	default:
		return "jpeg"
	}
}

func formatToMimeType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// saveImageFile writes image data under uploadDir, guarding against path
// traversal in both the subdirectory and the filename.
func (p *Processor) saveImageFile(subDir, filename string, data []byte) (string, error) {
	safeFilename := filepath.Base(filename)
	if safeFilename == "." || safeFilename == ".." || safeFilename == "" {
		return "", fmt.Errorf("invalid filename")
	}

	cleanSubDir := filepath.Clean(subDir)
	if strings.Contains(cleanSubDir, "..") || filepath.IsAbs(cleanSubDir) {
		return "", fmt.Errorf("invalid subdirectory path")
	}

	absBase, err := filepath.Abs(p.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	absTarget := filepath.Join(absBase, cleanSubDir)

	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("path traversal detected")
	}

	if err := os.MkdirAll(absTarget, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	filePath := filepath.Join(absTarget, safeFilename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return filePath, nil
}
