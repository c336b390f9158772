// Package upload stores company logo images on local disk, resizing them
// server-side before they are persisted.
package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

const jpegQuality = 80

// ImageStore writes processed images beneath a base directory.
type ImageStore struct {
	dir          string
	maxDimension int
}

func NewImageStore(dir string, maxDimension int) *ImageStore {
	return &ImageStore{dir: dir, maxDimension: maxDimension}
}

// SaveLogo validates, resizes and stores an uploaded image. It returns the
// public path of the stored file. Non-image payloads are rejected.
func (s *ImageStore) SaveLogo(data []byte, originalName string) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	resized, err := resizeImage(data, s.maxDimension)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	// Resized logos are always re-encoded as JPEG
	filename := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), sanitizeFilename(originalName))
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, resized, 0o644); err != nil {
		return "", fmt.Errorf("failed to write logo: %w", err)
	}

	return "/uploads/" + filename, nil
}

// resizeImage scales an image down to maxDimension on its longest side,
// preserving aspect ratio, and re-encodes it as JPEG.
func resizeImage(data []byte, maxDimension int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > maxDimension {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else if height > width && height > maxDimension {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeFilename keeps only ASCII alphanumerics, underscores and dashes
// from the base name and drops the extension.
func sanitizeFilename(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.ReplaceAll(base, " ", "_")

	var result strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}
	if result.Len() == 0 {
		return "logo"
	}
	return result.String()
}
