// Package debug provides developer utilities for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
)

// Screenshotter writes framebuffer contents to timestamped PNG files.
type Screenshotter struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotter creates a screenshotter writing into outputDir.
func NewScreenshotter(outputDir, prefix string) *Screenshotter {
	if prefix == "" {
		prefix = "folio"
	}
	return &Screenshotter{outputDir: outputDir, prefix: prefix, now: time.Now}
}

// SetOutputDir sets the output directory for screenshots.
func (s *Screenshotter) SetOutputDir(dir string) {
	s.outputDir = dir
}

// Filename returns the path the next capture would be written to.
func (s *Screenshotter) Filename() string {
	name := fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format("2006-01-02_15-04-05.000"))
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}

// CaptureFromPixels saves bottom-up RGBA pixels as read back from OpenGL.
func (s *Screenshotter) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRGBA(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.CaptureFromImage(img)
}

// CaptureFromImage saves img as PNG and returns the path written.
func (s *Screenshotter) CaptureFromImage(img image.Image) (path string, err error) {
	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path = s.Filename()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}

// FlipRGBA copies bottom-up RGBA rows into a top-down image.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		dst := y * img.Stride
		copy(img.Pix[dst:dst+row], pixels[src:src+row])
	}
	return img, nil
}
