package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Display constants
const (
	DisplayWidth    = 200
	PlaceholderSize = 200
)

// Request constants
const (
	DefaultTimeout = 15 * time.Second
	MaxImageBytes  = 10 << 20

	// MaxImagePixels bounds the decoded size of a source image
	MaxImagePixels = 4096 * 4096
	UserAgent      = "meal-maker/1.0"
)

// Colors used for placeholders
var (
	// PlaceholderColor fills the image area when a thumbnail is unavailable
	PlaceholderColor = color.RGBA{R: 0xF9, G: 0xED, B: 0xCC, A: 0xFF}

	// InitialColor fills the image area before the first recipe is shown
	InitialColor = color.RGBA{R: 0xFF, G: 0xE4, B: 0xC4, A: 0xFF}
)

// Thumbnail is a display-ready recipe image
type Thumbnail struct {
	Image       image.Image
	Placeholder bool
	// Source dimensions before resampling; zero for placeholders
	SourceWidth  int
	SourceHeight int
}

// Size returns the display size of the image
func (t *Thumbnail) Size() (int, int) {
	if t == nil || t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Service handles thumbnail download and resampling
type Service struct {
	httpClient *http.Client
	width      int
}

// NewService creates a new thumbnail service
func NewService(timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		httpClient: &http.Client{Timeout: timeout},
		width:      DisplayWidth,
	}
}

// SetHTTPClient replaces the underlying HTTP client
func (s *Service) SetHTTPClient(client *http.Client) {
	if client != nil {
		s.httpClient = client
	}
}

// Load fetches, decodes and resamples the image at url
func (s *Service) Load(ctx context.Context, url string) *Thumbnail {
	img, err := s.fetch(ctx, url)
	if err != nil {
		log.Printf("Thumbnail unavailable, using placeholder: %v", err)
		return NewPlaceholder(PlaceholderColor)
	}

	b := img.Bounds()
	return &Thumbnail{
		Image:        Scale(img, s.width),
		SourceWidth:  b.Dx(),
		SourceHeight: b.Dy(),
	}
}

// fetch performs one GET and decodes the body
func (s *Service) fetch(ctx context.Context, url string) (image.Image, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("no thumbnail url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	// Check declared dimensions before allocating pixels
	cfg, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d", cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("Thumbnail decoded: format=%s size=%dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// NewPlaceholder returns a solid square thumbnail of PlaceholderSize
func NewPlaceholder(c color.Color) *Thumbnail {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return &Thumbnail{Image: img, Placeholder: true}
}

// ScaledHeight returns the height preserving aspect ratio for targetWidth.
// Fractions are truncated: 400x300 -> 150, 401x300 -> 149.
func ScaledHeight(width, height, targetWidth int) int {
	if width <= 0 || height <= 0 {
		return targetWidth
	}
	h := targetWidth * height / width
	if h < 1 {
		h = 1
	}
	return h
}

// Scale resamples img to targetWidth with a Lanczos filter
func Scale(img image.Image, targetWidth int) image.Image {
	b := img.Bounds()
	h := ScaledHeight(b.Dx(), b.Dy(), targetWidth)
	return resize.Resize(uint(targetWidth), uint(h), img, resize.Lanczos3)
}
