//go:build unix

package x11

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/kweiss/xwinctl/internal/platform"
)

func TestRgbaFromZPixmap(t *testing.T) {
	// One pixel: B=0x10, G=0x20, R=0x30, x=0x00
	data := []byte{0x10, 0x20, 0x30, 0x00}
	img := rgbaFromZPixmap(data, 1, 1)
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0x30 || g>>8 != 0x20 || b>>8 != 0x10 {
		t.Errorf("got rgb %#x,%#x,%#x, want 0x30,0x20,0x10", r>>8, g>>8, b>>8)
	}
	if a>>8 != 0xff {
		t.Errorf("alpha should be opaque, got %#x", a>>8)
	}
}

func TestRgbaFromZPixmap_ShortData(t *testing.T) {
	// 2x1 image but only one pixel of data; must not panic
	data := []byte{0x01, 0x02, 0x03, 0x00}
	img := rgbaFromZPixmap(data, 2, 1)
	if img.Bounds().Dx() != 2 {
		t.Errorf("width: got %d", img.Bounds().Dx())
	}
}

func TestCropRect(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 50)

	rect, err := cropRect(bounds, platform.Bounds{X: 10, Y: 10, Width: 20, Height: 20})
	if err != nil {
		t.Fatal(err)
	}
	if rect != image.Rect(10, 10, 30, 30) {
		t.Errorf("got %v", rect)
	}

	// Oversized crop clamps to the image
	rect, err = cropRect(bounds, platform.Bounds{X: 50, Y: 0, Width: 500, Height: 500})
	if err != nil {
		t.Fatal(err)
	}
	if rect != image.Rect(50, 0, 100, 50) {
		t.Errorf("got %v", rect)
	}

	// Fully outside fails
	if _, err := cropRect(bounds, platform.Bounds{X: 200, Y: 200, Width: 10, Height: 10}); err == nil {
		t.Error("expected error for crop outside the window")
	}
}

func TestScaleImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 60))
	dst := scaleImage(src, 0.5)
	if dst.Bounds().Dx() != 50 || dst.Bounds().Dy() != 30 {
		t.Errorf("got %v", dst.Bounds())
	}

	// Tiny scale never collapses to zero
	dst = scaleImage(src, 0.001)
	if dst.Bounds().Dx() < 1 || dst.Bounds().Dy() < 1 {
		t.Errorf("scaled image collapsed: %v", dst.Bounds())
	}
}

func TestEncodeImage_PNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	data, err := encodeImage(img, "png", 0)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("decoded width: got %d", decoded.Bounds().Dx())
	}
}

func TestEncodeImage_DefaultsToPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	data, err := encodeImage(img, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("empty format should produce PNG: %v", err)
	}
}

func TestEncodeImage_JPEGAndBadFormat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, err := encodeImage(img, "jpg", 200); err != nil {
		t.Errorf("jpg with out-of-range quality should fall back to default: %v", err)
	}
	if _, err := encodeImage(img, "bmp", 0); err == nil {
		t.Error("expected error for unsupported format")
	}
}
