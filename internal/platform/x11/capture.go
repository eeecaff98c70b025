//go:build unix

package x11

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/jezek/xgb/xproto"
	"golang.org/x/image/draw"

	"github.com/kweiss/xwinctl/internal/platform"
)

// CaptureWindow grabs a window's pixels with GetImage and encodes them.
// The window must be viewable; the X server cannot read unmapped pixels.
func (c *Conn) CaptureWindow(opts platform.ScreenshotOptions) ([]byte, error) {
	id := xproto.Window(opts.WindowID)

	geom, err := xproto.GetGeometry(c.x, xproto.Drawable(id)).Reply()
	if err != nil {
		return nil, fmt.Errorf("window %#x geometry: %w", opts.WindowID, err)
	}

	reply, err := xproto.GetImage(c.x, xproto.ImageFormatZPixmap, xproto.Drawable(id),
		0, 0, geom.Width, geom.Height, 0xffffffff).Reply()
	if err != nil {
		return nil, fmt.Errorf("capture window %#x: %w", opts.WindowID, err)
	}
	if reply.Depth != 24 && reply.Depth != 32 {
		return nil, fmt.Errorf("unsupported pixmap depth %d", reply.Depth)
	}

	img := rgbaFromZPixmap(reply.Data, int(geom.Width), int(geom.Height))

	if opts.Crop != nil {
		rect, err := cropRect(img.Bounds(), *opts.Crop)
		if err != nil {
			return nil, err
		}
		img = img.SubImage(rect).(*image.RGBA)
	}

	if opts.Scale > 0 && opts.Scale != 1.0 {
		img = scaleImage(img, opts.Scale)
	}

	return encodeImage(img, opts.Format, opts.Quality)
}

// rgbaFromZPixmap converts the server's 32-bit BGRx scanlines to RGBA.
func rgbaFromZPixmap(data []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	n := width * height * 4
	if len(data) < n {
		n = len(data) &^ 3
	}
	for i := 0; i < n; i += 4 {
		img.Pix[i+0] = data[i+2] // R
		img.Pix[i+1] = data[i+1] // G
		img.Pix[i+2] = data[i+0] // B
		img.Pix[i+3] = 0xff
	}
	return img
}

// cropRect clamps a requested crop to the image bounds.
func cropRect(bounds image.Rectangle, crop platform.Bounds) (image.Rectangle, error) {
	rect := image.Rect(crop.X, crop.Y, crop.X+crop.Width, crop.Y+crop.Height)
	rect = rect.Intersect(bounds)
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("crop region %d,%d,%d,%d is outside the window",
			crop.X, crop.Y, crop.Width, crop.Height)
	}
	return rect, nil
}

func scaleImage(src *image.RGBA, scale float64) *image.RGBA {
	sb := src.Bounds()
	w := int(float64(sb.Dx()) * scale)
	h := int(float64(sb.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	return dst
}

func encodeImage(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "", "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("png encode: %w", err)
		}
	case "jpg", "jpeg":
		if quality <= 0 || quality > 100 {
			quality = 80
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("jpeg encode: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format %q (use png or jpg)", format)
	}
	return buf.Bytes(), nil
}
