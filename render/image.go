package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/bamode/mandelbrot/fractal"
)

// rgbImage adapts the flat RGB pixel buffer to image.Image so the stock
// encoders can serialize it without copying into an RGBA buffer first.
type rgbImage struct {
	pixels []byte
	bounds fractal.Bounds
}

func (m *rgbImage) ColorModel() color.Model { return color.RGBAModel }

func (m *rgbImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.bounds.Width, m.bounds.Height)
}

func (m *rgbImage) At(x, y int) color.Color {
	pix := (y*m.bounds.Width + x) * 3
	return color.RGBA{R: m.pixels[pix], G: m.pixels[pix+1], B: m.pixels[pix+2], A: 255}
}

// WriteImage encodes the pixel buffer to fileName, choosing the format
// from the file extension: .png, .jpg/.jpeg, .bmp or .tif/.tiff. A write
// or encoding failure is returned as-is and aborts the invocation; no
// partially written file is cleaned up.
func WriteImage(pixels []byte, bounds fractal.Bounds, fileName string) error {
	if len(pixels) != bounds.Width*bounds.Height*3 {
		return fmt.Errorf("pixel buffer is %d bytes, want %d for %s", len(pixels), bounds.Width*bounds.Height*3, bounds)
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create image %s - %s", fileName, err)
	}

	img := &rgbImage{pixels: pixels, bounds: bounds}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	case ".bmp":
		err = bmp.Encode(file, img)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, nil)
	default:
		file.Close()
		return fmt.Errorf("unknown image format for %s (want .png, .jpg, .bmp or .tif)", fileName)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("unable to encode image %s - %s", fileName, err)
	}
	return file.Close()
}
