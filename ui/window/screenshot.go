package window

import (
	"image"
	"image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/hajimehoshi/ebiten/v2"
)

// grab copies the pixels of a finished frame.
func grab(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// writeScreenshot saves img scaled up by scale without smoothing.
func writeScreenshot(path string, img image.Image, scale int) error {
	b := img.Bounds()
	if scale > 1 {
		img = transform.Resize(img, b.Dx()*scale, b.Dy()*scale, transform.NearestNeighbor)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
