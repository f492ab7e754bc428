package preview

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/bradley-health/icongen/internal/render"
)

// DevicePath is the framebuffer the preview draws to.
const DevicePath = "/dev/fb0"

// ErrPreviewUnsupported is returned on platforms without a framebuffer.
var ErrPreviewUnsupported = errors.New("framebuffer preview is only supported on linux")

// Options controls how long the preview stays up.
type Options struct {
	Hold time.Duration
}

// Compose centres img on a width x height frame filled with the icon
// background, scaled with nearest-neighbour sampling to the shorter side.
func Compose(img image.Image, width, height int) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: render.Background}, image.Point{}, draw.Src)

	side := min(width, height)
	if side <= 0 || img.Bounds().Empty() {
		return frame
	}
	x := (width - side) / 2
	y := (height - side) / 2
	destinationRect := image.Rect(x, y, x+side, y+side)
	xdraw.NearestNeighbor.Scale(frame, destinationRect, img, img.Bounds(), xdraw.Over, nil)
	return frame
}

// blit copies frame onto dst pixel by pixel, forcing opaque alpha.
func blit(ctx context.Context, dst draw.Image, frame *image.RGBA) error {
	bounds := dst.Bounds()
	width := min(bounds.Dx(), frame.Bounds().Dx())
	height := min(bounds.Dy(), frame.Bounds().Dy())
	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < width; x++ {
			pixel := frame.RGBAAt(x, y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}

func hold(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
