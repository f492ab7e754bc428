//go:build linux && cgo

package preview

import (
	"context"
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// Show draws img centred on the framebuffer and keeps it up for opts.Hold.
func Show(ctx context.Context, img image.Image, opts Options) error {
	dev, err := fb.Open(DevicePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", DevicePath, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if err := blit(ctx, dev, Compose(img, bounds.Dx(), bounds.Dy())); err != nil {
		return err
	}
	return hold(ctx, opts.Hold)
}
