//go:build !linux || !cgo

package preview

import (
	"context"
	"image"
)

func Show(ctx context.Context, img image.Image, opts Options) error {
	return ErrPreviewUnsupported
}
