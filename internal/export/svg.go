package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizeSVG draws the supported subset of data (shapes and paths; text is
// skipped) onto a sizePx square.
func RasterizeSVG(data []byte, sizePx int) (*image.RGBA, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("svg: invalid raster size %d", sizePx)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("svg: parse: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errors.New("svg: missing viewBox")
	}
	icon.SetTarget(0, 0, float64(sizePx), float64(sizePx))

	img := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	scanner := rasterx.NewScannerGV(sizePx, sizePx, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(sizePx, sizePx, scanner), 1)
	return img, nil
}

// WriteSVG checks that data rasterizes and writes it to path unchanged.
func WriteSVG(path string, data []byte) error {
	if _, err := RasterizeSVG(data, 32); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := AtomicWrite(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
