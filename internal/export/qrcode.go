package export

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 512

// InstallQR encodes the install URL at medium recovery. A non-positive
// sizePx uses the default raster size. Empty URLs yield a nil image.
func InstallQR(url string, sizePx int) (image.Image, error) {
	if url == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr %q: %w", url, err)
	}
	return code.Image(sizePx), nil
}

// WriteQRCode writes the install QR for url to path as PNG and reports
// whether anything was written.
func WriteQRCode(path, url string, sizePx int) (bool, error) {
	img, err := InstallQR(url, sizePx)
	switch {
	case err != nil:
		return false, err
	case img == nil:
		return false, nil
	}
	if err := WritePNG(path, img); err != nil {
		return false, err
	}
	return true, nil
}
