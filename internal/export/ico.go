package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// ICO directory entries store sizes in a byte, with 0 meaning 256.
const maxICOSize = 256

// WriteICO packs imgs into a single multi-resolution ICO file at path.
func WriteICO(path string, imgs []image.Image) error {
	if len(imgs) == 0 {
		return errors.New("ico: no images")
	}
	for _, img := range imgs {
		if b := img.Bounds(); b.Dx() > maxICOSize || b.Dy() > maxICOSize {
			return fmt.Errorf("ico: %dx%d exceeds %dpx", b.Dx(), b.Dy(), maxICOSize)
		}
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, imgs); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
