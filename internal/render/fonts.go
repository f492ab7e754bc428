package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// System font locations tried before the bundled fonts.
const (
	PreferredFontPath = "/System/Library/Fonts/Arial.ttf"
	AlternateFontPath = "/System/Library/Fonts/Helvetica.ttc"
)

// Faces are built at 72 DPI so a point is a pixel.
const fontDPI = 72

// ErrFontUnavailable is returned by a FontSource that cannot produce a face.
var ErrFontUnavailable = errors.New("font unavailable")

// FontSource is one step of the font resolution chain.
type FontSource interface {
	Name() string
	Face(points float64) (font.Face, error)
}

// DefaultFonts is the resolution order used when RenderConfig.Fonts is nil.
func DefaultFonts() []FontSource {
	return []FontSource{
		FileFont{Path: PreferredFontPath},
		FileFont{Path: AlternateFontPath},
		GoRegular(),
		BuiltinFont{},
	}
}

// FileFont loads a TrueType/OpenType file from disk. Collections (.ttc) use
// their first face.
type FileFont struct {
	Path string
}

func (f FileFont) Name() string { return f.Path }

func (f FileFont) Face(points float64) (font.Face, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}

	var parsed *opentype.Font
	if strings.EqualFold(filepath.Ext(f.Path), ".ttc") {
		collection, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("%w: parse collection %s: %v", ErrFontUnavailable, f.Path, cerr)
		}
		parsed, err = collection.Font(0)
	} else {
		parsed, err = opentype.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrFontUnavailable, f.Path, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: points, DPI: fontDPI, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("%w: face %s: %v", ErrFontUnavailable, f.Path, err)
	}
	return face, nil
}

// EmbeddedFont is a TrueType font compiled into the binary.
type EmbeddedFont struct {
	Label string
	TTF   []byte
}

// GoRegular is the Go Regular font from golang.org/x/image.
func GoRegular() EmbeddedFont {
	return EmbeddedFont{Label: "go-regular", TTF: goregular.TTF}
}

func (f EmbeddedFont) Name() string { return f.Label }

func (f EmbeddedFont) Face(points float64) (font.Face, error) {
	tt, err := truetype.Parse(f.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrFontUnavailable, f.Label, err)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: points, DPI: fontDPI, Hinting: font.HintingFull}), nil
}

// BuiltinFont is the fixed 7x13 bitmap face. It ignores the requested size
// and never fails.
type BuiltinFont struct{}

func (BuiltinFont) Name() string { return "basicfont-7x13" }

func (BuiltinFont) Face(float64) (font.Face, error) { return basicfont.Face7x13, nil }

// ResolveFace walks sources in order and returns the first face that loads,
// with the name of the source that produced it. Failures are logged and
// skipped; if every source fails the built-in face is returned.
func ResolveFace(sources []FontSource, points float64, logger Logger) (font.Face, string) {
	for _, src := range sources {
		face, err := src.Face(points)
		if err == nil {
			return face, src.Name()
		}
		if logger != nil {
			logger.Infof("font", "%s skipped: %v", src.Name(), err)
		}
	}
	fallback := BuiltinFont{}
	face, _ := fallback.Face(points)
	return face, fallback.Name()
}
