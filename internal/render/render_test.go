package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/bradley-health/icongen/internal/render/layout"
)

// goFonts pins text rendering to the bundled font so pixels do not depend on
// the host's system fonts.
var goFonts = []FontSource{GoRegular()}

func mustRender(t *testing.T, cfg RenderConfig) *image.RGBA {
	t.Helper()
	if cfg.Fonts == nil {
		cfg.Fonts = goFonts
	}
	img, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render(%d): %v", cfg.Size, err)
	}
	return img
}

func countColor(img *image.RGBA, rect image.Rectangle, want color.RGBA) int {
	n := 0
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestRenderIsSquare(t *testing.T) {
	for _, size := range []int{16, 32, 48, 72, 96, 144, 180, 192, 512} {
		img := mustRender(t, RenderConfig{Size: size, IncludeText: true, TextSizeThresholdPx: 32})
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("size %d: bounds %v", size, b)
		}
	}
}

func TestRenderRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -180} {
		img, err := Render(RenderConfig{Size: size})
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: err = %v, want ErrInvalidSize", size, err)
		}
		if img != nil {
			t.Errorf("size %d: got an image alongside the error", size)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := RenderConfig{Size: 192, IncludeText: true, TextSizeThresholdPx: DefaultTextThreshold}
	a := mustRender(t, cfg)
	b := mustRender(t, cfg)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("identical configs produced different pixels")
	}
}

func TestRenderTextThreshold(t *testing.T) {
	sizes := []int{16, 32, 48, 72, 96, 144, 180, 192, 512}
	for _, threshold := range []int{32, 72} {
		for _, size := range sizes {
			with := mustRender(t, RenderConfig{Size: size, IncludeText: true, TextSizeThresholdPx: threshold})
			without := mustRender(t, RenderConfig{Size: size, IncludeText: false, TextSizeThresholdPx: threshold})
			hasText := !bytes.Equal(with.Pix, without.Pix)
			if want := size >= threshold; hasText != want {
				t.Errorf("threshold %d size %d: text drawn = %v, want %v", threshold, size, hasText, want)
			}
		}
	}
}

func TestRenderFaviconNeverHasText(t *testing.T) {
	with := mustRender(t, RenderConfig{Size: 16, IncludeText: true, TextSizeThresholdPx: 32})
	without := mustRender(t, RenderConfig{Size: 16})
	if !bytes.Equal(with.Pix, without.Pix) {
		t.Fatal("16px render changed when text was requested")
	}
}

func TestRenderLargeBrandedIcon(t *testing.T) {
	const size = 512
	img := mustRender(t, RenderConfig{Size: size, IncludeText: true, TextSizeThresholdPx: 32})
	g := layout.Compute(size)

	if got := img.RGBAAt(0, 0); got != Background {
		t.Errorf("corner = %v, want background %v", got, Background)
	}
	if got := img.RGBAAt(size-1, size-1); got != Background {
		t.Errorf("far corner = %v, want background %v", got, Background)
	}

	// Inside the heart's triangle, below the lowest ECG excursion.
	var sx, sy int
	for _, p := range g.Triangle {
		sx += p.X
		sy += p.Y
	}
	if got := img.RGBAAt(sx/3, sy/3); got != Accent {
		t.Errorf("heart pixel at (%d,%d) = %v, want accent %v", sx/3, sy/3, got, Accent)
	}

	// On the left flat lead of the trace, clear of the heart.
	lead := g.Trace[0]
	if got := img.RGBAAt(lead.X+2, lead.Y); got != Foreground {
		t.Errorf("trace pixel at (%d,%d) = %v, want foreground", lead.X+2, lead.Y, got)
	}

	band := image.Rect(0, g.TextTop, size, size)
	if n := countColor(img, band, Foreground); n == 0 {
		t.Error("no text pixels in the brand band")
	}
	if n := countColor(img, band, Accent); n != 0 {
		t.Errorf("%d heart pixels leaked into the brand band", n)
	}
}

func TestRenderTextIsCentred(t *testing.T) {
	const size = 512
	img := mustRender(t, RenderConfig{Size: size, IncludeText: true, TextSizeThresholdPx: 32})
	g := layout.Compute(size)

	minX, maxX := size, -1
	for y := g.TextTop; y < size; y++ {
		for x := 0; x < size; x++ {
			if img.RGBAAt(x, y) != Background {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	if maxX < 0 {
		t.Fatal("no text drawn")
	}
	left, right := minX, size-1-maxX
	if d := left - right; d < -8 || d > 8 {
		t.Errorf("text margins %d/%d are not balanced", left, right)
	}
}

func TestResolveFaceFallsThrough(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ttf")
	logger := &recordingLogger{}
	sources := []FontSource{FileFont{Path: missing}, FileFont{Path: missing + ".ttc"}, GoRegular(), BuiltinFont{}}

	face, name := ResolveFace(sources, 16, logger)
	defer face.Close()
	if name != "go-regular" {
		t.Errorf("resolved %q, want go-regular", name)
	}
	if len(logger.infos) != 2 {
		t.Errorf("logged %d skips, want 2: %v", len(logger.infos), logger.infos)
	}
}

func TestResolveFaceAlwaysSucceeds(t *testing.T) {
	face, name := ResolveFace(nil, 16, nil)
	if face != basicfont.Face7x13 {
		t.Errorf("empty chain resolved %q, want the built-in face", name)
	}

	face, name = ResolveFace([]FontSource{EmbeddedFont{Label: "broken", TTF: []byte("not a font")}}, 16, nil)
	if face != basicfont.Face7x13 || name != "basicfont-7x13" {
		t.Errorf("broken chain resolved %q", name)
	}
}

func TestFileFontMissing(t *testing.T) {
	_, err := FileFont{Path: filepath.Join(t.TempDir(), "nope.ttf")}.Face(12)
	if !errors.Is(err, ErrFontUnavailable) {
		t.Fatalf("err = %v, want ErrFontUnavailable", err)
	}
}

func TestRenderWithBuiltinFont(t *testing.T) {
	img := mustRender(t, RenderConfig{
		Size:                180,
		IncludeText:         true,
		TextSizeThresholdPx: DefaultTextThreshold,
		Fonts:               []FontSource{BuiltinFont{}},
	})
	g := layout.Compute(180)
	if n := countColor(img, image.Rect(0, g.TextTop, 180, 180), Foreground); n == 0 {
		t.Error("built-in face drew no text")
	}
}

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+format)
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+format)
}
