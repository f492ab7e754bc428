package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/bradley-health/icongen/internal/assets"
	"github.com/bradley-health/icongen/internal/export"
	"github.com/bradley-health/icongen/internal/render"
)

const (
	FaviconICOName = "favicon.ico"
	FaviconSVGName = "favicon.svg"
	InstallQRName  = "install-qr.png"
	installQRSize  = 512
)

type App struct {
	OutDir        string
	TextThreshold int
	InstallURL    string
	Set           IconSet
	Logger        Logger

	// Fonts overrides the text font chain; nil uses render.DefaultFonts.
	Fonts []render.FontSource

	// PreviewFunc, when set, receives the largest app icon after it is saved.
	PreviewFunc func(ctx context.Context, img image.Image) error
}

func New(outDir string, textThreshold int) *App {
	return &App{OutDir: outDir, TextThreshold: textThreshold, Set: DefaultIconSet(), Logger: NoopLogger{}}
}

// OutputFile is one file written by Run.
type OutputFile struct {
	Name  string
	Sizes []int
}

type Summary struct {
	Files []OutputFile
}

type rendered struct {
	img *image.RGBA
	err error
}

// Run renders every target and writes the fixed output layout under OutDir.
func (app *App) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	logger := app.logger()
	logger.Infof("app", "generating icons into %s", app.OutDir)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	icons := app.renderAll(app.Set.Icons)
	var largest *image.RGBA
	for i, target := range app.Set.Icons {
		logger.Infof("app", "creating %s (%dx%d)", target.Name, target.Size, target.Size)
		if icons[i].err != nil {
			return summary, fmt.Errorf("render %s: %w", target.Name, icons[i].err)
		}
		if err := export.WritePNG(app.path(target.Name), icons[i].img); err != nil {
			return summary, err
		}
		logger.Infof("app", "saved %s", target.Name)
		summary.Files = append(summary.Files, OutputFile{Name: target.Name, Sizes: []int{target.Size}})
		if largest == nil || target.Size > largest.Bounds().Dx() {
			largest = icons[i].img
		}
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	logger.Infof("app", "creating %s", FaviconICOName)
	favicons := app.renderAll(app.Set.Favicon)
	frames := make([]image.Image, 0, len(favicons))
	var sizes []int
	for i, result := range favicons {
		if result.err != nil {
			return summary, fmt.Errorf("render favicon %dpx: %w", app.Set.Favicon[i].Size, result.err)
		}
		frames = append(frames, result.img)
		sizes = append(sizes, app.Set.Favicon[i].Size)
	}
	if len(frames) > 0 {
		if err := export.WriteICO(app.path(FaviconICOName), frames); err != nil {
			return summary, err
		}
		logger.Infof("app", "saved %s", FaviconICOName)
		summary.Files = append(summary.Files, OutputFile{Name: FaviconICOName, Sizes: sizes})
	}

	logger.Infof("app", "creating %s", FaviconSVGName)
	if err := export.WriteSVG(app.path(FaviconSVGName), assets.FaviconSVG); err != nil {
		return summary, err
	}
	logger.Infof("app", "saved %s", FaviconSVGName)
	summary.Files = append(summary.Files, OutputFile{Name: FaviconSVGName})

	if app.InstallURL != "" {
		wrote, err := export.WriteQRCode(app.path(InstallQRName), app.InstallURL, installQRSize)
		if err != nil {
			return summary, fmt.Errorf("install qr: %w", err)
		}
		if wrote {
			logger.Infof("app", "saved %s for %s", InstallQRName, app.InstallURL)
			summary.Files = append(summary.Files, OutputFile{Name: InstallQRName, Sizes: []int{installQRSize}})
		}
	}

	if app.PreviewFunc != nil && largest != nil {
		if err := app.PreviewFunc(ctx, largest); err != nil {
			logger.Errorf("preview", "preview failed: %v", err)
		}
	}

	logger.Infof("app", "done: %d files", len(summary.Files))
	return summary, nil
}

// renderAll renders targets concurrently; results keep the target order.
func (app *App) renderAll(targets []Target) []rendered {
	results := make([]rendered, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()
			img, err := render.Render(render.RenderConfig{
				Size:                target.Size,
				IncludeText:         target.IncludeText,
				TextSizeThresholdPx: app.TextThreshold,
				Fonts:               app.Fonts,
				Logger:              app.Logger,
			})
			results[i] = rendered{img: img, err: err}
		}(i, target)
	}
	wg.Wait()
	return results
}

func (app *App) path(name string) string { return filepath.Join(app.OutDir, name) }

func (app *App) logger() Logger {
	if app.Logger == nil {
		return NoopLogger{}
	}
	return app.Logger
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct {
	mu *sync.Mutex
	w  io.Writer
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{mu: &sync.Mutex{}, w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

// Renders log from their own goroutines; keep lines whole.
func (l FileLogger) write(level, component, format string, args ...interface{}) {
	if l.mu != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
	}
	writeLog(l.w, level, component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
