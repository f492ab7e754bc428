package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bradley-health/icongen/internal/app"
	"github.com/bradley-health/icongen/internal/config"
	"github.com/bradley-health/icongen/internal/preview"
	"github.com/bradley-health/icongen/internal/render"
)

func main() {
	defaults, err := config.DefaultConfigFromEnv(config.Config{OutDir: "assets", TextThreshold: render.DefaultTextThreshold})
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	outDir := flag.String("out", defaults.OutDir, "output directory; also configurable via "+config.EnvOutDir)
	textThreshold := flag.Int("text-threshold", defaults.TextThreshold, "smallest icon size that carries the brand text; also configurable via "+config.EnvTextThreshold)
	installURL := flag.String("install-url", defaults.InstallURL, "write install-qr.png encoding this URL; also configurable via "+config.EnvInstallURL)
	showPreview := flag.Bool("preview", false, "show the largest icon on "+preview.DevicePath+" after generating")
	previewHold := flag.Duration("preview-hold", 5*time.Second, "how long the preview stays on screen")
	debug := flag.Bool("debug", false, "also log to ./icongen-debug.log")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	cfg := config.Config{OutDir: *outDir, TextThreshold: *textThreshold, InstallURL: *installURL, StdioLog: *stdioLog}
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var sinks []io.Writer
	if !*quiet {
		sinks = append(sinks, os.Stdout)
	}
	if *debug {
		f, err := os.OpenFile("./icongen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			sinks = append(sinks, f)
		} else {
			fmt.Println("debug log open error:", err)
		}
	}
	var logger app.Logger = app.NoopLogger{}
	if len(sinks) > 0 {
		logger = app.NewFileLogger(io.MultiWriter(sinks...))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg.OutDir, cfg.TextThreshold)
	a.InstallURL = cfg.InstallURL
	a.Logger = logger
	if *showPreview {
		a.PreviewFunc = func(ctx context.Context, img image.Image) error {
			return preview.Show(ctx, img, preview.Options{Hold: *previewHold})
		}
	}

	summary, err := a.Run(ctx)
	if err != nil {
		fmt.Println("icongen error:", err)
		os.Exit(1)
	}
	if !*quiet {
		for _, file := range summary.Files {
			fmt.Printf("  %s %v\n", file.Name, file.Sizes)
		}
	}
}
