package render

import "image/color"

// Palette shared by every icon size.
var (
	Background = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF} // #3b82f6
	Accent     = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF} // #ef4444
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff
)

// BrandLines are drawn top to bottom beneath the heart.
var BrandLines = [...]string{"Bradley", "Health"}

// DefaultTextThreshold is the smallest icon size that carries the brand text.
const DefaultTextThreshold = 72
