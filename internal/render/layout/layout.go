package layout

import "image"

// ReferenceSize is the icon size at which every constant below is authored.
const ReferenceSize = 180

// Authored offsets at ReferenceSize.
const (
	heartLift      = 10 // heart centre sits this far above the canvas centre
	heartRadius    = 30
	triangleFlare  = 5
	triangleBase   = 10 // triangle base, below the heart centre
	strokeWidth    = 3
	minStrokeWidth = 2
	traceLength    = 30
	fontPoints     = 16
	minFontPoints  = 8
	textGap        = 35 // top of the first text line, below the heart centre
	lineSpacing    = 20
)

// traceOffsets is the ECG zig-zag between the two flat leads, relative to the
// heart centre.
var traceOffsets = [...]image.Point{
	{-10, 0}, {-8, -8}, {-6, 8}, {-4, -4}, {-2, 4},
	{0, 0},
	{2, -4}, {4, 4}, {6, -8}, {8, 8}, {10, 0},
}

// Geometry is the scaled drawing plan for one square icon.
//
// Rectangles follow image.Rectangle conventions: Max is exclusive, so a lobe
// covers the pixels Min.X..Max.X-1.
type Geometry struct {
	Size  int
	Scale float64

	Center image.Point
	Radius int

	LeftLobe  image.Rectangle
	RightLobe image.Rectangle
	Triangle  [3]image.Point

	Trace       []image.Point
	StrokeWidth int

	FontPoints  int
	TextTop     int
	LineSpacing int
}

// Compute scales the authored offsets to size. Offsets are truncated toward
// zero after scaling, so very small sizes can collapse or invert parts of the
// heart; that is left as is.
func Compute(size int) Geometry {
	scale := float64(size) / ReferenceSize
	scaled := func(v int) int { return int(float64(v) * scale) }

	center := image.Pt(size/2, size/2-scaled(heartLift))
	radius := scaled(heartRadius)
	half := radius / 2

	left := center.X - half
	right := center.X + half
	top := center.Y - half
	bottom := center.Y + half
	baseY := center.Y + scaled(triangleBase)

	g := Geometry{
		Size:      size,
		Scale:     scale,
		Center:    center,
		Radius:    radius,
		LeftLobe:  image.Rect(left, top, center.X+1, bottom+1),
		RightLobe: image.Rect(center.X, top, right+1, bottom+1),
		Triangle: [3]image.Point{
			{center.X, bottom},
			{left - scaled(triangleFlare), baseY},
			{right + scaled(triangleFlare), baseY},
		},
		StrokeWidth: max(minStrokeWidth, scaled(strokeWidth)),
		FontPoints:  max(minFontPoints, scaled(fontPoints)),
		TextTop:     center.Y + scaled(textGap),
		LineSpacing: scaled(lineSpacing),
	}

	length := scaled(traceLength)
	g.Trace = make([]image.Point, 0, len(traceOffsets)+2)
	g.Trace = append(g.Trace, image.Pt(center.X-length, center.Y))
	for _, off := range traceOffsets {
		g.Trace = append(g.Trace, image.Pt(center.X+scaled(off.X), center.Y+scaled(off.Y)))
	}
	g.Trace = append(g.Trace, image.Pt(center.X+length, center.Y))
	return g
}
