package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/fyneplot/src/plot"
)

// rasterize renders an engine shape list into an RGBA image of the given
// size. It is a deliberately simple software renderer for headless use;
// the interactive path goes through the Fyne canvas instead.
func rasterize(shapes []plot.Shape, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, s := range shapes {
		switch s := s.(type) {
		case plot.RectShape:
			drawRect(img, s)
		case plot.SegmentShape:
			drawSegment(img, s)
		case plot.CircleShape:
			drawCircle(img, s)
		case plot.TextShape:
			drawText(img, s)
		case plot.ImageShape:
			if src, ok := s.Ref.(image.Image); ok {
				r := image.Rect(int(s.Rect.Min.X), int(s.Rect.Min.Y), int(s.Rect.Max.X), int(s.Rect.Max.Y))
				draw.Draw(img, r, src, src.Bounds().Min, draw.Over)
			}
		}
	}
	return img
}

func toNRGBA(c drawing.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// blendPx writes one pixel with alpha blending.
func blendPx(img *image.RGBA, x, y int, c drawing.Color) {
	if c.A == 0 || !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	u := image.NewUniform(toNRGBA(c))
	draw.Draw(img, image.Rect(x, y, x+1, y+1), u, image.Point{}, draw.Over)
}

func drawRect(img *image.RGBA, s plot.RectShape) {
	r := image.Rect(int(s.Rect.Min.X), int(s.Rect.Min.Y), int(s.Rect.Max.X), int(s.Rect.Max.Y))
	if s.Fill.A > 0 {
		draw.Draw(img, r, image.NewUniform(toNRGBA(s.Fill)), image.Point{}, draw.Over)
	}
	if s.StrokeWidth > 0 && s.Stroke.A > 0 {
		wd := int(s.StrokeWidth + 0.5)
		if wd < 1 {
			wd = 1
		}
		for d := 0; d < wd; d++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				blendPx(img, x, r.Min.Y+d, s.Stroke)
				blendPx(img, x, r.Max.Y-d, s.Stroke)
			}
			for y := r.Min.Y; y <= r.Max.Y; y++ {
				blendPx(img, r.Min.X+d, y, s.Stroke)
				blendPx(img, r.Max.X-d, y, s.Stroke)
			}
		}
	}
}

// drawSegment steps along the segment one pixel at a time. Good enough for
// screenshots; no antialiasing.
func drawSegment(img *image.RGBA, s plot.SegmentShape) {
	dx := float64(s.To.X - s.From.X)
	dy := float64(s.To.Y - s.From.Y)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	half := int(s.Width / 2)
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := int(float64(s.From.X) + f*dx)
		y := int(float64(s.From.Y) + f*dy)
		for ox := -half; ox <= half; ox++ {
			for oy := -half; oy <= half; oy++ {
				blendPx(img, x+ox, y+oy, s.Color)
			}
		}
	}
}

func drawCircle(img *image.RGBA, s plot.CircleShape) {
	r := int(s.Radius + 0.5)
	cx, cy := int(s.Center.X), int(s.Center.Y)
	for ox := -r; ox <= r; ox++ {
		for oy := -r; oy <= r; oy++ {
			if ox*ox+oy*oy <= r*r {
				blendPx(img, cx+ox, cy+oy, s.Fill)
			}
		}
	}
}

// drawText renders with the fixed 7x13 basic font, one line per \n, honoring
// the shape's anchor.
func drawText(img *image.RGBA, s plot.TextShape) {
	face := basicfont.Face7x13
	lines := strings.Split(s.Text, "\n")
	lineH := face.Metrics().Height.Ceil()
	src := image.NewUniform(toNRGBA(s.Color))
	for i, line := range lines {
		dr := &font.Drawer{Dst: img, Src: src, Face: face}
		wpx := dr.MeasureString(line).Ceil()
		x := int(s.Pos.X)
		y := int(s.Pos.Y) + (i+1)*lineH
		switch s.Anchor {
		case plot.AnchorBottomLeft:
			y = int(s.Pos.Y) - (len(lines)-1-i)*lineH
		case plot.AnchorCenter:
			x -= wpx / 2
			y = int(s.Pos.Y) + (i+1)*lineH - len(lines)*lineH/2
		}
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
		dr.DrawString(line)
	}
}
