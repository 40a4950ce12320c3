package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/fyneplot/src/plot"
)

func TestRasterizeRectFill(t *testing.T) {
	fill := drawing.Color{R: 200, G: 10, B: 10, A: 255}
	img := rasterize([]plot.Shape{
		plot.RectShape{Rect: plot.NewRect(10, 10, 20, 20), Fill: fill},
	}, 40, 40)

	r, g, b, _ := img.At(15, 15).RGBA()
	if uint8(r>>8) != 200 || uint8(g>>8) != 10 || uint8(b>>8) != 10 {
		t.Fatalf("inside pixel: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	if r, _, _, _ := img.At(30, 30).RGBA(); r != 0 {
		t.Fatalf("outside pixel painted")
	}
}

func TestRasterizeSegmentEndpoints(t *testing.T) {
	col := drawing.Color{R: 255, G: 255, B: 255, A: 255}
	img := rasterize([]plot.Shape{
		plot.SegmentShape{From: plot.NewPos(5, 5), To: plot.NewPos(25, 5), Width: 1, Color: col},
	}, 40, 40)

	for _, x := range []int{5, 15, 25} {
		if r, _, _, _ := img.At(x, 5).RGBA(); r == 0 {
			t.Fatalf("segment pixel (%d,5) not painted", x)
		}
	}
}

func TestRasterizeClipsOutOfBounds(t *testing.T) {
	col := drawing.Color{R: 255, A: 255}
	// Must not panic on shapes extending past the image.
	rasterize([]plot.Shape{
		plot.SegmentShape{From: plot.NewPos(-50, -50), To: plot.NewPos(100, 100), Width: 3, Color: col},
		plot.CircleShape{Center: plot.NewPos(0, 0), Radius: 10, Fill: col},
	}, 20, 20)
}

func TestRunScreenshotsMode(t *testing.T) {
	dir := t.TempDir()
	if err := RunScreenshotsMode(dir); err != nil {
		t.Fatalf("screenshots: %v", err)
	}
	for _, name := range []string{"line_scatter.png", "bars.png", "boxplot.png"} {
		st, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if st.Size() == 0 {
			t.Fatalf("%s: empty file", name)
		}
	}
}
