package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/iafilius/fyneplot/src/plot"
)

// RunScreenshotsMode renders a curated set of demo plots and writes them as
// PNGs under outDir. It runs headlessly without creating a UI window.
func RunScreenshotsMode(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	const width, height = 800, 400
	frame := plot.NewRect(0, 0, width, height)

	toRender := []struct {
		name string
		cfg  *plot.Plot
		in   plot.Input
		fn   func(ui *plot.PlotUI)
	}{
		{
			name: "line_scatter.png",
			cfg:  plot.New("shot-line").IncludeY(0),
			in:   hoverInput(width*0.4, height*0.5),
			fn: func(ui *plot.PlotUI) {
				ui.Line(plot.NewLine("sin", sineSeries(2, 200)))
				ui.Points(plot.NewPoints("samples", noisyScatter(60)))
			},
		},
		{
			name: "bars.png",
			cfg:  plot.New("shot-bars").SetHoverLine(plot.HoverLineX),
			in:   hoverInput(width*0.6, height*0.4),
			fn: func(ui *plot.PlotUI) {
				ui.BarChart(plot.NewBarChart("bars", demoBars()))
			},
		},
		{
			name: "boxplot.png",
			cfg:  plot.New("shot-box"),
			in:   plot.NewInput(),
			fn: func(ui *plot.PlotUI) {
				ui.BoxPlot(plot.NewBoxPlot("spread", []plot.BoxElem{
					{X: 1, Width: 0.6, Spread: plot.BoxSpread{LowerWhisker: 0.2, Quartile1: 1, Median: 1.6, Quartile3: 2.4, UpperWhisker: 3.5}},
					{X: 2, Width: 0.6, Spread: plot.BoxSpread{LowerWhisker: 0.8, Quartile1: 1.4, Median: 2.0, Quartile3: 2.9, UpperWhisker: 4.1}},
					{X: 3, Width: 0.6, Spread: plot.BoxSpread{LowerWhisker: 0.5, Quartile1: 1.2, Median: 1.9, Quartile3: 2.2, UpperWhisker: 3.0}},
				}))
			},
		},
	}

	store := plot.NewMapStore()
	for _, item := range toRender {
		// Two frames: the first resolves auto bounds, the second draws
		// with the settled transform and hover feedback.
		item.cfg.Show(frame, plot.NewInput(), store, item.fn)
		res := item.cfg.Show(frame, item.in, store, item.fn)

		img := rasterize(res.Shapes, width, height)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return nil
}

// hoverInput returns an input snapshot with the pointer resting at (x, y).
func hoverInput(x, y float32) plot.Input {
	in := plot.NewInput()
	in.PointerPos = plot.NewPos(x, y)
	in.PointerInside = true
	return in
}
