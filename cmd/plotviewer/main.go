// Command plotviewer is a small demo application for the fyneplot widget:
// two plots linked on the x axis, a legend with item toggles, and a headless
// screenshots mode for documentation images.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/fyneplot/src/plot"
	"github.com/iafilius/fyneplot/src/plotwidget"
)

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

type uiState struct {
	app    fyne.App
	window fyne.Window

	link      *plot.LinkedAxisGroup
	topPlot   *plotwidget.Widget
	botPlot   *plotwidget.Widget
	legend    *checkLegend
	crosshair bool
}

// checkLegend is a minimal legend collaborator: one checkbox per named item
// controlling its visibility.
type checkLegend struct {
	hidden map[string]bool
	checks map[string]*widget.Check
	box    *fyne.Container
	onTog  func()
}

func newCheckLegend(onToggle func()) *checkLegend {
	return &checkLegend{
		hidden: map[string]bool{},
		checks: map[string]*widget.Check{},
		box:    container.NewHBox(),
		onTog:  onToggle,
	}
}

// Update implements plot.Legend: sync checkboxes with the resolved entries
// and hand the hidden set back to the engine.
func (l *checkLegend) Update(entries []plot.LegendEntry) (map[string]bool, string) {
	for _, e := range entries {
		if _, ok := l.checks[e.Name]; ok {
			continue
		}
		name := e.Name
		c := widget.NewCheck(name, func(on bool) {
			l.hidden[name] = !on
			if l.onTog != nil {
				l.onTog()
			}
		})
		c.SetChecked(!e.Hidden)
		l.checks[name] = c
		l.box.Add(c)
	}
	return l.hidden, ""
}

// sineSeries samples y = a*sin(x) over [0, 4pi].
func sineSeries(a float64, n int) []plot.Value {
	out := make([]plot.Value, n)
	for i := range out {
		x := float64(i) / float64(n-1) * 4 * math.Pi
		out[i] = plot.NewValue(x, a*math.Sin(x))
	}
	return out
}

// noisyScatter produces a deterministic pseudo-random scatter around a line.
func noisyScatter(n int) []plot.Value {
	out := make([]plot.Value, n)
	seed := uint64(42)
	for i := range out {
		seed = seed*6364136223846793005 + 1442695040888963407
		noise := float64(seed>>40)/float64(1<<24) - 0.5
		x := float64(i) / float64(n-1) * 4 * math.Pi
		out[i] = plot.NewValue(x, 0.5*x+noise)
	}
	return out
}

// demoBars returns a small bar chart data set.
func demoBars() []plot.Bar {
	bars := make([]plot.Bar, 10)
	for i := range bars {
		x := float64(i) + 0.5
		bars[i] = plot.Bar{Argument: x, Value: math.Abs(math.Sin(x)) * 3, Width: 0.8}
	}
	return bars
}

func main() {
	var screenshotsDir string
	var logLevel string
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render demo charts as PNGs into this directory and exit")
	flag.StringVar(&logLevel, "loglevel", "warn", "Engine log level (debug|info|warn|error)")
	flag.Parse()
	plot.SetLogLevel(logLevel)

	if screenshotsDir != "" {
		if err := RunScreenshotsMode(screenshotsDir); err != nil {
			log.Fatalf("screenshots: %v", err)
		}
		return
	}

	a := app.NewWithID("com.iafilius.fyneplot.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("fyneplot demo")
	w.Resize(fyne.NewSize(900, 700))

	state := &uiState{app: a, window: w, link: plot.LinkXAxis()}
	state.crosshair = a.Preferences().BoolWithFallback("crosshair", true)

	refresh := func() {
		if state.topPlot != nil {
			state.topPlot.Refresh()
		}
		if state.botPlot != nil {
			state.botPlot.Refresh()
		}
	}
	state.legend = newCheckLegend(refresh)

	store := plotwidget.NewPrefStore(a.Preferences())

	topCfg := plot.New("demo-top").
		LinkAxis(state.link).
		SetLegend(state.legend).
		IncludeY(0)
	if !state.crosshair {
		topCfg.SetHoverLine(plot.HoverLineNone)
	}
	state.topPlot = plotwidget.New(topCfg, store, func(ui *plot.PlotUI) {
		ui.Line(plot.NewLine("sin", sineSeries(2, 200)))
		ui.Line(plot.NewLineFunc("trend", func(x float64) float64 { return 0.5 * x }, 2))
		ui.Points(plot.NewPoints("samples", noisyScatter(60)).SetShape(plot.MarkerCross))
		ui.HLine(plot.NewHLine("", 0).SetColor(drawing.Color{R: 120, G: 120, B: 120, A: 255}))
	})

	botCfg := plot.New("demo-bottom").
		LinkAxis(state.link).
		SetHoverLine(plot.HoverLineX)
	state.botPlot = plotwidget.New(botCfg, store, func(ui *plot.PlotUI) {
		ui.BarChart(plot.NewBarChart("bars", demoBars()))
	})

	crossToggle := widget.NewCheck("Crosshair", func(on bool) {
		state.crosshair = on
		a.Preferences().SetBool("crosshair", on)
		mode := plot.HoverLineNone
		if on {
			mode = plot.HoverLineXY
		}
		topCfg.SetHoverLine(mode)
		refresh()
	})
	crossToggle.SetChecked(state.crosshair)

	resetBtn := widget.NewButton("Reset view", func() {
		state.topPlot.DoubleTapped(nil)
		state.botPlot.DoubleTapped(nil)
	})

	top := container.NewHBox(crossToggle, resetBtn, state.legend.box)
	split := container.NewVSplit(state.topPlot, state.botPlot)
	split.SetOffset(0.6)
	w.SetContent(container.NewBorder(top, nil, nil, nil, split))
	w.ShowAndRun()
}
