package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"pipeflow/calculator"
	"pipeflow/model"
)

var ErrNoData = errors.New("no fluid series to plot")

// Comparison is one (y against x) plot.
type Comparison struct {
	Y string
	X string
}

var Comparisons = []Comparison{
	{Y: calculator.KeyHeadLoss, X: calculator.KeyReynoldsNumber},
	{Y: calculator.KeyHeatTransferCoefficient, X: calculator.KeyReynoldsNumber},
	{Y: calculator.KeyFrictionalFactor, X: calculator.KeyReynoldsNumber},
	{Y: calculator.KeyReynoldsNumber, X: calculator.KeyDiameter},
	{Y: calculator.KeyReynoldsNumber, X: calculator.KeyVelocity},
}

// 曲线颜色，超过十种流体时循环使用
var Palette = []color.RGBA{
	{R: 0xff, A: 0xff},                   // r
	{G: 0x80, A: 0xff},                   // g
	{B: 0xff, A: 0xff},                   // b
	{G: 0xbf, B: 0xbf, A: 0xff},          // c
	{R: 0xbf, B: 0xbf, A: 0xff},          // m
	{R: 0xbf, G: 0xbf, A: 0xff},          // y
	{A: 0xff},                            // k
	{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}, // pink
	{R: 0x7f, G: 0xff, A: 0xff},          // chartreuse
	{R: 0xde, G: 0xb8, B: 0x87, A: 0xff}, // burlywood
}

var units = map[string]string{
	calculator.KeyHeatTransferCoefficient: "(W/m2/K)",
	calculator.KeyHeadLoss:                "(m)",
	calculator.KeyPressureLoss:            "(Pa)",
	calculator.KeyDiameter:                "(m)",
	calculator.KeyVelocity:                "(m/s)",
}

func ColorFor(i int) color.RGBA {
	return Palette[i%len(Palette)]
}

// DisplayName turns "head_loss" into "Head loss".
func DisplayName(quantity string) string {
	s := strings.ReplaceAll(quantity, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// AxisLabel is the display name followed by the unit, if the quantity has one.
func AxisLabel(quantity string) string {
	if u, ok := units[quantity]; ok {
		return DisplayName(quantity) + " " + u
	}
	return DisplayName(quantity)
}

func Title(c Comparison) string {
	return fmt.Sprintf("Graph of %s against %s", DisplayName(c.Y), DisplayName(c.X))
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s against %s", c.Y, c.X)
}

func ImagePath(root string, o model.Orientation, c Comparison) string {
	return filepath.Join(root, "images", o.String(), fmt.Sprintf("%s_%s.png", c, o))
}

// Render draws one line per fluid, legend labelled with the fluid name.
func Render(c Comparison, fluids []calculator.FluidSeries) (*plot.Plot, error) {
	if len(fluids) == 0 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Text = Title(c)
	p.X.Label.Text = AxisLabel(c.X)
	p.Y.Label.Text = AxisLabel(c.Y)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, fs := range fluids {
		xs, ys := fs.Series[c.X], fs.Series[c.Y]
		if len(xs) != len(ys) {
			return nil, fmt.Errorf("%s: %s has %d points, %s has %d", fs.Fluid.Name, c.X, len(xs), c.Y, len(ys))
		}
		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j].X = xs[j]
			pts[j].Y = ys[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fs.Fluid.Name, err)
		}
		line.Color = ColorFor(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fs.Fluid.Name, line)
	}
	return p, nil
}

// Save writes the plot as PNG, creating parent directories.
func Save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
