package plotting

import (
	"fmt"

	"ic-analyzer/internal/analysis"
	"ic-analyzer/pkg/colorutil"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderOverlay draws one measurement's corrected signal together with its
// fitted power law, the field criterion line, and the fitted critical
// current, then saves the figure to path.
func RenderOverlay(res *analysis.Result, path string) error {
	p := plot.New()
	p.X.Label.Text = "Current [A]"
	p.Y.Label.Text = "Electric Field [μV/cm]"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	data := make(plotter.XYs, len(res.Current))
	for i := range res.Current {
		data[i] = plotter.XY{X: res.Current[i], Y: res.EField[i]}
	}
	marks, err := plotter.NewScatter(data)
	if err != nil {
		return fmt.Errorf("data points: %w", err)
	}
	marks.GlyphStyle.Color = colorutil.Black
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.Shape = draw.CircleGlyph{}
	p.Add(marks)
	p.Legend.Add("data", marks)

	lo, hi := floats.Min(res.Current), floats.Max(res.Current)

	// Criterion line at Ec.
	criterion, err := plotter.NewLine(plotter.XYs{{X: lo, Y: analysis.Ec}, {X: hi, Y: analysis.Ec}})
	if err != nil {
		return fmt.Errorf("criterion line: %w", err)
	}
	criterion.LineStyle.Color = colorutil.Gray
	criterion.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(criterion)

	if res.Fit.Converged {
		xs, es := res.FitCurve()
		curve := make(plotter.XYs, len(xs))
		for i := range xs {
			curve[i] = plotter.XY{X: xs[i], Y: es[i]}
		}
		fit, err := plotter.NewLine(curve)
		if err != nil {
			return fmt.Errorf("fit curve: %w", err)
		}
		fit.LineStyle.Color = colorutil.YlOrRd(0.8)
		fit.LineStyle.Width = vg.Points(2)
		p.Add(fit)
		p.Legend.Add(fmt.Sprintf("fit (Ic=%.3f A, N=%.2f)", res.Fit.Ic, res.Fit.N), fit)

		// Vertical marker at the fitted critical current.
		eLo, eHi := floats.Min(res.EField), floats.Max(res.EField)
		marker, err := plotter.NewLine(plotter.XYs{{X: res.Fit.Ic, Y: eLo}, {X: res.Fit.Ic, Y: eHi}})
		if err != nil {
			return fmt.Errorf("critical current marker: %w", err)
		}
		marker.LineStyle.Color = colorutil.Gray
		p.Add(marker)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
