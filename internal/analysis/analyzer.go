package analysis

import (
	"fmt"
	"path/filepath"

	"ic-analyzer/internal/dataset"

	"gonum.org/v1/gonum/floats"
)

// fitCurveSamples is the resolution of the fitted-curve overlay grid.
const fitCurveSamples = 500

// Result is the per-file analysis outcome.
type Result struct {
	Info       dataset.FileInfo
	Current    []float64 // A
	Voltage    []float64 // μV, as measured
	EField     []float64 // background-subtracted, tap-distance rescaled
	Background BackgroundFit
	Fit        FitResult
}

// ProcessFile loads one measurement, removes the linear background, and fits
// the power law. Load and shape problems are returned as errors; a fit that
// merely fails to converge is a valid Result carrying NaN parameters.
func ProcessFile(info dataset.FileInfo) (*Result, error) {
	base := filepath.Base(info.Path)

	x, y, err := dataset.LoadColumns(info.Path, HeaderLines, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", base, err)
	}

	bg, err := FitBackground(x, y)
	if err != nil {
		return nil, fmt.Errorf("background fit %s: %w", base, err)
	}
	corrected := CorrectVoltage(x, y, bg)

	return &Result{
		Info:       info,
		Current:    x,
		Voltage:    y,
		EField:     corrected,
		Background: bg,
		Fit:        CurveFit(x, corrected),
	}, nil
}

// FitCurve samples the fitted power law on a uniform grid across the
// measured current range, for overlay plots. Returns nil slices when the
// fit did not converge.
func (r *Result) FitCurve() (i, e []float64) {
	if !r.Fit.Converged || len(r.Current) == 0 {
		return nil, nil
	}
	lo, hi := floats.Min(r.Current), floats.Max(r.Current)
	i = make([]float64, fitCurveSamples)
	e = make([]float64, fitCurveSamples)
	for k := range i {
		i[k] = lo + (hi-lo)*float64(k)/float64(fitCurveSamples-1)
		e[k] = PowerLaw(i[k], r.Fit.Ic, r.Fit.N)
	}
	return i, e
}
