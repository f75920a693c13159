package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BackgroundFit is the degree-1 baseline fitted to the low-current samples,
// attributed to contact and lead resistance.
type BackgroundFit struct {
	Intercept float64
	Slope     float64

	// Estimate is the midpoint-sample current used to split off the
	// background subset.
	Estimate float64
}

// At evaluates the baseline at current i.
func (f BackgroundFit) At(i float64) float64 {
	return f.Intercept + f.Slope*i
}

// FitBackground fits a linear baseline to all samples whose current is
// strictly below the midpoint sample's current, by least squares.
func FitBackground(x, y []float64) (BackgroundFit, error) {
	if len(x) != len(y) {
		return BackgroundFit{}, fmt.Errorf("length mismatch: %d currents vs %d voltages", len(x), len(y))
	}
	if len(x) < 2 {
		return BackgroundFit{}, fmt.Errorf("need at least 2 samples, got %d", len(x))
	}

	est := x[len(x)/2]
	var bx, by []float64
	for i := range x {
		if x[i] < est {
			bx = append(bx, x[i])
			by = append(by, y[i])
		}
	}
	if len(bx) < 2 {
		return BackgroundFit{}, fmt.Errorf("only %d samples below the midpoint current %g", len(bx), est)
	}

	// Overdetermined system [1 x] * [c0 c1]^T = y, solved by QR.
	A := mat.NewDense(len(bx), 2, nil)
	b := mat.NewVecDense(len(bx), nil)
	for i := range bx {
		A.Set(i, 0, 1)
		A.Set(i, 1, bx[i])
		b.SetVec(i, by[i])
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, b); err != nil {
		return BackgroundFit{}, fmt.Errorf("background solve: %w", err)
	}

	return BackgroundFit{
		Intercept: params.AtVec(0),
		Slope:     params.AtVec(1),
		Estimate:  est,
	}, nil
}

// CorrectVoltage subtracts the baseline from the measured voltage and
// rescales the residual by the voltage tap distance, yielding the
// electric-field signal the power law is fitted to.
func CorrectVoltage(x, y []float64, bg BackgroundFit) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = (y[i] - bg.At(x[i])) / TapDistance
	}
	return out
}
