package analysis

import (
	"fmt"
	"log"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// FitResult holds the optimized power-law parameters for one measurement.
// A fit that fails to converge is reported with NaN values, not an error.
type FitResult struct {
	Ic     float64
	N      float64
	Params [2]float64
	Sigma  [2]float64 // one standard deviation per parameter

	// Cov is the parameter covariance matrix; nil when the fit failed.
	Cov *mat.SymDense

	Converged bool
}

// CurveFit fits the corrected signal to the power law with (Ic, N) free,
// starting from (mean(x), 10), using Levenberg-Marquardt with a numerical
// Jacobian.
func CurveFit(x, y []float64) FitResult {
	if len(x) != len(y) || len(x) < 3 {
		log.Printf("fit did not converge: %d currents vs %d field values", len(x), len(y))
		return nonConverged()
	}

	// A flat zero signal cannot constrain (Ic, N): the optimizer just drives
	// Ic off to infinity.
	flat := true
	for _, v := range y {
		if v != 0 {
			flat = false
			break
		}
	}
	if flat {
		log.Print("fit did not converge: signal is identically zero")
		return nonConverged()
	}

	residuals := func(dst, p []float64) {
		ic, n := p[0], p[1]
		for i := range x {
			dst[i] = PowerLaw(x[i], ic, n) - y[i]
		}
	}
	jacobian := lm.NumJac{Func: residuals}

	problem := lm.LMProblem{
		Dim:        2,
		Size:       len(x),
		Func:       residuals,
		Jac:        jacobian.Jac,
		InitParams: []float64{stat.Mean(x, nil), 10},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
	if err != nil {
		log.Printf("fit did not converge: %v", err)
		return nonConverged()
	}

	ic, n := results.X[0], results.X[1]
	if math.IsNaN(ic) || math.IsInf(ic, 0) || math.IsNaN(n) || math.IsInf(n, 0) {
		log.Printf("fit did not converge: non-finite parameters (Ic=%g, N=%g)", ic, n)
		return nonConverged()
	}

	cov, err := covariance(x, y, ic, n)
	if err != nil {
		log.Printf("fit did not converge: %v", err)
		return nonConverged()
	}

	sigma := [2]float64{math.Sqrt(cov.At(0, 0)), math.Sqrt(cov.At(1, 1))}
	for i, p := range []float64{ic, n} {
		log.Printf("parameter %d: %.5f ± %.5f", i, p, sigma[i])
	}

	return FitResult{
		Ic:        ic,
		N:         n,
		Params:    [2]float64{ic, n},
		Sigma:     sigma,
		Cov:       cov,
		Converged: true,
	}
}

func nonConverged() FitResult {
	nan := math.NaN()
	return FitResult{
		Ic:     nan,
		N:      nan,
		Params: [2]float64{nan, nan},
		Sigma:  [2]float64{nan, nan},
	}
}

// covariance estimates the parameter covariance at the solution as
// (J^T J)^-1 scaled by the residual variance. An ill-conditioned curvature
// matrix means the data do not constrain the parameters, which the caller
// treats as a failed fit.
func covariance(x, y []float64, ic, n float64) (*mat.SymDense, error) {
	m := len(x)

	step := func(p float64) float64 {
		s := 1e-8 * math.Abs(p)
		if s == 0 {
			s = 1e-8
		}
		return s
	}
	dic, dn := step(ic), step(n)

	J := mat.NewDense(m, 2, nil)
	var ssr float64
	for i := range x {
		e := PowerLaw(x[i], ic, n)
		r := e - y[i]
		ssr += r * r
		J.Set(i, 0, (PowerLaw(x[i], ic+dic, n)-e)/dic)
		J.Set(i, 1, (PowerLaw(x[i], ic, n+dn)-e)/dn)
	}

	var jtj mat.Dense
	jtj.Mul(J.T(), J)

	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil, fmt.Errorf("curvature matrix not invertible: %w", err)
	}

	scale := 1.0
	if m > 2 {
		scale = ssr / float64(m-2)
	}

	cov := mat.NewSymDense(2, nil)
	for i := 0; i < 2; i++ {
		for j := i; j < 2; j++ {
			cov.SetSym(i, j, 0.5*(inv.At(i, j)+inv.At(j, i))*scale)
		}
	}
	return cov, nil
}
