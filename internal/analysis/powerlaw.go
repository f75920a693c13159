// Package analysis extracts a critical current from a single voltage-current
// measurement via linear background subtraction and a power-law fit.
package analysis

import "math"

const (
	// Ec is the electric field criterion (μV/cm) that defines the critical
	// current: the fitted curve crosses Ec exactly at I = Ic.
	Ec = 100.0

	// TapDistance is the separation of the voltage taps in meters, used to
	// rescale the background-subtracted voltage to an electric field.
	TapDistance = 12.89 / 1000

	// HeaderLines is the metadata header length of the measurement files.
	HeaderLines = 11

	// epsCurrent keeps the power-law base nonzero when the drive current
	// crosses zero.
	epsCurrent = 1e-9
)

// PowerLaw is the superconductor transition model E = Ec * (I/Ic)^N.
func PowerLaw(i, ic, n float64) float64 {
	return Ec * math.Pow((math.Abs(i)+epsCurrent)/ic, n)
}
