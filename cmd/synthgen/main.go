// Command synthgen writes a synthetic measurement file with a known critical
// current embedded, for checking the analysis pipeline end to end.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ic-analyzer/internal/analysis"
	"ic-analyzer/internal/dataset"
)

func main() {
	dir := flag.String("dir", ".", "output directory")
	field := flag.Float64("field", 0.6, "magnetic field strength in tesla (encoded in the filename)")
	angle := flag.Int("angle", 0, "field angle in degrees (encoded in the filename)")
	ic := flag.Float64("ic", 50, "embedded critical current in A")
	n := flag.Float64("n", 20, "embedded power-law exponent")
	points := flag.Int("points", 121, "number of samples")
	intercept := flag.Float64("intercept", 3.0, "background intercept in μV")
	slope := flag.Float64("slope", 0.05, "background slope in μV/A")
	flag.Parse()

	name := fmt.Sprintf("%s_%s_%ddeg%s",
		dataset.DefaultPrefix, fieldToken(*field), *angle, dataset.DefaultSuffix)
	path := filepath.Join(*dir, name)

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for line := 1; line <= analysis.HeaderLines; line++ {
		fmt.Fprintf(w, "# synthetic measurement header line %d (field=%g T, angle=%d deg, Ic=%g A, N=%g)\n",
			line, *field, *angle, *ic, *n)
	}

	// Currents span 0 to 1.2*Ic so that the low half of the sweep is
	// background-dominated and the transition sits in the upper half.
	maxI := 1.2 * *ic
	for k := 0; k < *points; k++ {
		i := maxI * float64(k) / float64(*points-1)
		v := *intercept + *slope*i + analysis.PowerLaw(i, *ic, *n)*analysis.TapDistance
		fmt.Fprintf(w, "%.9e\t%.9e\n", i, v)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d samples to %s\n", *points, path)
}

// fieldToken encodes a field strength for a filename, with "point" standing
// in for the decimal point.
func fieldToken(field float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(field, 'g', -1, 64), ".", "point")
}
