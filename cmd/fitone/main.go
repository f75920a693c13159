// Command fitone runs the critical-current fit on a single measurement file
// and reports the fitted parameters.
package main

import (
	"flag"
	"fmt"
	"os"

	"ic-analyzer/internal/analysis"
	"ic-analyzer/internal/dataset"
	"ic-analyzer/internal/plotting"
)

func main() {
	file := flag.String("file", "", "path to a measurement file")
	out := flag.String("out", "", "optional path for a data+fit overlay figure (.png or .svg)")
	flag.Parse()

	if *file == "" {
		fmt.Println("Usage: fitone -file <path> [-out overlay.png]")
		os.Exit(1)
	}

	info, err := dataset.ParseFileInfo(*file)
	if err != nil {
		// Field strength and angle are cosmetic here; fall back to zero
		// values so arbitrarily named files can still be fitted.
		fmt.Printf("note: %v\n", err)
		info = dataset.FileInfo{Path: *file}
	} else {
		fmt.Printf("Field strength: %g T, angle: %d deg\n", info.FieldStrength, info.Angle)
	}

	res, err := analysis.ProcessFile(info)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to process %s: %v\n", *file, err)
		os.Exit(1)
	}

	fmt.Printf("Samples: %d\n", len(res.Current))
	fmt.Printf("Background: V = %.6g + %.6g*I (midpoint estimate %.4g A)\n",
		res.Background.Intercept, res.Background.Slope, res.Background.Estimate)

	if !res.Fit.Converged {
		fmt.Println("Fit did not converge")
	} else {
		fmt.Printf("Ic = %.5f ± %.5f A\n", res.Fit.Ic, res.Fit.Sigma[0])
		fmt.Printf("N  = %.5f ± %.5f\n", res.Fit.N, res.Fit.Sigma[1])
	}

	if *out != "" {
		if err := plotting.RenderOverlay(res, *out); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render overlay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Overlay written to %s\n", *out)
	}
}
