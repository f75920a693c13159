// Command ic-analyzer extracts a critical current from each voltage-current
// measurement file in a directory and plots critical current against
// magnetic field strength, one series per field angle.
package main

import (
	"flag"
	"log"
	"math"
	"path/filepath"

	"ic-analyzer/internal/aggregate"
	"ic-analyzer/internal/analysis"
	"ic-analyzer/internal/config"
	"ic-analyzer/internal/dataset"
	"ic-analyzer/internal/export"
	"ic-analyzer/internal/plotting"
	"ic-analyzer/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("ic-analyzer v%s (%s)", version.Version, version.GitCommit)

	cfg := config.Load()

	dir := flag.String("dir", cfg.DataDir, "directory containing measurement files")
	prefix := flag.String("prefix", cfg.FilePrefix, "measurement filename prefix")
	suffix := flag.String("suffix", cfg.FileSuffix, "measurement filename suffix")
	angle := flag.Int("angle", -1, "restrict to a single angle in degrees (-1 = all)")
	field := flag.Float64("field", math.NaN(), "restrict to a single field strength in tesla (NaN = all)")
	plotPath := flag.String("plot", cfg.PlotPath, "output path for the rendered figure (empty = none)")
	exportPath := flag.String("export", cfg.ExportPath, "output path for the xlsx results (empty = none)")
	show := flag.Bool("show", cfg.ShowWindow, "open an interactive gnuplot window")
	flag.Parse()

	var filter aggregate.Filter
	if *angle >= 0 {
		filter.Angle = angle
	}
	if !math.IsNaN(*field) {
		filter.Field = field
	}

	paths, err := dataset.Locate(*dir, *prefix, *suffix)
	if err != nil {
		log.Fatalf("locate measurements: %v", err)
	}
	log.Printf("found %d measurement files in %s", len(paths), *dir)

	acc := aggregate.NewAccumulator()
	var sum export.Summary
	var rows []export.Row

	for _, path := range paths {
		sum.Seen++

		info, err := dataset.ParseFileInfo(path)
		if err != nil {
			log.Printf("could not process file %s: %v", path, err)
			sum.Skipped++
			continue
		}
		if !filter.Match(info.Angle, info.FieldStrength) {
			continue
		}

		res, err := analysis.ProcessFile(info)
		if err != nil {
			log.Printf("could not process file %s: %v", path, err)
			sum.Skipped++
			continue
		}
		sum.Processed++
		if !res.Fit.Converged {
			sum.NonConverged++
		}

		acc.Add(info.Angle, info.FieldStrength, res.Fit.Ic)
		rows = append(rows, export.Row{
			File:          filepath.Base(path),
			FieldStrength: info.FieldStrength,
			Angle:         info.Angle,
			Ic:            res.Fit.Ic,
			N:             res.Fit.N,
			SigmaIc:       res.Fit.Sigma[0],
			SigmaN:        res.Fit.Sigma[1],
			Converged:     res.Fit.Converged,
		})
	}

	groups := acc.Groups()
	if len(groups) == 0 {
		log.Fatal("no measurements to plot")
	}
	series := plotting.BuildSeries(groups)

	if *exportPath != "" {
		if err := export.WriteXLSX(*exportPath, sum, rows); err != nil {
			log.Printf("export results: %v", err)
		} else {
			log.Printf("results written to %s", *exportPath)
		}
	}

	if *plotPath != "" {
		if err := plotting.Render(series, *plotPath); err != nil {
			log.Fatalf("render figure: %v", err)
		}
		log.Printf("figure written to %s", *plotPath)
	}

	if *show {
		if err := plotting.Show(series); err != nil {
			log.Printf("interactive window: %v", err)
		}
	}
}
