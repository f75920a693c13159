package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadColumns reads two columns of a whitespace-delimited numeric table,
// skipping the first skip lines of header/metadata. Blank lines after the
// header are ignored; any other malformed row is an error.
func LoadColumns(path string, skip, xCol, yCol int) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	minCols := xCol
	if yCol > minCols {
		minCols = yCol
	}
	minCols++

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		if line <= skip {
			continue
		}
		cols := strings.Fields(sc.Text())
		if len(cols) == 0 {
			continue
		}
		if len(cols) < minCols {
			return nil, nil, fmt.Errorf("%s line %d: want at least %d columns, got %d", base, line, minCols, len(cols))
		}
		xv, err := strconv.ParseFloat(cols[xCol], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: column %d: %w", base, line, xCol, err)
		}
		yv, err := strconv.ParseFloat(cols[yCol], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: column %d: %w", base, line, yCol, err)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", base, err)
	}
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("%s: no data rows after %d header lines", base, skip)
	}
	return x, y, nil
}
