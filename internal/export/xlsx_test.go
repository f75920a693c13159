package export

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")

	sum := Summary{Seen: 3, Processed: 2, Skipped: 1, NonConverged: 1}
	rows := []Row{
		{
			File:          "real_deal_0point6_40deg.txt",
			FieldStrength: 0.6,
			Angle:         40,
			Ic:            48.123,
			N:             19.5,
			SigmaIc:       0.02,
			SigmaN:        0.4,
			Converged:     true,
		},
		{
			File:          "real_deal_0point2_40deg.txt",
			FieldStrength: 0.2,
			Angle:         40,
			Ic:            math.NaN(),
			N:             math.NaN(),
			SigmaIc:       math.NaN(),
			SigmaN:        math.NaN(),
			Converged:     false,
		},
	}

	require.NoError(t, WriteXLSX(path, sum, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	v, err = f.GetCellValue("Results", "A2")
	require.NoError(t, err)
	assert.Equal(t, "real_deal_0point6_40deg.txt", v)

	v, err = f.GetCellValue("Results", "C2")
	require.NoError(t, err)
	assert.Equal(t, "40", v)

	// Non-finite values are written as text, not corrupt numeric cells.
	v, err = f.GetCellValue("Results", "D3")
	require.NoError(t, err)
	assert.Equal(t, "NaN", v)
}
