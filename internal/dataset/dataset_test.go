package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileInfo(t *testing.T) {
	info, err := ParseFileInfo("real_deal_0point6_40deg.txt")
	require.NoError(t, err)
	assert.Equal(t, 0.6, info.FieldStrength)
	assert.Equal(t, 40, info.Angle)

	info, err = ParseFileInfo("real_deal_1point25_0deg.txt")
	require.NoError(t, err)
	assert.Equal(t, 1.25, info.FieldStrength)
	assert.Equal(t, 0, info.Angle)
}

func TestParseFileInfoFullPath(t *testing.T) {
	path := filepath.Join("some", "dir", "real_deal_2_90deg.txt")
	info, err := ParseFileInfo(path)
	require.NoError(t, err)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, 2.0, info.FieldStrength)
	assert.Equal(t, 90, info.Angle)
}

func TestParseFileInfoErrors(t *testing.T) {
	cases := []string{
		"real_deal.txt",                  // too few tokens
		"real_deal_0point6_40.txt",       // no deg marker
		"real_deal_xpointy_40deg.txt",    // non-numeric field
		"real_deal_0point6_fortydeg.txt", // non-numeric angle
	}
	for _, name := range cases {
		_, err := ParseFileInfo(name)
		assert.Error(t, err, name)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	want := []string{
		"real_deal_0point6_40deg.txt",
		"real_deal_1point25_0deg.txt",
	}
	others := []string{
		"notes.txt",
		"real_deal_0point6_40deg.csv",
		"calibration_0point6_40deg.txt",
	}
	for _, name := range append(append([]string{}, want...), others...) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real_deal_dir.txt"), 0o755))

	paths, err := Locate(dir, DefaultPrefix, DefaultSuffix)
	require.NoError(t, err)

	wantPaths := make([]string, len(want))
	for i, name := range want {
		wantPaths[i] = filepath.Join(dir, name)
	}
	assert.ElementsMatch(t, wantPaths, paths)
}

func TestLocateMissingDir(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "nope"), DefaultPrefix, DefaultSuffix)
	assert.Error(t, err)
}
