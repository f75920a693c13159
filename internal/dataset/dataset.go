// Package dataset locates and parses voltage-current measurement files.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Default filename convention for measurement files.
const (
	DefaultPrefix = "real_deal"
	DefaultSuffix = ".txt"
)

// FileInfo identifies one measurement by the conditions encoded in its name.
type FileInfo struct {
	Path          string
	FieldStrength float64 // tesla
	Angle         int     // degrees
}

// Locate returns the paths of all files in dir whose names carry the given
// prefix and suffix, in directory-listing order.
func Locate(dir, prefix, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}

// ParseFileInfo extracts field strength and angle from a measurement filename.
// Names look like real_deal_0point6_40deg.txt: the third underscore token is
// the field strength with "point" standing in for the decimal point, the
// fourth is the angle followed by "deg" and the extension.
func ParseFileInfo(path string) (FileInfo, error) {
	base := filepath.Base(path)
	parts := strings.Split(base, "_")
	if len(parts) < 4 {
		return FileInfo{}, fmt.Errorf("parse %s: want at least 4 underscore tokens, got %d", base, len(parts))
	}

	field, err := strconv.ParseFloat(strings.ReplaceAll(parts[2], "point", "."), 64)
	if err != nil {
		return FileInfo{}, fmt.Errorf("parse %s: field strength token %q: %w", base, parts[2], err)
	}

	angleTok := parts[3]
	i := strings.Index(angleTok, "deg")
	if i < 0 {
		return FileInfo{}, fmt.Errorf("parse %s: angle token %q has no deg marker", base, parts[3])
	}
	angle, err := strconv.Atoi(angleTok[:i])
	if err != nil {
		return FileInfo{}, fmt.Errorf("parse %s: angle token %q: %w", base, parts[3], err)
	}

	return FileInfo{Path: path, FieldStrength: field, Angle: angle}, nil
}
