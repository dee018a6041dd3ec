package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File extensions of a recorded frame.
const (
	DepthExt        = ".depth"
	SegmentationExt = ".body"
)

// Capture is one recorded frame on disk.
type Capture struct {
	Name             string // file stem, shared by both files
	DepthPath        string
	SegmentationPath string // empty when no segmentation was recorded
}

// HasSegmentation reports whether a segmentation file was recorded.
func (c Capture) HasSegmentation() bool {
	return c.SegmentationPath != ""
}

// BuildIndex scans dir (not recursively) for depth files and pairs each with
// the segmentation file of the same stem. Results are sorted by name.
func BuildIndex(dir string) ([]Capture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("capture: scan %s: %w", dir, err)
	}

	depths := map[string]string{}
	bodies := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		switch ext {
		case DepthExt:
			depths[stem] = filepath.Join(dir, e.Name())
		case SegmentationExt:
			bodies[stem] = filepath.Join(dir, e.Name())
		}
	}

	caps := make([]Capture, 0, len(depths))
	for stem, path := range depths {
		caps = append(caps, Capture{
			Name:             stem,
			DepthPath:        path,
			SegmentationPath: bodies[stem],
		})
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i].Name < caps[j].Name })
	return caps, nil
}
