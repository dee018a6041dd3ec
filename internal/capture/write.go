package capture

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDepth stores samples as <dir>/<name>.depth.
func WriteDepth(dir, name string, samples []uint16) (string, error) {
	buf := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, s)
	}
	path := filepath.Join(dir, name+DepthExt)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return "", fmt.Errorf("capture: write %s: %w", path, err)
	}
	return path, nil
}

// WriteSegmentation stores samples as <dir>/<name>.body.
func WriteSegmentation(dir, name string, samples []uint8) (string, error) {
	path := filepath.Join(dir, name+SegmentationExt)
	if err := os.WriteFile(path, samples, 0644); err != nil {
		return "", fmt.Errorf("capture: write %s: %w", path, err)
	}
	return path, nil
}
