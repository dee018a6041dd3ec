package main

import (
	"flag"
	"fmt"
	"os"

	"depth-frame-renderer/internal/capture"
	"depth-frame-renderer/internal/depth"
)

// Writes synthetic captures: a depth ramp across the reliable range with a
// rectangular entity that moves one step per frame.
func main() {
	outDir := flag.String("output", "synthetic", "Directory to write captures into")
	width := flag.Int("width", 512, "Frame width")
	height := flag.Int("height", 424, "Frame height")
	frames := flag.Int("frames", 10, "Number of frames")
	minD := flag.Int("min", 500, "Near end of the ramp")
	maxD := flag.Int("max", 4500, "Far end of the ramp")
	flag.Parse()

	dims := depth.Dimensions{Width: *width, Height: *height}
	if err := dims.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *minD < 0 || *maxD > 0xFFFF || *minD > *maxD {
		fmt.Fprintf(os.Stderr, "Error: ramp %d-%d is not a valid depth range\n", *minD, *maxD)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	samples := make([]uint16, dims.Pixels())
	seg := make([]uint8, dims.Pixels())
	boxW, boxH := dims.Width/5, dims.Height/2

	for n := 0; n < *frames; n++ {
		x0 := (n * dims.Width / max(*frames, 1)) % max(dims.Width-boxW, 1)
		y0 := dims.Height / 4
		for y := 0; y < dims.Height; y++ {
			for x := 0; x < dims.Width; x++ {
				i := y*dims.Width + x
				// Ramp runs past both ends so the out-of-range policy shows.
				span := *maxD - *minD
				d := *minD - span/10 + x*(span+span/5)/max(dims.Width-1, 1)
				samples[i] = uint16(min(max(d, 0), 0xFFFF))
				seg[i] = depth.NoEntity
				if x >= x0 && x < x0+boxW && y >= y0 && y < y0+boxH {
					seg[i] = 0
					samples[i] = uint16(*minD + span/3)
				}
			}
		}

		name := fmt.Sprintf("frame_%04d", n)
		if _, err := capture.WriteDepth(*outDir, name, samples); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := capture.WriteSegmentation(*outDir, name, seg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Wrote %d captures (%s) to %s\n", *frames, dims, *outDir)
}
