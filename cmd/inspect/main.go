package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"depth-frame-renderer/internal/capture"
	"depth-frame-renderer/internal/config"
	"depth-frame-renderer/internal/depth"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-config config.json] <capture-dir-or-file.depth>...")
		os.Exit(2)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var caps []capture.Capture
	for _, arg := range flag.Args() {
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			found, err := capture.BuildIndex(arg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			caps = append(caps, found...)
			continue
		}
		c := capture.Capture{Name: arg, DepthPath: arg}
		body := strings.TrimSuffix(arg, capture.DepthExt) + capture.SegmentationExt
		if _, err := os.Stat(body); err == nil {
			c.SegmentationPath = body
		}
		caps = append(caps, c)
	}

	dims, rng := cfg.Dimensions(), cfg.ReliableRange()
	fmt.Printf("Sensor: %s, reliable %d-%d\n", dims, rng.Min, rng.Max)

	r := depth.NewRenderer()
	fb := r.Buffer()
	for _, c := range caps {
		frame, err := capture.Open(c, dims, rng)
		if err != nil {
			fmt.Printf("%s: %v\n", c.Name, err)
			continue
		}
		if frame.HasSegmentation() {
			_, err = r.RenderFrameWithSegmentation(frame, frame)
		} else {
			_, err = r.RenderFrame(frame)
		}
		if err != nil {
			fmt.Printf("%s: %v\n", c.Name, err)
			continue
		}

		minD, maxD := uint16(0xFFFF), uint16(0)
		inRange, zero := 0, 0
		bands := map[uint16]bool{}
		for _, d := range fb.Depth {
			if d == 0 {
				zero++
				continue
			}
			if d < minD {
				minD = d
			}
			if d > maxD {
				maxD = d
			}
			if rng.Contains(d) {
				inRange++
				bands[d>>8] = true
			}
		}

		n := dims.Pixels()
		fmt.Printf("%s:\n", c.Name)
		fmt.Printf("  Depth: min=%d max=%d (non-zero)\n", minD, maxD)
		fmt.Printf("  In range: %d/%d (%.1f%%), no reading: %d\n",
			inRange, n, 100*float64(inRange)/float64(n), zero)
		fmt.Printf("  Wrap bands: %d\n", len(bands))

		if !frame.HasSegmentation() {
			continue
		}
		perEntity := map[uint8]int{}
		for _, s := range fb.Segmentation {
			if s != depth.NoEntity {
				perEntity[s]++
			}
		}
		ids := make([]int, 0, len(perEntity))
		for id := range perEntity {
			ids = append(ids, int(id))
		}
		sort.Ints(ids)
		fmt.Printf("  Tracked entities: %d\n", len(ids))
		for _, id := range ids {
			fmt.Printf("    id %d: %d px\n", id, perEntity[uint8(id)])
		}
	}
}
