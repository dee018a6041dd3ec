package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"depth-frame-renderer/internal/batch"
	"depth-frame-renderer/internal/capture"
	"depth-frame-renderer/internal/config"
	"depth-frame-renderer/internal/encode"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Render only first N captures for testing")
	name := flag.String("name", "", "Render only the capture with this name")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	inputDir := flag.String("input", "", "Directory of .depth/.body captures")
	outputDir := flag.String("output", "", "Output directory (default: <input>-renders)")
	format := flag.String("format", "", "Output format: webp, tga or png (default: webp)")
	highlight := flag.String("highlight", "", "Tracked entity color as #RRGGBB (default: #FFD700)")
	scale := flag.Int("scale", 0, "Integer upscale factor for display (default: 1)")
	noSeg := flag.Bool("noseg", false, "Ignore segmentation files and render plain depth")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Format:    *format,
		Highlight: *highlight,
		Scale:     *scale,
		Workers:   *workers,
		NoSeg:     *noSeg,
	})

	if cfg.InputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no input directory. Use -input flag or config.json.")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	hl, _ := cfg.Highlight()
	outFormat, _ := encode.ParseFormat(cfg.Format)

	caps, err := capture.BuildIndex(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *name != "" {
		var filtered []capture.Capture
		for _, c := range caps {
			if c.Name == *name {
				filtered = append(filtered, c)
			}
		}
		caps = filtered
	}

	// Limit for testing
	if *testN > 0 && *testN < len(caps) {
		caps = caps[:*testN]
	}

	if len(caps) == 0 {
		fmt.Println("No captures to render.")
		os.Exit(0)
	}

	segmented := 0
	for _, c := range caps {
		if c.HasSegmentation() {
			segmented++
		}
	}

	mode := ""
	if *name != "" {
		mode = fmt.Sprintf(" (%s)", *name)
	} else if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Depth frame renderer → %s%s\n", outFormat, mode)
	fmt.Printf("Captures: %d (%d with segmentation), Workers: %d\n", len(caps), segmented, cfg.Workers)
	fmt.Printf("Sensor: %s, reliable %d-%d\n", cfg.Dimensions(), cfg.MinReliable, cfg.MaxReliable)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:    cfg.OutputDir,
		Dimensions:   cfg.Dimensions(),
		Range:        cfg.ReliableRange(),
		Segmentation: cfg.SegmentationEnabled(),
		Highlight:    hl,
		Format:       outFormat,
		Scale:        cfg.Scale,
		Workers:      cfg.Workers,
		Progress: func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
		},
	}, caps)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(caps))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
