package batch

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"depth-frame-renderer/internal/capture"
	"depth-frame-renderer/internal/depth"
	"depth-frame-renderer/internal/encode"
	"depth-frame-renderer/internal/postprocess"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir    string
	Dimensions   depth.Dimensions
	Range        depth.ReliableRange
	Segmentation bool
	Highlight    color.RGBA
	Format       encode.Format
	Scale        int
	Workers      int

	// Progress, when set, receives a line every ProgressInterval.
	Progress         func(done, total int, rate float64)
	ProgressInterval time.Duration
}

// Result holds the outcome of rendering one capture.
type Result struct {
	Name      string
	Image     string // path relative to OutputDir
	Segmented bool
	Success   bool
	Error     string
}

// Run renders all captures using a worker pool. Each worker owns its own
// depth.Renderer; results are returned in capture order.
func Run(cfg Config, caps []capture.Capture) []Result {
	total := len(caps)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress != nil {
		interval := cfg.ProgressInterval
		if interval <= 0 {
			interval = 2 * time.Second
		}
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						cfg.Progress(int(p), total, rate)
					}
				}
			}
		}()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Worker pool
	capChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := depth.NewRenderer(depth.WithHighlight(cfg.Highlight))
			for idx := range capChan {
				results[idx] = processCapture(cfg, r, caps[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range caps {
		capChan <- i
	}
	close(capChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

func processCapture(cfg Config, r *depth.Renderer, c capture.Capture) Result {
	res := Result{Name: c.Name}

	frame, err := capture.Open(c, cfg.Dimensions, cfg.Range)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	var pix []byte
	if cfg.Segmentation && frame.HasSegmentation() {
		pix, err = r.RenderFrameWithSegmentation(frame, frame)
		res.Segmented = true
	} else {
		pix, err = r.RenderFrame(frame)
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}

	img, err := depth.Image(pix, frame.Dimensions())
	if err != nil {
		res.Error = err.Error()
		return res
	}
	img = postprocess.Scale(img, cfg.Scale)

	res.Image = c.Name + cfg.Format.Ext()
	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := encode.Encode(f, img, cfg.Format); err != nil {
		f.Close()
		res.Error = fmt.Sprintf("%s: %v", outPath, err)
		return res
	}
	if err := f.Close(); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
