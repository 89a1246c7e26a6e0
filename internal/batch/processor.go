package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trskit/internal/config"
	"trskit/internal/imageio"
	"trskit/internal/postprocess"
	"trskit/internal/raster"
	"trskit/internal/scene"
)

// Result holds the outcome of rendering one scene file.
type Result struct {
	Scene    string // scene name
	Source   string // scene file
	Image    string // written image, relative to the output dir
	Objects  int
	Success  bool
	Error    string
	Duration time.Duration
}

// progressInterval is how often Run logs progress.
var progressInterval = 2 * time.Second

// Run renders every scene file into cfg.OutputDir with at most cfg.Workers
// scenes in flight. A failing scene is recorded in its Result and does not
// stop the others. Scenes not yet started when ctx is done fail with the
// context error.
func Run(ctx context.Context, cfg config.Config, scenePaths []string, logger *zap.Logger) []Result {
	total := len(scenePaths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					logger.Info("progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("scenes_per_sec", float64(p)/elapsed),
					)
				}
			}
		}
	}()

	cache := scene.NewMatrixCache[float64]()
	names, nameErr := OutputNames(scenePaths, cfg.Format)

	var g errgroup.Group
	g.SetLimit(max(cfg.Workers, 1))
	for i, path := range scenePaths {
		g.Go(func() error {
			switch {
			case nameErr != nil:
				results[i] = Result{Source: path, Error: nameErr.Error()}
			case ctx.Err() != nil:
				results[i] = Result{Source: path, Error: ctx.Err().Error()}
			default:
				results[i] = processScene(cfg, cache, path, names[i])
			}
			processed.Add(1)

			r := results[i]
			if r.Success {
				logger.Debug("rendered",
					zap.String("scene", r.Scene),
					zap.String("image", r.Image),
					zap.Int("objects", r.Objects),
					zap.Duration("took", r.Duration),
				)
			} else {
				logger.Warn("scene failed", zap.String("source", path), zap.String("error", r.Error))
			}
			return nil
		})
	}
	_ = g.Wait()
	close(done)

	hits, misses := cache.Stats()
	logger.Info("batch finished",
		zap.Int("scenes", total),
		zap.Int("failed", countFailed(results)),
		zap.Uint64("matrix_cache_hits", hits),
		zap.Uint64("matrix_cache_misses", misses),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results
}

func countFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}

// OutputName returns the image file name for a scene file.
func OutputName(scenePath, format string) (string, error) {
	ext, err := imageio.Ext(format)
	if err != nil {
		return "", err
	}
	base := filepath.Base(scenePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext, nil
}

// OutputNames assigns every scene file a distinct image name. Later files
// whose base name repeats an earlier one get a -1, -2, ... suffix, in input
// order.
func OutputNames(scenePaths []string, format string) ([]string, error) {
	names := make([]string, len(scenePaths))
	used := make(map[string]bool, len(scenePaths))
	for i, p := range scenePaths {
		name, err := OutputName(p, format)
		if err != nil {
			return nil, err
		}
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		for k := 1; used[name]; k++ {
			name = fmt.Sprintf("%s-%d%s", stem, k, ext)
		}
		used[name] = true
		names[i] = name
	}
	return names, nil
}

func processScene(cfg config.Config, cache *scene.MatrixCache[float64], path, name string) Result {
	start := time.Now()
	res := Result{Source: path}

	s, err := scene.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Scene = s.Name
	res.Objects = len(s.Objects)

	yaw, pitch := cfg.Camera.Angles()
	img := raster.Render(s, raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Camera:      raster.Camera{Yaw: yaw, Pitch: pitch},
		Cache:       cache,
	})

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	if cfg.FillRatio > 0 {
		img = postprocess.CropAndCenter(img, cfg.RenderSize, cfg.FillRatio)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = fmt.Sprintf("output dir: %v", err)
		return res
	}
	if err := imageio.WriteFile(filepath.Join(cfg.OutputDir, name), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Image = name
	res.Success = true
	res.Duration = time.Since(start)
	return res
}
