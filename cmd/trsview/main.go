// Command trsview renders scene files of TRS-placed cubes to images.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"trskit/internal/batch"
	"trskit/internal/config"
	"trskit/internal/logging"
	"trskit/internal/scene"
	"trskit/internal/trs"
)

func main() {
	os.Exit(run())
}

func run() int {
	// CLI flags
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	format := flag.String("format", "", "Image format: webp or tga (default: webp)")
	workers := flag.Int("workers", 0, "Scenes rendered concurrently (default: NumCPU)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")
	export := flag.String("export", "", "Write the first scene's local transforms as a binary TRS file")
	printWorld := flag.Bool("print", false, "Print every object's world matrix to stdout")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: trsview [flags] scene.yaml...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Size:      *size,
		Format:    *format,
		Workers:   *workers,
		LogLevel:  *logLevel,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		return 2
	}

	if *printWorld {
		for _, p := range paths {
			if err := printWorldMatrices(os.Stdout, p); err != nil {
				logger.Error("print", zap.Error(err))
				return 1
			}
		}
	}

	if *export != "" {
		if err := exportTransforms(paths[0], *export); err != nil {
			logger.Error("export", zap.Error(err))
			return 1
		}
		logger.Info("exported", zap.String("scene", paths[0]), zap.String("file", *export))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("rendering",
		zap.Int("scenes", len(paths)),
		zap.Int("workers", cfg.Workers),
		zap.String("format", cfg.Format),
		zap.String("output", cfg.OutputDir),
	)

	results := batch.Run(ctx, cfg, paths, logger)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}

	// Write manifest
	manifestPath := cfg.ManifestPath()
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		logger.Warn("manifest write failed", zap.Error(err))
	} else {
		logger.Info("manifest", zap.String("path", manifestPath))
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// printWorldMatrices writes one line per object: scene, object, parent,
// local transform and world matrix, tab separated.
func printWorldMatrices(w io.Writer, path string) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	for i, m := range s.WorldMatrices(nil) {
		obj := s.Objects[i]
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%v\n", s.Name, obj.Name, obj.Parent, obj.Transform, m); err != nil {
			return fmt.Errorf("print %s: %w", path, err)
		}
	}
	return nil
}

func exportTransforms(scenePath, out string) error {
	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	return trs.WriteFile(out, s.Export())
}
