// planecast casts the rays of a YAML scene against its planes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/planecast/internal/config"
	"github.com/Faultbox/planecast/internal/logger"
	"github.com/Faultbox/planecast/internal/scene"
)

var errUsage = errors.New("usage")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	err = run(cfg, flag.Args(), os.Stdout)
	if err != nil && !errors.Is(err, errUsage) {
		logger.Error("command failed", zap.Error(err))
	}
	logger.Sync()

	if err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report prints a failed command's error. Usage errors also print usage;
// the bare errUsage carries no detail of its own.
func report(w io.Writer, err error) {
	if err != errUsage {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	if errors.Is(err, errUsage) {
		printUsage(w)
	}
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "cast":
		return cmdCast(cfg, args, out)
	case "pick":
		return cmdPick(cfg, args, out)
	case "planes":
		return cmdPlanes(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		return fmt.Errorf("unknown command: %s: %w", command, errUsage)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `planecast - ray/plane intersection for YAML scenes

Usage:
  planecast [flags] <command> [args]

Commands:
  cast <scene.yaml>          Cast every ray against every plane
  pick <scene.yaml> <x> <y>  Cast the camera ray through pixel x,y
  planes <scene.yaml>        Print each plane as an equation

Flags:
  --config <path>       Config file (default ./config.yaml or the user config dir)
  --format text|yaml    Output format
  --debug               Debug logging; also prints misses
  --log-file <path>     Write logs to a rotated file

Examples:
  planecast cast scene.yaml
  planecast --format yaml cast scene.yaml
  planecast pick scene.yaml 400 300`)
}

func loadScene(args []string) (*scene.Scene, error) {
	if len(args) != 1 {
		return nil, errUsage
	}
	return scene.Load(args[0])
}

func cmdCast(cfg *config.Config, args []string, out io.Writer) error {
	s, err := loadScene(args)
	if err != nil {
		return err
	}

	results := scene.Evaluate(s)
	hits := scene.Hits(results)
	logger.Info("scene cast",
		zap.Int("rays", len(s.Rays)),
		zap.Int("planes", len(s.Planes)),
		zap.Int("hits", len(hits)),
	)

	return writeResults(cfg, results, out)
}

func cmdPick(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) != 3 {
		return errUsage
	}
	x, err := parsePixel("x", args[1])
	if err != nil {
		return err
	}
	y, err := parsePixel("y", args[2])
	if err != nil {
		return err
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	results, err := scene.Pick(s, x, y)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	logger.Info("scene pick",
		zap.Float32("x", x),
		zap.Float32("y", y),
		zap.Int("planes", len(s.Planes)),
		zap.Int("hits", len(scene.Hits(results))),
	)

	return writeResults(cfg, results, out)
}

func parsePixel(axis, arg string) (float32, error) {
	v, err := strconv.ParseFloat(arg, 32)
	if err != nil {
		return 0, fmt.Errorf("pixel %s %q is not a number: %w", axis, arg, errUsage)
	}
	return float32(v), nil
}

// writeResults prints results in the configured format, dropping misses unless asked for.
func writeResults(cfg *config.Config, results []scene.Result, out io.Writer) error {
	if !cfg.Output.ShowMisses {
		results = scene.Hits(results)
	}

	if cfg.Output.Format == config.FormatYAML {
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(results); err != nil {
			_ = enc.Close()
			return fmt.Errorf("encoding results: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		return nil
	}

	for _, r := range results {
		var err error
		if r.Hit {
			_, err = fmt.Fprintf(out, "%s -> %s: hit %s t=%g\n", r.Ray, r.Plane, r.Point, r.T)
		} else {
			_, err = fmt.Fprintf(out, "%s -> %s: miss\n", r.Ray, r.Plane)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func cmdPlanes(args []string, out io.Writer) error {
	s, err := loadScene(args)
	if err != nil {
		return err
	}
	for _, p := range s.Planes {
		fmt.Fprintf(out, "%-12s %s\n", p.Name, p.Plane)
	}
	return nil
}
