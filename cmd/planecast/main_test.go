package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/planecast/internal/config"
	"github.com/Faultbox/planecast/internal/scene"
)

var (
	scenePath  = filepath.Join("..", "..", "internal", "scene", "testdata", "scene.yaml")
	cameraPath = filepath.Join("..", "..", "internal", "scene", "testdata", "camera.yaml")
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errBrokenPipe }

func TestCastText(t *testing.T) {
	var out bytes.Buffer
	if err := run(config.Default(), []string{"cast", scenePath}, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 hits:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "east -> wall: hit <") {
		t.Errorf("first line = %q", lines[0])
	}
	if strings.Contains(out.String(), "miss") {
		t.Error("misses should be hidden by default")
	}
}

func TestCastShowMisses(t *testing.T) {
	cfg := config.Default()
	cfg.Output.ShowMisses = true

	var out bytes.Buffer
	if err := run(cfg, []string{"cast", scenePath}, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 6 {
		t.Errorf("got %d lines, want 6:\n%s", got, out.String())
	}
	if !strings.Contains(out.String(), "east -> floor: miss") {
		t.Errorf("missing miss line:\n%s", out.String())
	}
}

func TestCastYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = config.FormatYAML

	var out bytes.Buffer
	if err := run(cfg, []string{"cast", scenePath}, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	var results []scene.Result
	if err := yaml.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("output is not yaml: %v\n%s", err, out.String())
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[1].Ray != "down" || results[1].Plane != "floor" || !results[1].Hit {
		t.Errorf("result 1 = %+v", results[1])
	}
}

func TestPlanes(t *testing.T) {
	var out bytes.Buffer
	if err := run(config.Default(), []string{"planes", scenePath}, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(out.String(), "+1x+0y+0z=5") {
		t.Errorf("wall equation missing:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "floor") {
		t.Errorf("floor missing:\n%s", out.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{"bogus"},
		{"cast"},
		{"planes", "a.yaml", "b.yaml"},
		{"pick", cameraPath, "400"},
		{"pick", cameraPath, "400", "top"},
		{"pick", cameraPath, "left", "300"},
	}
	for _, args := range tests {
		var out bytes.Buffer
		if err := run(config.Default(), args, &out); !errors.Is(err, errUsage) {
			t.Errorf("run(%v) error = %v, want usage error", args, err)
		}
	}
}

func TestRunMissingScene(t *testing.T) {
	var out bytes.Buffer
	err := run(config.Default(), []string{"cast", "does-not-exist.yaml"}, &out)
	if err == nil || errors.Is(err, errUsage) {
		t.Errorf("run() error = %v, want file error", err)
	}
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run(config.Default(), []string{"help"}, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("help output = %q", out.String())
	}
}

func TestPickText(t *testing.T) {
	var out bytes.Buffer
	if err := run(config.Default(), []string{"pick", cameraPath, "400", "300"}, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want the floor hit only:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "pixel(400,300) -> floor: hit <") {
		t.Errorf("line = %q", lines[0])
	}
}

func TestPickYAMLShowMisses(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = config.FormatYAML
	cfg.Output.ShowMisses = true

	var out bytes.Buffer
	if err := run(cfg, []string{"pick", cameraPath, "400", "300"}, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	var results []scene.Result
	if err := yaml.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("output is not yaml: %v\n%s", err, out.String())
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[0].Hit || results[1].Hit || results[2].Hit {
		t.Errorf("results = %+v, want floor hit and two misses", results)
	}
}

func TestPickWithoutCamera(t *testing.T) {
	var out bytes.Buffer
	err := run(config.Default(), []string{"pick", scenePath, "0", "0"}, &out)
	if !errors.Is(err, scene.ErrNoCamera) {
		t.Errorf("run() error = %v, want ErrNoCamera", err)
	}
}

func TestReportUnknownCommand(t *testing.T) {
	err := run(config.Default(), []string{"bogus"}, &bytes.Buffer{})

	var out bytes.Buffer
	report(&out, err)
	if !strings.Contains(out.String(), "unknown command: bogus") {
		t.Errorf("report() missing error message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("report() missing usage:\n%s", out.String())
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError bool
		wantUsage bool
	}{
		{"bare usage", errUsage, false, true},
		{"bad pixel", fmt.Errorf("pixel x %q is not a number: %w", "left", errUsage), true, true},
		{"failure", errors.New("reading scene: no such file"), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			report(&out, tt.err)
			if got := strings.Contains(out.String(), "Error: "); got != tt.wantError {
				t.Errorf("error line printed = %v, want %v:\n%s", got, tt.wantError, out.String())
			}
			if got := strings.Contains(out.String(), "Usage:"); got != tt.wantUsage {
				t.Errorf("usage printed = %v, want %v:\n%s", got, tt.wantUsage, out.String())
			}
		})
	}
}

func TestCastWriteError(t *testing.T) {
	for _, format := range []string{config.FormatText, config.FormatYAML} {
		t.Run(format, func(t *testing.T) {
			cfg := config.Default()
			cfg.Output.Format = format
			if err := run(cfg, []string{"cast", scenePath}, failingWriter{}); err == nil {
				t.Error("run() error = nil, want write failure")
			}
		})
	}
}
