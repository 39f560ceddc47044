package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/registry"
	"github.com/vovakirdan/torus-snake/internal/replay"
	"github.com/vovakirdan/torus-snake/internal/snake"
)

func runScenario(t *testing.T, id string) replay.Result {
	t.Helper()
	script, err := resolveScript(id)
	if err != nil {
		t.Fatalf("resolveScript(%q) error: %v", id, err)
	}
	field, origin, err := script.Setup(core.DefaultConfig())
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	res, err := replay.NewRunner(log.New(io.Discard), field, true).
		Run(context.Background(), snake.New(origin.X, origin.Y), script)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return res
}

func TestResolveScriptUnknown(t *testing.T) {
	if _, err := resolveScript("nope"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestWriteTable(t *testing.T) {
	res := runScenario(t, "self-collision")

	var buf bytes.Buffer
	if err := writeResult(&buf, res, "table", false); err != nil {
		t.Fatalf("writeResult error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Replay self-collision on 10x10 field", "TICK", "grew", "collision", "Self collision at tick 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableNotesTailCell(t *testing.T) {
	res := runScenario(t, "tail-chase")

	var buf bytes.Buffer
	if err := writeResult(&buf, res, "table", false); err != nil {
		t.Fatalf("writeResult error: %v", err)
	}
	var noted int
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), " tail") {
			noted++
		}
	}
	// Ticks 4 through 9 all step into the vacating tail cell.
	if noted != 6 {
		t.Errorf("rows noted tail = %d, expected 6:\n%s", noted, buf.String())
	}
}

func TestWriteYAMLQuiet(t *testing.T) {
	res := runScenario(t, "wrap-right")

	var buf bytes.Buffer
	if err := writeResult(&buf, res, "yaml", true); err != nil {
		t.Fatalf("writeResult error: %v", err)
	}

	var decoded struct {
		Script string `yaml:"script"`
		Frames []any  `yaml:"frames"`
		Final  struct {
			Head core.Point      `yaml:"head"`
			Dir  snake.Direction `yaml:"dir"`
		} `yaml:"final"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded.Script != "wrap-right" {
		t.Errorf("script = %q, expected wrap-right", decoded.Script)
	}
	if len(decoded.Frames) != 0 {
		t.Errorf("quiet output should omit frames, got %d", len(decoded.Frames))
	}
	if decoded.Final.Head != (core.Point{X: 0, Y: 5}) || decoded.Final.Dir != snake.DirRight {
		t.Errorf("final = %v %v, expected (0,5) right", decoded.Final.Head, decoded.Final.Dir)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := writeResult(io.Discard, replay.Result{}, "xml", false); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing:\n%s", out)
	}
}

// fieldFlags parses args into a flag set bound to the global size flags.
func fieldFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	oldW, oldH := flagWidth, flagHeight
	t.Cleanup(func() { flagWidth, flagHeight = oldW, oldH })

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntVar(&flagWidth, "width", 0, "")
	fs.IntVar(&flagHeight, "height", 0, "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error: %v", args, err)
	}
	return fs
}

func TestFieldFlagsOverrideScenario(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected core.Field
	}{
		{"no flags", nil, core.Field{W: 10, H: 10}},
		{"both", []string{"--width", "12", "--height", "8"}, core.Field{W: 12, H: 8}},
		{"width only", []string{"--width", "15"}, core.Field{W: 15, H: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			script, err := resolveScript("grow")
			if err != nil {
				t.Fatalf("resolveScript error: %v", err)
			}
			script = applyFieldFlags(fieldFlags(t, tc.args...), script)

			field, _, err := script.Setup(core.DefaultConfig())
			if err != nil {
				t.Fatalf("Setup error: %v", err)
			}
			if field != tc.expected {
				t.Errorf("field = %+v, expected %+v", field, tc.expected)
			}
		})
	}
}

func TestFieldFlagsRejectTooNarrow(t *testing.T) {
	script, err := resolveScript("grow")
	if err != nil {
		t.Fatalf("resolveScript error: %v", err)
	}
	// grow spawns its tail at x=1, so the head needs width >= 4.
	script = applyFieldFlags(fieldFlags(t, "--width", "3"), script)

	if _, _, err := script.Setup(core.DefaultConfig()); !errors.Is(err, core.ErrInvalidSpawn) {
		t.Errorf("Setup error = %v, expected ErrInvalidSpawn", err)
	}
}

func TestWriteScenarioList(t *testing.T) {
	var buf bytes.Buffer
	if err := writeScenarioList(&buf, registry.List()); err != nil {
		t.Fatalf("writeScenarioList error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ID", "TICKS", "wrap-left", "tail-chase", "8 scenarios"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := writeScenarioList(&buf, nil); err != nil {
		t.Fatalf("writeScenarioList error: %v", err)
	}
	if !strings.Contains(buf.String(), "No scenarios") {
		t.Errorf("empty list output = %q", buf.String())
	}
}
