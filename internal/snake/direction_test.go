package snake

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"up", DirUp, false},
		{"Down", DirDown, false},
		{" LEFT ", DirLeft, false},
		{"r", DirRight, false},
		{"", DirNone, false},
		{"none", DirNone, false},
		{"north", DirNone, true},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestDirectionString(t *testing.T) {
	for _, d := range []Direction{DirNone, DirUp, DirDown, DirLeft, DirRight} {
		parsed, err := ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v; expected %v", d.String(), parsed, err, d)
		}
	}
	if Direction(42).String() != "unknown" {
		t.Errorf("Direction(42).String() = %q, expected unknown", Direction(42).String())
	}
}

func TestDirectionYAML(t *testing.T) {
	var doc struct {
		Dir Direction `yaml:"dir"`
	}
	if err := yaml.Unmarshal([]byte("dir: up\n"), &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if doc.Dir != DirUp {
		t.Errorf("Dir = %v, expected up", doc.Dir)
	}

	if err := yaml.Unmarshal([]byte("dir: sideways\n"), &doc); err == nil {
		t.Error("expected error for unknown direction")
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != "dir: up\n" {
		t.Errorf("Marshal = %q, expected %q", out, "dir: up\n")
	}
}
