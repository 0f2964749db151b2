package render

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/kjhsato/pathtrace/pkg/core"
)

// Property 9: output pixel components are integers in [0, 255].
func TestWritePPMHeaderAndFormat(t *testing.T) {
	rows := [][]core.Colour{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
		{{X: 0.5, Y: 0.25, Z: 0.75}, {X: 0.999, Y: 0.999, Z: 0.999}},
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, 2, 2, rows); err != nil {
		t.Fatalf("WritePPM returned error: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if len(lines) != 3+4 {
		t.Fatalf("got %d lines, want %d (3 header + 4 pixels)", len(lines), 7)
	}
	if lines[0] != "P3" {
		t.Errorf("line 0 = %q, want P3", lines[0])
	}
	if lines[1] != "2 2" {
		t.Errorf("line 1 = %q, want \"2 2\"", lines[1])
	}
	if lines[2] != "255" {
		t.Errorf("line 2 = %q, want 255", lines[2])
	}

	for _, line := range lines[3:] {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			t.Fatalf("pixel line %q does not have 3 components", line)
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				t.Fatalf("component %q is not an integer", f)
			}
			if v < 0 || v > 255 {
				t.Fatalf("component %d outside [0, 255]", v)
			}
		}
	}
}

func TestWritePPMBlackAndWhite(t *testing.T) {
	rows := [][]core.Colour{{{X: 0, Y: 0, Z: 0}, {X: 0.999, Y: 0.999, Z: 0.999}}}

	var buf bytes.Buffer
	if err := WritePPM(&buf, 2, 1, rows); err != nil {
		t.Fatalf("WritePPM returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "0 0 0\n") {
		t.Errorf("expected a pure black pixel line, got:\n%s", out)
	}
	if !strings.Contains(out, "255 255 255\n") {
		t.Errorf("expected a near-white pixel to quantise to 255, got:\n%s", out)
	}
}
