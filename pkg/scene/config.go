package scene

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OverrideConfig holds scene parameters that can be tweaked without
// recompiling, loaded from an optional "-config" YAML file (see
// SPEC_FULL.md section 11). Zero values mean "use the compiled-in
// default".
type OverrideConfig struct {
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	Width           int    `yaml:"width"`
	OutputPath      string `yaml:"output_path"`
}

// LoadOverrideConfig reads and parses a YAML override file. A
// missing or malformed file is a fatal configuration error.
func LoadOverrideConfig(path string) (OverrideConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OverrideConfig{}, errors.Wrapf(err, "reading scene config %q", path)
	}

	var cfg OverrideConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OverrideConfig{}, errors.Wrapf(err, "parsing scene config %q", path)
	}
	return cfg, nil
}

// Apply overlays non-zero fields from the override onto width,
// samples, depth and output path, returning the effective values.
func (c OverrideConfig) Apply(width, samples, depth int, output string) (int, int, int, string) {
	if c.Width != 0 {
		width = c.Width
	}
	if c.SamplesPerPixel != 0 {
		samples = c.SamplesPerPixel
	}
	if c.MaxDepth != 0 {
		depth = c.MaxDepth
	}
	if c.OutputPath != "" {
		output = c.OutputPath
	}
	return width, samples, depth, output
}
