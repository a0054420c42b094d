package benchchart

import (
	"fmt"
	"os"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file.
//
// Every field is optional; missing fields keep the defaults of DefaultConfig:
//
//	backend: gg
//	schema: auto
//	output_dir: charts
//	pad_counter: true
//	layout:
//	  width: 1920
//	  font_path: /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf
type Config struct {
	Backend    string        `yaml:"backend"`
	Schema     string        `yaml:"schema"`
	OutputDir  string        `yaml:"output_dir"`
	PadCounter *bool         `yaml:"pad_counter"`
	Layout     render.Layout `yaml:"layout"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	opts := DefaultOptions()
	return Config{
		Backend: opts.Backend,
		Schema:  string(opts.Schema),
		Layout:  opts.Layout,
	}
}

// LoadConfig reads a YAML configuration on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if _, err := ParseSchema(config.Schema); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Options converts the configuration into generation options.
func (c Config) Options() (Options, error) {
	schema, err := ParseSchema(c.Schema)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Schema:     schema,
		Backend:    c.Backend,
		OutputDir:  c.OutputDir,
		PadCounter: c.PadCounter,
		Layout:     c.Layout,
	}, nil
}

// ParseSchema validates a schema name. Empty means auto.
func ParseSchema(s string) (models.Schema, error) {
	switch models.Schema(s) {
	case "", models.SchemaAuto:
		return models.SchemaAuto, nil
	case models.SchemaV1, models.SchemaV2:
		return models.Schema(s), nil
	default:
		return "", fmt.Errorf("invalid schema: %s (must be auto, v1, or v2)", s)
	}
}
