package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avercin/chartembed/chart"
)

type Config struct {
	Chart ChartConfig `yaml:"chart"`
	Log   LogConfig   `yaml:"log"`
}

// ChartConfig mirrors chart.Options for the YAML config file. Empty fields
// keep the renderer defaults.
type ChartConfig struct {
	Element   string `yaml:"element,omitempty"`
	Class     string `yaml:"class,omitempty"`
	Global    string `yaml:"global,omitempty"`
	IDPrefix  string `yaml:"id_prefix,omitempty"`
	IDLength  int    `yaml:"id_length,omitempty"`
	ScriptSrc string `yaml:"script_src,omitempty"`
	// UUIDIDs switches anchor ids from random tokens to uuids.
	UUIDIDs bool `yaml:"uuid_ids,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options translates the chart section into renderer options.
func (c ChartConfig) Options() chart.Options {
	opts := chart.Options{
		Element:   c.Element,
		Class:     c.Class,
		Global:    c.Global,
		IDPrefix:  c.IDPrefix,
		IDLength:  c.IDLength,
		ScriptSrc: c.ScriptSrc,
	}
	if c.UUIDIDs {
		opts.IDs = chart.UUIDSource{Prefix: c.IDPrefix}
	}
	return opts
}
