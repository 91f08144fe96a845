package main

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/vara-lang/go-vara/encode"
)

const configFileName = ".va.yaml"

type MainConfig struct {
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=no-color desc='disable colored output'"`

	File FileConfig

	Main *cli.Command
}

// FileConfig is the optional ~/.va.yaml.
type FileConfig struct {
	Prompt string `yaml:"prompt"`
	Color  *bool  `yaml:"color"`
}

// loadFileConfig reads ~/.va.yaml, best effort: a missing or malformed
// file means defaults.
func loadFileConfig() FileConfig {
	res := FileConfig{Prompt: "va> "}
	home, err := os.UserHomeDir()
	if err != nil {
		return res
	}
	data, err := os.ReadFile(filepath.Join(home, configFileName))
	if err != nil {
		return res
	}
	if err := yaml.Unmarshal(data, &res); err != nil {
		return FileConfig{Prompt: "va> "}
	}
	if res.Prompt == "" {
		res.Prompt = "va> "
	}
	return res
}

// colors resolves the color setting: flags beat the config file, which
// beats tty detection.
func (cfg *MainConfig) colors() *encode.Colors {
	switch {
	case cfg.NoColor:
		return nil
	case cfg.Color:
		return encode.NewColors()
	case cfg.File.Color != nil:
		if *cfg.File.Color {
			return encode.NewColors()
		}
		return nil
	case encode.WantColor(os.Stdout):
		return encode.NewColors()
	}
	return nil
}
