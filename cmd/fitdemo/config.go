package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/textfit/textfit/fit"
)

// config is the demo's TOML-file shape. Flags given on the command line
// override whatever the file set.
type config struct {
	Text        string `toml:"text"`
	Mode        string `toml:"mode"`
	MinSize     int    `toml:"min-size"`
	MaxSize     int    `toml:"max-size"`
	CheckHeight bool   `toml:"check-height"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Padding     int    `toml:"padding"`
}

func defaultConfig() config {
	return config{Mode: "multi"}
}

// loadConfig reads a TOML config file. Unknown keys are reported on
// stderr and ignored, so a file written for a newer release still
// loads.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if !errors.As(err, &strict) {
			return config{}, fmt.Errorf("parse config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %s: ignoring unknown keys:\n%s\n", path, strict.String())
		cfg = defaultConfig()
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if cfg.Mode != "" && cfg.Mode != "multi" && cfg.Mode != "single" {
		return config{}, fmt.Errorf("config mode %q, want multi or single", cfg.Mode)
	}
	return cfg, nil
}

// applyFlags overlays explicitly-set command-line flags onto the config.
func (c *config) applyFlags(fs *flag.FlagSet, text, mode string, minSize, maxSize int, checkHeight bool, width, height, padding int) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["text"] {
		c.Text = text
	}
	if set["mode"] {
		c.Mode = strings.ToLower(mode)
	}
	if set["min"] {
		c.MinSize = minSize
	}
	if set["max"] {
		c.MaxSize = maxSize
	}
	if set["check-height"] {
		c.CheckHeight = checkHeight
	}
	if set["width"] {
		c.Width = width
	}
	if set["height"] {
		c.Height = height
	}
	if set["padding"] {
		c.Padding = padding
	}
}

func (c config) fitMode() fit.Mode {
	if c.Mode == "single" {
		return fit.ModeSingle
	}
	return fit.ModeMulti
}

func (c config) fitConfig() fit.Config {
	return fit.Config{
		MinSize:     c.MinSize,
		MaxSize:     c.MaxSize,
		Mode:        c.fitMode(),
		CheckHeight: c.CheckHeight,
	}
}
