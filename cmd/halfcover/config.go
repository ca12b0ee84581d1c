package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/halfcover/geom"
)

// Config is the optional JSON settings file.
type Config struct {
	Segments int  // vertices per printed circle polyline
	Verify   bool // recount coverage after solving
	Color    bool // coloured log lines
}

func defaultConfig() Config {
	return Config{Segments: geom.DefaultSegments, Verify: true, Color: true}
}

func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return conf, errors.New("missing config file: " + path)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	if err = json.Unmarshal(buf, &conf); err != nil {
		return conf, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
	}
	if conf.Segments < 3 {
		return conf, fmt.Errorf("segments must be >= 3 in config file %s", path)
	}

	return conf, nil
}

// loadPoints reads a JSON array of [x, y] pairs. Every entry must hold
// exactly two numbers.
func loadPoints(path string) ([]geom.Point, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read points file %s: %w", path, err)
	}

	var raw [][]float64
	if err = json.Unmarshal(buf, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in points file %s: %w", path, err)
	}

	out := make([]geom.Point, len(raw))
	for i, xy := range raw {
		if len(xy) != 2 {
			return nil, fmt.Errorf("point %d in points file %s has %d coordinates, want 2", i, path, len(xy))
		}
		out[i] = geom.NewPoint(xy[0], xy[1])
	}

	return out, nil
}
