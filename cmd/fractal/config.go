package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/gogpu/fractal"
)

// config holds the viewer's startup options. Values may come from a
// JSON config file (-config) with command-line flags overriding
// individual fields. Validation happens in two places: structural
// checks here, renderer invariants in fractal.New.
type config struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	MaxIterations int     `json:"max_iterations"`
	ColorScheme   string  `json:"color_scheme"`
	Landmark      string  `json:"landmark,omitempty"`
	Region        *region `json:"region,omitempty"`
	Progressive   bool    `json:"progressive"`
	InitialStride int     `json:"initial_stride"`
	Workers       int     `json:"workers"`
	Fullscreen    bool    `json:"fullscreen"`
}

// region mirrors fractal.Region for JSON decoding; two complex-plane
// corners.
type region struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// defaultConfig matches the library defaults plus an 800x600 window.
func defaultConfig() config {
	return config{
		Width:         800,
		Height:        600,
		MaxIterations: 200,
		ColorScheme:   fractal.SchemeBlackAndWhite.String(),
		Progressive:   true,
		InitialStride: 8,
	}
}

// loadConfig reads and decodes a JSON config file over base.
func loadConfig(path string, base config) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// rendererOptions translates the config into fractal options. Landmark
// and explicit region are mutually exclusive; an explicit region wins.
func (c config) rendererOptions() ([]fractal.Option, error) {
	scheme, err := fractal.ParseScheme(c.ColorScheme)
	if err != nil {
		return nil, err
	}

	opts := []fractal.Option{
		fractal.WithMaxIterations(c.MaxIterations),
		fractal.WithScheme(scheme),
		fractal.WithProgressive(c.Progressive),
		fractal.WithInitialStride(c.InitialStride),
		fractal.WithWorkers(c.Workers),
	}

	switch {
	case c.Region != nil:
		opts = append(opts, fractal.WithRegion(fractal.Region{
			XMin: c.Region.XMin,
			XMax: c.Region.XMax,
			YMin: c.Region.YMin,
			YMax: c.Region.YMax,
		}))
	case c.Landmark != "":
		r, ok := fractal.LookupRegion(c.Landmark)
		if !ok {
			return nil, fmt.Errorf("unknown landmark %q", c.Landmark)
		}
		opts = append(opts, fractal.WithRegion(r))
	}

	return opts, nil
}
