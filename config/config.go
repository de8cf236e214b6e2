package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antclust/antgrid"
	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/directwalk"
	"github.com/katalvlaran/antclust/gridextract"
)

// Engine selector values.
const (
	EngineDirectWalk = "directwalk"
	EngineAntGrid    = "antgrid"
)

// Sentinel errors for configuration loading. All wrap core.ErrConfiguration.
var (
	// ErrUnreadable indicates the configuration file could not be read.
	ErrUnreadable = fmt.Errorf("config: file not readable: %w", core.ErrConfiguration)
	// ErrMalformed indicates the YAML payload did not parse.
	ErrMalformed = fmt.Errorf("config: malformed yaml: %w", core.ErrConfiguration)
	// ErrInvalid indicates a parsed value violates its constraints.
	ErrInvalid = fmt.Errorf("config: invalid value: %w", core.ErrConfiguration)
)

var validate = validator.New()

// DirectWalk configures the directwalk engine; fields mirror
// directwalk.Options.
type DirectWalk struct {
	Alpha               float64 `yaml:"alpha" validate:"gt=0"`
	NeighborhoodSize    float64 `yaml:"neighborhood_size" validate:"gte=0"`
	NormalizeAttributes bool    `yaml:"normalize_attributes"`
	AlignDistances      bool    `yaml:"align_distances"`
	RaiseTolerance      float64 `yaml:"raise_tolerance" validate:"gte=0"`
	NoiseDetection      bool    `yaml:"noise_detection"`
	NoiseThreshold      float64 `yaml:"noise_threshold" validate:"gte=0"`
	Ants                int     `yaml:"ants" validate:"gte=1"`
	CallsPerCycle       int     `yaml:"calls_per_cycle" validate:"gte=1"`
	MaxCycles           int     `yaml:"max_cycles" validate:"gte=1"`
	IdleShutdown        int     `yaml:"idle_shutdown" validate:"gte=1"`
	MaxClusters         int     `yaml:"max_clusters" validate:"gte=0"`
}

// Extract configures the gridextract pass of the antgrid engine.
type Extract struct {
	Connectivity    int `yaml:"connectivity" validate:"oneof=4 8"`
	SingletonWindow int `yaml:"singleton_window" validate:"gte=0"`
	MaxClusters     int `yaml:"max_clusters" validate:"gte=0"`
}

// AntGrid configures the antgrid engine; fields mirror antgrid.Options.
type AntGrid struct {
	Alpha               float64 `yaml:"alpha" validate:"gt=0"`
	Kp                  float64 `yaml:"kp" validate:"gt=0"`
	Kd                  float64 `yaml:"kd" validate:"gt=0"`
	NormalizeAttributes bool    `yaml:"normalize_attributes"`
	Drop                string  `yaml:"drop" validate:"oneof=original symmetric"`
	Width               int     `yaml:"width" validate:"gte=3"`
	Height              int     `yaml:"height" validate:"gte=3"`
	Ants                int     `yaml:"ants" validate:"gte=1"`
	CallsPerCycle       int     `yaml:"calls_per_cycle" validate:"gte=1"`
	MaxCycles           int     `yaml:"max_cycles" validate:"gte=1"`
	ViewRange           int     `yaml:"view_range" validate:"gte=0"`
	MaxSpeed            int     `yaml:"max_speed" validate:"gte=1"`
	DropRange           int     `yaml:"drop_range" validate:"gte=0"`
	MemorySize          int     `yaml:"memory_size" validate:"gte=0"`
	DestructiveCycles   int     `yaml:"destructive_cycles" validate:"gte=0"`
	DestructivePickups  int     `yaml:"destructive_pickups" validate:"gte=0"`
	Extract             Extract `yaml:"extract"`
}

// Config is one run description. Zero values are filled from Default
// before parsing, so a file only needs the fields it changes.
type Config struct {
	Engine      string     `yaml:"engine" validate:"oneof=directwalk antgrid"`
	Seed        int64      `yaml:"seed"`
	Distance    string     `yaml:"distance" validate:"oneof=euclidean manhattan warp"`
	WarpWindow  int        `yaml:"warp_window" validate:"gte=0"`
	WarpPenalty float64    `yaml:"warp_penalty" validate:"gte=0"`
	SkipMissing bool       `yaml:"skip_missing"`
	DirectWalk  DirectWalk `yaml:"directwalk"`
	AntGrid     AntGrid    `yaml:"antgrid"`
}

// Default returns a Config mirroring both engines' DefaultOptions, with
// the directwalk engine selected and Euclidean distance.
func Default() Config {
	dw := directwalk.DefaultOptions()
	ag := antgrid.DefaultOptions()
	return Config{
		Engine:   EngineDirectWalk,
		Distance: "euclidean",
		DirectWalk: DirectWalk{
			Alpha:               dw.Alpha,
			NeighborhoodSize:    dw.NeighborhoodSize,
			NormalizeAttributes: dw.NormalizeAttributes,
			RaiseTolerance:      dw.RaiseTolerance,
			NoiseThreshold:      dw.NoiseThreshold,
			Ants:                dw.Ants,
			CallsPerCycle:       dw.CallsPerCycle,
			MaxCycles:           dw.MaxCycles,
			IdleShutdown:        dw.IdleShutdown,
			MaxClusters:         dw.MaxClusters,
		},
		AntGrid: AntGrid{
			Alpha:               ag.Alpha,
			Kp:                  ag.Kp,
			Kd:                  ag.Kd,
			NormalizeAttributes: ag.NormalizeAttributes,
			Drop:                "original",
			Width:               ag.Width,
			Height:              ag.Height,
			Ants:                ag.Ants,
			CallsPerCycle:       ag.CallsPerCycle,
			MaxCycles:           ag.MaxCycles,
			ViewRange:           ag.ViewRange,
			MaxSpeed:            ag.MaxSpeed,
			DropRange:           ag.DropRange,
			MemorySize:          ag.MemorySize,
			DestructiveCycles:   ag.DestructiveCycles,
			DestructivePickups:  ag.DestructivePickups,
			Extract: Extract{
				Connectivity:    4,
				SingletonWindow: ag.Extract.SingletonWindow,
				MaxClusters:     ag.Extract.MaxClusters,
			},
		},
	}
}

// Load reads and parses a YAML run configuration from path.
//
// Errors: ErrUnreadable, ErrMalformed, ErrInvalid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return Parse(data)
}

// Parse overlays data on Default and validates the result.
//
// Errors: ErrMalformed, ErrInvalid.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every tagged constraint.
//
// Errors: ErrInvalid carrying the offending field names.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
}

// DistanceFunc resolves the configured metric, wrapped for missing-value
// skipping when requested.
func (c *Config) DistanceFunc() core.DistanceFunc {
	fn := core.EuclideanDistance
	switch c.Distance {
	case "manhattan":
		fn = core.ManhattanDistance
	case "warp":
		fn = core.WarpingDistance(c.WarpWindow, c.WarpPenalty)
	}
	if c.SkipMissing {
		fn = core.SkipMissing(fn)
	}
	return fn
}

// DirectWalkOptions maps the configuration onto directwalk.Options.
func (c *Config) DirectWalkOptions() directwalk.Options {
	opts := directwalk.DefaultOptions()
	opts.Alpha = c.DirectWalk.Alpha
	opts.NeighborhoodSize = c.DirectWalk.NeighborhoodSize
	opts.NormalizeAttributes = c.DirectWalk.NormalizeAttributes
	opts.AlignDistances = c.DirectWalk.AlignDistances
	opts.RaiseTolerance = c.DirectWalk.RaiseTolerance
	opts.NoiseDetection = c.DirectWalk.NoiseDetection
	opts.NoiseThreshold = c.DirectWalk.NoiseThreshold
	opts.Ants = c.DirectWalk.Ants
	opts.CallsPerCycle = c.DirectWalk.CallsPerCycle
	opts.MaxCycles = c.DirectWalk.MaxCycles
	opts.IdleShutdown = c.DirectWalk.IdleShutdown
	opts.MaxClusters = c.DirectWalk.MaxClusters
	opts.Distance = c.DistanceFunc()
	opts.Seed = c.Seed
	return opts
}

// AntGridOptions maps the configuration onto antgrid.Options.
func (c *Config) AntGridOptions() antgrid.Options {
	opts := antgrid.DefaultOptions()
	opts.Alpha = c.AntGrid.Alpha
	opts.Kp = c.AntGrid.Kp
	opts.Kd = c.AntGrid.Kd
	opts.NormalizeAttributes = c.AntGrid.NormalizeAttributes
	opts.Drop = antgrid.DropOriginal
	if c.AntGrid.Drop == "symmetric" {
		opts.Drop = antgrid.DropSymmetric
	}
	opts.Width = c.AntGrid.Width
	opts.Height = c.AntGrid.Height
	opts.Ants = c.AntGrid.Ants
	opts.CallsPerCycle = c.AntGrid.CallsPerCycle
	opts.MaxCycles = c.AntGrid.MaxCycles
	opts.ViewRange = c.AntGrid.ViewRange
	opts.MaxSpeed = c.AntGrid.MaxSpeed
	opts.DropRange = c.AntGrid.DropRange
	opts.MemorySize = c.AntGrid.MemorySize
	opts.DestructiveCycles = c.AntGrid.DestructiveCycles
	opts.DestructivePickups = c.AntGrid.DestructivePickups
	opts.Extract = gridextract.Options{
		Conn:            gridextract.Conn4,
		SingletonWindow: c.AntGrid.Extract.SingletonWindow,
		MaxClusters:     c.AntGrid.Extract.MaxClusters,
		Distance:        c.DistanceFunc(),
	}
	if c.AntGrid.Extract.Connectivity == 8 {
		opts.Extract.Conn = gridextract.Conn8
	}
	opts.Distance = c.DistanceFunc()
	opts.Seed = c.Seed
	return opts
}
