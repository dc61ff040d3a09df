package centerline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned, wrapped, by [Config.Validate].
var ErrInvalidConfig = errors.New("invalid config")

// Config controls approximation and outlining. The zero value is not
// useful; start from [DefaultConfig].
type Config struct {
	// Whether Image.Process approximates paths.
	Approximate bool `toml:"approximate"`
	// Whether Image.Process converts strokes to outlines.
	Outline bool `toml:"outline"`

	// Maximum squared distance between a merged segment and any sample of
	// the curve it replaces.
	ApproximationError      float64 `toml:"approximation_error"`
	ApproximationIterations int     `toml:"approximation_iterations"`

	// Maximum sum of squared distances between a fitted outline segment and
	// the true outline.
	OffsetError      float64 `toml:"offset_error"`
	OffsetIterations int     `toml:"offset_iterations"`

	// Never merge segments across corners.
	PreserveCorners bool `toml:"preserve_corners"`
	// Ratio of cross to dot product of the tangents at a knot above which
	// the knot is a corner.
	CornerThreshold float64 `toml:"corner_threshold"`

	Solver SolverKind `toml:"solver"`

	// Approximate length of each piece of round joins and caps.
	ArcChord float64 `toml:"arc_chord"`
	// If positive, centerlines are subdivided before outlining so that no
	// segment's control polygon is longer than this.
	MaxSegmentLength float64 `toml:"max_segment_length"`

	// Receives intermediate geometry. May be nil. Implementations stored
	// as a nil pointer must handle nil receivers, as [Collector] does.
	Debug DebugSink `toml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Approximate:             true,
		Outline:                 true,
		ApproximationError:      1.0,
		ApproximationIterations: 5,
		OffsetError:             1.8,
		OffsetIterations:        5,
		PreserveCorners:         true,
		CornerThreshold:         0.05,
		Solver:                  SolverGauss,
		ArcChord:                1.0,
	}
}

// LoadConfig reads a TOML configuration from r. Keys not present keep their
// default values; unknown keys are an error.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfigFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (cfg *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func (cfg *Config) Validate() error {
	positive := func(name string, v float64) error {
		if !(v > 0) {
			return fmt.Errorf("%s must be positive, got %g: %w", name, v, ErrInvalidConfig)
		}
		return nil
	}
	if err := positive("approximation_error", cfg.ApproximationError); err != nil {
		return err
	}
	if err := positive("offset_error", cfg.OffsetError); err != nil {
		return err
	}
	if err := positive("arc_chord", cfg.ArcChord); err != nil {
		return err
	}
	if cfg.ApproximationIterations < 1 {
		return fmt.Errorf("approximation_iterations must be at least 1, got %d: %w", cfg.ApproximationIterations, ErrInvalidConfig)
	}
	if cfg.OffsetIterations < 1 {
		return fmt.Errorf("offset_iterations must be at least 1, got %d: %w", cfg.OffsetIterations, ErrInvalidConfig)
	}
	if !(cfg.CornerThreshold >= 0) {
		return fmt.Errorf("corner_threshold must not be negative, got %g: %w", cfg.CornerThreshold, ErrInvalidConfig)
	}
	if !(cfg.MaxSegmentLength >= 0) {
		return fmt.Errorf("max_segment_length must not be negative, got %g: %w", cfg.MaxSegmentLength, ErrInvalidConfig)
	}
	switch cfg.Solver {
	case SolverGauss, SolverCholesky:
	default:
		return fmt.Errorf("unknown solver %s: %w", cfg.Solver, ErrInvalidConfig)
	}
	return nil
}
