package centerline

import (
	"fmt"
	"iter"
)

// Image is a traced image: a canvas size and the paths drawn on it.
type Image struct {
	Width  int
	Height int
	Paths  []*Path
}

// Tracer produces stroke paths from a raster image.
type Tracer interface {
	Trace() (*Image, error)
}

// Exporter writes processed images, for example as SVG.
type Exporter interface {
	Export(img *Image) error
}

func (img *Image) Validate() error {
	for i, p := range img.Paths {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
	}
	return nil
}

// Groups yields the paths that share one fill. A run of paths from
// GroupFirst to the next GroupLast is yielded together; all other paths
// are yielded on their own.
func (img *Image) Groups() iter.Seq[[]*Path] {
	return func(yield func([]*Path) bool) {
		paths := img.Paths
		for len(paths) > 0 {
			n := 1
			if paths[0].Group == GroupFirst {
				for n < len(paths) && paths[n].Group != GroupNormal && paths[n].Group != GroupFirst {
					n++
					if paths[n-1].Group == GroupLast {
						break
					}
				}
			}
			if !yield(paths[:n:n]) {
				return
			}
			paths = paths[n:]
		}
	}
}

// Process approximates and then outlines every path, as enabled by cfg.
// A nil cfg uses [DefaultConfig]. Processing stops at the first error.
func (img *Image) Process(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := img.Validate(); err != nil {
		return err
	}
	for i, p := range img.Paths {
		if cfg.Approximate {
			if err := Approximate(p, cfg); err != nil {
				return fmt.Errorf("approximating path %d: %w", i, err)
			}
		}
		if cfg.Outline {
			if err := Outline(p, cfg); err != nil {
				return fmt.Errorf("outlining path %d: %w", i, err)
			}
		}
	}
	return nil
}

// Run traces an image, processes it and exports the result.
func Run(t Tracer, cfg *Config, e Exporter) error {
	img, err := t.Trace()
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	if err := img.Process(cfg); err != nil {
		return err
	}
	if err := e.Export(img); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	return nil
}
