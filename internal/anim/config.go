package anim

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/quadviz/internal/render"
)

var ErrInvalidConfig = errors.New("anim: invalid driver configuration")

const (
	DefaultInterval     = 50 * time.Millisecond
	DefaultWarmupFrames = 10
	DefaultTraceCeiling = 100
	DefaultTrimBlock    = 10
)

var DefaultViewport = render.Rect{XMin: -10, XMax: 20, YMin: -10, YMax: 20}

// Config holds the global animation settings fixed at construction time.
type Config struct {
	Interval     time.Duration
	WarmupFrames int
	TraceCeiling int
	TrimBlock    int
	Viewport     render.Rect
}

func DefaultConfig() Config {
	return Config{
		Interval:     DefaultInterval,
		WarmupFrames: DefaultWarmupFrames,
		TraceCeiling: DefaultTraceCeiling,
		TrimBlock:    DefaultTrimBlock,
		Viewport:     DefaultViewport,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval %v must be positive", ErrInvalidConfig, c.Interval)
	case c.WarmupFrames < 0:
		return fmt.Errorf("%w: warmup frames %d must not be negative", ErrInvalidConfig, c.WarmupFrames)
	case c.TraceCeiling < 0:
		return fmt.Errorf("%w: trace ceiling %d must not be negative", ErrInvalidConfig, c.TraceCeiling)
	case c.TrimBlock <= 0:
		return fmt.Errorf("%w: trim block %d must be positive", ErrInvalidConfig, c.TrimBlock)
	case !c.Viewport.Valid():
		return fmt.Errorf("%w: viewport %+v has no area", ErrInvalidConfig, c.Viewport)
	}
	return nil
}
