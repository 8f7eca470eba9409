package fit

import (
	"go.uber.org/zap"

	"github.com/textfit/textfit/errors"
)

// Mode selects the fitting layout.
type Mode int

const (
	// ModeMulti fits wrapped, multi-line content; height is the primary axis.
	ModeMulti Mode = iota
	// ModeSingle fits headline-style single-line content; width is the
	// primary axis.
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "multi"
}

// Default size bounds applied when a Config leaves them unset.
const (
	DefaultMinSize = 1
	DefaultMaxSize = 100
)

// Config bounds a fit run. The zero value is usable: it fits multi-line
// content into [1, 100].
type Config struct {
	// MinSize and MaxSize bound the font-size search domain, inclusive.
	// Both are positive; MinSize <= MaxSize.
	MinSize int
	MaxSize int
	// Mode selects single-line or multi-line fitting.
	Mode Mode
	// CheckHeight also constrains single-line content by its height. By
	// default ModeSingle fits width only; ModeMulti always checks both
	// axes and ignores this field.
	CheckHeight bool
}

// Normalized returns the config with defaults applied and the range
// invariant restored. Violations are logged as warnings, never raised:
// a non-positive bound falls back to its default and an inverted range
// is swapped.
func (c Config) Normalized() Config {
	if c.MinSize <= 0 {
		if c.MinSize < 0 {
			Logger().Warn("min size must be positive, using default",
				zap.Int("min_size", c.MinSize),
				zap.Int("default", DefaultMinSize))
		}
		c.MinSize = DefaultMinSize
	}
	if c.MaxSize <= 0 {
		if c.MaxSize < 0 {
			Logger().Warn("max size must be positive, using default",
				zap.Int("max_size", c.MaxSize),
				zap.Int("default", DefaultMaxSize))
		}
		c.MaxSize = DefaultMaxSize
	}
	if c.MinSize > c.MaxSize {
		Logger().Warn("size range inverted, swapping bounds",
			zap.Error(errors.InvalidRange(c.MinSize, c.MaxSize)))
		c.MinSize, c.MaxSize = c.MaxSize, c.MinSize
	}
	return c
}
