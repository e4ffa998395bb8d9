package panzoom

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrInvalidZoomRange is returned when the maximum zoom is below the minimum.
	ErrInvalidZoomRange = errors.New("panzoom: zoom max is below zoom min")
	// ErrInvalidConfig is returned for any other out-of-range setting.
	ErrInvalidConfig = errors.New("panzoom: invalid config")
)

const (
	defaultZoomMin         = 1.0
	defaultZoomMax         = 5.0
	defaultDoubleTapWindow = 300 * time.Millisecond
	defaultLongPressDelay  = 500 * time.Millisecond
	defaultTapSlop         = 10.0 // pixels
	defaultOverlayAlpha    = 0.5
)

// ClampMode selects how translation is constrained against the container.
type ClampMode uint8

const (
	// ClampSnap keeps the scaled content covering the container, centering
	// it on any axis where it is smaller, and stops pans exactly at the edge.
	ClampSnap ClampMode = iota
	// ClampNone leaves translation unconstrained.
	ClampNone
)

func (m ClampMode) String() string {
	switch m {
	case ClampSnap:
		return "snap"
	case ClampNone:
		return "none"
	default:
		return fmt.Sprintf("ClampMode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ClampMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ClampMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "snap":
		*m = ClampSnap
	case "none":
		*m = ClampNone
	default:
		return fmt.Errorf("%w: unknown clamp mode %q", ErrInvalidConfig, text)
	}
	return nil
}

// Config holds the tunables shared by the Model and Controller.
type Config struct {
	// ZoomMin and ZoomMax bound the zoom factor. A ZoomSource passed to
	// NewModel overrides both with its own range.
	ZoomMin, ZoomMax float64
	ClampMode        ClampMode
	// DoubleTapWindow is the longest gap between two releases that still
	// counts as a double-tap.
	DoubleTapWindow time.Duration
	// LongPressDelay is how long a stationary single contact must be held
	// before the capture trigger fires.
	LongPressDelay time.Duration
	// TapSlop is the farthest, in pixels, a contact may travel and still
	// count as a tap for double-tap detection. Zero disables the check.
	TapSlop float64
	// ResetDuration animates double-tap resets when positive.
	ResetDuration time.Duration
	// OverlayAlpha is the initial and reset opacity of the drawn overlay.
	OverlayAlpha float64
}

// DefaultConfig returns the standard gesture timings and a 1x-5x zoom range.
func DefaultConfig() Config {
	return Config{
		ZoomMin:         defaultZoomMin,
		ZoomMax:         defaultZoomMax,
		ClampMode:       ClampSnap,
		DoubleTapWindow: defaultDoubleTapWindow,
		LongPressDelay:  defaultLongPressDelay,
		TapSlop:         defaultTapSlop,
		OverlayAlpha:    defaultOverlayAlpha,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.ZoomMax < c.ZoomMin {
		return fmt.Errorf("%w: min %g, max %g", ErrInvalidZoomRange, c.ZoomMin, c.ZoomMax)
	}
	if c.ZoomMin <= 0 {
		return fmt.Errorf("%w: zoom min %g must be positive", ErrInvalidConfig, c.ZoomMin)
	}
	if c.DoubleTapWindow < 0 || c.LongPressDelay < 0 || c.ResetDuration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidConfig)
	}
	if c.TapSlop < 0 {
		return fmt.Errorf("%w: tap slop %g is negative", ErrInvalidConfig, c.TapSlop)
	}
	if c.OverlayAlpha < 0 || c.OverlayAlpha > 1 {
		return fmt.Errorf("%w: overlay alpha %g outside [0, 1]", ErrInvalidConfig, c.OverlayAlpha)
	}
	return nil
}

// fileConfig is the on-disk TOML layout. Durations are milliseconds.
type fileConfig struct {
	ZoomMin         float64 `toml:"zoom_min"`
	ZoomMax         float64 `toml:"zoom_max"`
	ClampMode       string  `toml:"clamp_mode"`
	DoubleTapMillis int64   `toml:"double_tap_ms"`
	LongPressMillis int64   `toml:"long_press_ms"`
	TapSlop         float64 `toml:"tap_slop"`
	ResetMillis     int64   `toml:"reset_duration_ms"`
	OverlayAlpha    float64 `toml:"overlay_alpha"`
}

func toFileConfig(c Config) fileConfig {
	return fileConfig{
		ZoomMin:         c.ZoomMin,
		ZoomMax:         c.ZoomMax,
		ClampMode:       c.ClampMode.String(),
		DoubleTapMillis: c.DoubleTapWindow.Milliseconds(),
		LongPressMillis: c.LongPressDelay.Milliseconds(),
		TapSlop:         c.TapSlop,
		ResetMillis:     c.ResetDuration.Milliseconds(),
		OverlayAlpha:    c.OverlayAlpha,
	}
}

func (f fileConfig) config() (Config, error) {
	var mode ClampMode
	if err := mode.UnmarshalText([]byte(f.ClampMode)); err != nil {
		return Config{}, err
	}
	return Config{
		ZoomMin:         f.ZoomMin,
		ZoomMax:         f.ZoomMax,
		ClampMode:       mode,
		DoubleTapWindow: time.Duration(f.DoubleTapMillis) * time.Millisecond,
		LongPressDelay:  time.Duration(f.LongPressMillis) * time.Millisecond,
		TapSlop:         f.TapSlop,
		ResetDuration:   time.Duration(f.ResetMillis) * time.Millisecond,
		OverlayAlpha:    f.OverlayAlpha,
	}, nil
}

// LoadConfig parses TOML configuration. Keys that are absent keep their
// DefaultConfig values. The result is validated.
func LoadConfig(data []byte) (Config, error) {
	fc := toFileConfig(DefaultConfig())
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("panzoom: parse config: %w", err)
	}
	cfg, err := fc.config()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a TOML config file. A missing file yields
// DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("panzoom: read %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// EncodeTOML encodes c in the same layout LoadConfig reads.
func (c Config) EncodeTOML() ([]byte, error) {
	data, err := toml.Marshal(toFileConfig(c))
	if err != nil {
		return nil, fmt.Errorf("panzoom: marshal config: %w", err)
	}
	return data, nil
}
