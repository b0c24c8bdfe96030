package tkpath

import "log/slog"

// RenderConfig holds the per-render switches a backend reads when a
// context is created. It replaces process-wide rendering toggles: two
// contexts with different configurations can coexist.
type RenderConfig struct {
	// AntiAlias enables coverage anti-aliasing. Default true.
	AntiAlias bool

	// PremultipliedAlpha selects whether surface snapshots are returned
	// premultiplied (*image.RGBA) or straight (*image.NRGBA). Default true.
	PremultipliedAlpha bool

	// Depixelize snaps odd-width horizontal and vertical strokes to pixel
	// centers so they render crisp. Default true.
	Depixelize bool

	// LinearRGB interpolates gradient colors in linear light instead of
	// sRGB. Default false.
	LinearRGB bool

	// Logger receives backend diagnostics. Nil means the package logger.
	Logger *slog.Logger
}

// Option configures a RenderConfig during context creation.
//
// Example:
//
//	ctx, err := tkpath.Open("scanline", dst,
//	    tkpath.WithAntiAlias(false),
//	    tkpath.WithLinearRGB(true))
type Option func(*RenderConfig)

// DefaultRenderConfig returns the configuration used when no options are
// given.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		AntiAlias:          true,
		PremultipliedAlpha: true,
		Depixelize:         true,
	}
}

// NewRenderConfig applies opts over the defaults.
func NewRenderConfig(opts ...Option) RenderConfig {
	cfg := DefaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Log returns the configured logger, falling back to Logger().
func (c RenderConfig) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger()
}

// WithAntiAlias enables or disables anti-aliasing.
func WithAntiAlias(on bool) Option {
	return func(c *RenderConfig) {
		c.AntiAlias = on
	}
}

// WithPremultipliedAlpha selects the alpha representation of snapshots.
func WithPremultipliedAlpha(on bool) Option {
	return func(c *RenderConfig) {
		c.PremultipliedAlpha = on
	}
}

// WithDepixelize enables or disables stroke pixel alignment.
func WithDepixelize(on bool) Option {
	return func(c *RenderConfig) {
		c.Depixelize = on
	}
}

// WithLinearRGB enables linear-light gradient interpolation.
func WithLinearRGB(on bool) Option {
	return func(c *RenderConfig) {
		c.LinearRGB = on
	}
}

// WithLogger sets a logger for one context, overriding SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(c *RenderConfig) {
		c.Logger = l
	}
}
