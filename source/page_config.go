package source

const (
	// DefaultPageSize is the default number of items per page when not specified.
	DefaultPageSize = 50

	// DefaultMaxPageSize is the default maximum page size allowed.
	// This protects against resource exhaustion from unreasonably large pages.
	DefaultMaxPageSize = 1000
)

// PageConfig holds page size configuration.
// Use NewPageConfig() to create a config with sensible defaults,
// then customize using the With* methods.
//
// Example:
//
//	config := source.NewPageConfig().WithMaxSize(500)
//	size := config.EffectiveSize(requested)
type PageConfig struct {
	// DefaultSize is the page size used when none is requested.
	DefaultSize int

	// MaxSize is the maximum allowed page size. Larger requests are capped.
	MaxSize int
}

// NewPageConfig creates a PageConfig with sensible defaults:
// - DefaultSize: 50
// - MaxSize: 1000
func NewPageConfig() *PageConfig {
	return &PageConfig{
		DefaultSize: DefaultPageSize,
		MaxSize:     DefaultMaxPageSize,
	}
}

// WithDefaultSize sets the default page size and returns the config for chaining.
func (c *PageConfig) WithDefaultSize(size int) *PageConfig {
	if size > 0 {
		c.DefaultSize = size
	}
	return c
}

// WithMaxSize sets the maximum page size and returns the config for chaining.
func (c *PageConfig) WithMaxSize(size int) *PageConfig {
	if size > 0 {
		c.MaxSize = size
	}
	return c
}

// EffectiveSize returns the page size to use, applying defaults and caps.
// - If requested is zero or negative, returns DefaultSize
// - If requested exceeds MaxSize, returns MaxSize
// - Otherwise returns requested
func (c *PageConfig) EffectiveSize(requested int) int {
	if c == nil {
		c = NewPageConfig()
	}

	defaultSize := c.DefaultSize
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}

	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}

	if requested <= 0 {
		return min(defaultSize, maxSize)
	}

	return min(requested, maxSize)
}

// Offset returns the number of items preceding pageNumber (1-based) for the
// given page size. Page numbers below 1 map to offset 0.
func Offset(pageNumber, pageSize int) int {
	if pageNumber < 1 || pageSize <= 0 {
		return 0
	}
	return (pageNumber - 1) * pageSize
}
