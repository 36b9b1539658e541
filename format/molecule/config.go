package molecule

import (
	"github.com/eluv-io/errors-go"
	"github.com/ghodss/yaml"
)

// DefaultMaxBufferSize is the default upper bound of a buffer accepted for
// decoding.
const DefaultMaxBufferSize = 16 * 1024 * 1024

// Config holds the limits applied when decoding untrusted buffers. The zero
// value of a limit disables it. A nil *Config is equivalent to DefaultConfig().
type Config struct {
	// MaxBufferSize is the maximum size in bytes of a buffer passed to Unpack.
	MaxBufferSize int `json:"max_buffer_size"`
	// MaxItemCount is the maximum number of elements of a single vector.
	MaxItemCount int `json:"max_item_count"`
	// Compatible allows tables with more fields than expected; the additional
	// trailing fields are ignored.
	Compatible bool `json:"compatible"`
}

// DefaultConfig returns the default decoding configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxBufferSize: DefaultMaxBufferSize,
	}
}

// LoadConfig parses the given YAML or JSON text into a Config. Values not
// present in the text keep their defaults.
func LoadConfig(text []byte) (*Config, error) {
	e := errors.Template("LoadConfig", errors.K.Invalid)

	cfg := DefaultConfig()
	err := yaml.Unmarshal(text, cfg)
	if err != nil {
		return nil, e(err)
	}
	err = cfg.Validate()
	if err != nil {
		return nil, e(err)
	}
	return cfg, nil
}

// Validate checks that all limits are non-negative.
func (c *Config) Validate() error {
	e := errors.Template("Config.Validate", errors.K.Invalid)
	if c == nil {
		return nil
	}
	if c.MaxBufferSize < 0 {
		return e("reason", "negative limit", "max_buffer_size", c.MaxBufferSize)
	}
	if c.MaxItemCount < 0 {
		return e("reason", "negative limit", "max_item_count", c.MaxItemCount)
	}
	return nil
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	return c
}

// CheckBufferSize returns an error if a buffer of the given size exceeds the
// configured maximum.
func (c *Config) CheckBufferSize(size int) error {
	limit := c.orDefault().MaxBufferSize
	if limit > 0 && size > limit {
		return fail("molecule.CheckBufferSize", ErrSizeLimit, "size", size, "max_buffer_size", limit)
	}
	return nil
}

func (c *Config) checkItemCount(count uint64) error {
	limit := c.orDefault().MaxItemCount
	if limit > 0 && count > uint64(limit) {
		return fail("molecule.checkItemCount", ErrSizeLimit, "count", count, "max_item_count", limit)
	}
	return nil
}

func (c *Config) compatible() bool {
	return c != nil && c.Compatible
}
