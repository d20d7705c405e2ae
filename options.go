package emojilock

// DefaultGroupSize is the number of symbols per display group in encrypted
// output.
const DefaultGroupSize = 8

// encryptConfig holds configuration for Encrypt.
type encryptConfig struct {
	groupSize int
}

// Option configures Encrypt output.
type Option func(*encryptConfig)

// WithGroupSize sets the number of symbols per display group. Values below 1
// disable grouping.
func WithGroupSize(n int) Option {
	return func(c *encryptConfig) {
		c.groupSize = n
	}
}

// WithoutGrouping disables display grouping entirely; the output is a single
// unbroken run of symbols.
func WithoutGrouping() Option {
	return func(c *encryptConfig) {
		c.groupSize = 0
	}
}

func newEncryptConfig(opts []Option) *encryptConfig {
	cfg := &encryptConfig{groupSize: DefaultGroupSize}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
