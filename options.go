package blockrsa

import "github.com/go-logr/logr"

// Option configures a BlockCipher.
type Option func(*BlockCipher)

// WithLogger routes diagnostic logs to logger. Block size decisions are logged
// at V(1). Plaintext and private exponents are never logged.
func WithLogger(logger logr.Logger) Option {
	return func(c *BlockCipher) {
		c.log = logger
	}
}

// WithConcurrency sets how many blocks may be exponentiated at once. Values
// below 1 mean sequential processing, which is the default.
func WithConcurrency(n int) Option {
	return func(c *BlockCipher) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}
