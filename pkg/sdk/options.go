package finsite

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "memory", "valkey" or "redis"
	addrs    []string
	password string

	catalogPath string
	sessionTTL  time.Duration
	keyPrefix   string

	typingDelay  time.Duration
	submitDelay  time.Duration
	visibleRoles int
	suggestLimit int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithMemory keeps sessions in process memory. This is the default.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
		c.addrs = nil
	})
}

// WithValkey stores sessions in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores sessions in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithCatalogFile loads the catalog from a YAML file instead of the built-in one.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
	})
}

// WithSessionTTL sets how long idle sessions and facet views are kept.
// Default: 30 minutes.
func WithSessionTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.sessionTTL = ttl
	})
}

// WithKeyPrefix namespaces session keys in a shared store. Default: "finsite".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithPacing sets the simulated typing and demo submission delays. Both default to zero.
func WithPacing(typing, submit time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.typingDelay = typing
		c.submitDelay = submit
	})
}

// WithVisibleRoles sets how many roles the welcome prompt shows. Default: 6.
func WithVisibleRoles(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.visibleRoles = n
	})
}

// WithSuggestLimit caps keyword suggestions. Default: 8.
func WithSuggestLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.suggestLimit = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
