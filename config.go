package dombuilder

import (
	"context"
	"strings"
	"sync"

	"github.com/npillmayer/dombuilder/dom"
	"github.com/npillmayer/dombuilder/dom/w3cdom"
)

// DefaultAttributeMarker prefixes property bag keys which are to be set as
// attributes.
const DefaultAttributeMarker = "@"

// DefaultPlaceholderTag is the tag of placeholders for pending children.
const DefaultPlaceholderTag = "div"

// DefaultWrapperField is the name of the struct field holding the node of
// a node wrapper.
const DefaultWrapperField = "Element"

// Config holds the settings of a builder.
type Config struct {
	// Warnings enables tracing of dropped input.
	Warnings bool

	// AttributeMarker prefixes property bag keys which are set as attributes.
	AttributeMarker string

	// AttributeExceptions are property bag keys which are always set as
	// attributes.
	AttributeExceptions []string

	// PlaceholderTag is the tag of placeholder elements.
	PlaceholderTag string

	// WrapperField is the field name used to unwrap nodes from structs.
	WrapperField string

	// OnRejected is called when a pending child fails, after its placeholder
	// has been removed. It runs on its own goroutine, not holding the lock
	// of the host document; Settled waits for it to return.
	OnRejected func(err error)

	// Metrics receives counters of the builder's activity; may be nil.
	Metrics *Metrics
}

// DefaultConfig returns the configuration of builders created without
// options.
func DefaultConfig() Config {
	return Config{
		AttributeMarker:     DefaultAttributeMarker,
		AttributeExceptions: []string{"role", "aria-label"},
		PlaceholderTag:      DefaultPlaceholderTag,
		WrapperField:        DefaultWrapperField,
	}
}

// Option configures a builder.
type Option func(*Config)

// WithWarnings switches tracing of dropped input on or off.
func WithWarnings(on bool) Option {
	return func(c *Config) {
		c.Warnings = on
	}
}

// WithAttributeMarker sets the prefix of attribute keys. An empty marker
// disables marked keys.
func WithAttributeMarker(marker string) Option {
	return func(c *Config) {
		c.AttributeMarker = marker
	}
}

// WithAttributeExceptions adds keys which are always set as attributes.
func WithAttributeExceptions(keys ...string) Option {
	return func(c *Config) {
		c.AttributeExceptions = append(c.AttributeExceptions, keys...)
	}
}

// WithPlaceholderTag sets the tag of placeholders for pending children.
func WithPlaceholderTag(tag string) Option {
	return func(c *Config) {
		c.PlaceholderTag = tag
	}
}

// WithWrapperField sets the field name used to unwrap nodes from structs.
func WithWrapperField(name string) Option {
	return func(c *Config) {
		c.WrapperField = name
	}
}

// WithRejectionHandler sets a handler for failing pending children.
func WithRejectionHandler(h func(err error)) Option {
	return func(c *Config) {
		c.OnRejected = h
	}
}

// WithMetrics makes the builder count its activity.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// Builder constructs elements on a host document.
type Builder struct {
	host w3cdom.Host
	conf Config
}

// New creates a builder for a host document. A nil host is replaced by a
// new dom.Document.
func New(host w3cdom.Host, opts ...Option) *Builder {
	if host == nil {
		host = dom.NewDocument()
	}
	conf := DefaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.PlaceholderTag == "" {
		conf.PlaceholderTag = DefaultPlaceholderTag
	}
	if conf.WrapperField == "" {
		conf.WrapperField = DefaultWrapperField
	}
	return &Builder{host: host, conf: conf}
}

// Host returns the document the builder works on.
func (b *Builder) Host() w3cdom.Host {
	return b.host
}

// Config returns a copy of the builder's configuration.
func (b *Builder) Config() Config {
	c := b.conf
	c.AttributeExceptions = append([]string(nil), b.conf.AttributeExceptions...)
	return c
}

// Settled waits until all pending children created by builders of this
// builder's document have been swapped in, or ctx is done.
func (b *Builder) Settled(ctx context.Context) error {
	return b.host.Settled(ctx)
}

// isException is true for keys which are set as attributes unchanged.
func (b *Builder) isException(key string) bool {
	for _, ex := range b.conf.AttributeExceptions {
		if ex == key {
			return true
		}
	}
	return false
}

// markedAttribute strips the attribute marker from a key.
func (b *Builder) markedAttribute(key string) (string, bool) {
	m := b.conf.AttributeMarker
	if m == "" || !strings.HasPrefix(key, m) || len(key) == len(m) {
		return "", false
	}
	return key[len(m):], true
}

// warn traces dropped input if warnings are enabled.
func (b *Builder) warn(kind, format string, args ...interface{}) {
	b.conf.Metrics.dropped(kind)
	if b.conf.Warnings {
		tracer().P("dropped", kind).Infof(format, args...)
	}
}

// --- Default builder -------------------------------------------------------

var (
	defaultMu      sync.RWMutex
	defaultBuilder = New(nil)
)

// Default returns the builder used by the package level functions.
func Default() *Builder {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBuilder
}

// SetDefault replaces the builder used by the package level functions.
// A nil builder resets the default to a new builder on a fresh document.
func SetDefault(b *Builder) {
	if b == nil {
		b = New(nil)
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultBuilder = b
}

// Settled waits for the pending children of the default builder.
func Settled(ctx context.Context) error {
	return Default().Settled(ctx)
}
