package sfht

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-sfht/sfht/fft"
	"github.com/go-sfht/sfht/fht"
	"github.com/go-sfht/sfht/internal/pool"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/threadpool"
)

// Logger is the package-level structured logger, in the style of
// itohio-EasyRobot/pkg/logger: zerolog with caller info attached,
// console-formatted. Only orchestration paths (TransformMatrix, spectrum
// operators) log, and only at Debug level; inner butterfly loops never log.
var Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// Config is the transform configuration object.
type Config struct {
	// NormalizeDirect places the 1/N factor after the direct transform when
	// true (the default places it after the inverse transform).
	NormalizeDirect bool

	// MaxTempMemory is the soft cap, in bytes, on temporary in-RAM
	// allocations used to decide whether intermediate layers stay in a fast
	// in-memory model or fall back to a caller-provided one.
	MaxTempMemory uint64

	pool ThreadPool
}

// ThreadPool is re-exported from package threadpool for callers who only
// import the root package.
type ThreadPool = threadpool.ThreadPool

// Option configures a Config via NewConfig.
type Option func(*Config)

// WithNormalizeDirect sets NormalizeDirect.
func WithNormalizeDirect(v bool) Option { return func(c *Config) { c.NormalizeDirect = v } }

// WithMaxTempMemory sets MaxTempMemory.
func WithMaxTempMemory(n uint64) Option { return func(c *Config) { c.MaxTempMemory = n } }

// WithThreadPool overrides the default goroutine thread pool.
func WithThreadPool(p ThreadPool) Option { return func(c *Config) { c.pool = p } }

// DefaultMaxTempMemory is used when WithMaxTempMemory is not supplied: a few
// scratch buffers' worth, matching the pool sizing in internal/pool.
const DefaultMaxTempMemory = uint64(pool.NumberOfBuffers * pool.BufferLength * 16)

// NewConfig builds a Config from functional options, defaulting to
// normalize-on-inverse, DefaultMaxTempMemory, and the default goroutine
// thread pool.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		NormalizeDirect: false,
		MaxTempMemory:   DefaultMaxTempMemory,
		pool:            threadpool.NewDefault(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Config) threadPool() ThreadPool {
	if c.pool == nil {
		return threadpool.NewDefault()
	}
	return c.pool
}

func (c *Config) fftConfig() fft.Config { return fft.Config{NormalizeDirect: c.NormalizeDirect} }
func (c *Config) fhtConfig() fht.Config { return fht.Config{NormalizeDirect: c.NormalizeDirect} }

// Context bundles a Config with the progress/cancellation context threaded
// through every recursive call.
type Context struct {
	Config *Config
	Prog   *progress.Context
}

// NewContext builds a Context from cfg (nil means NewConfig() defaults) and
// an optional progress sink.
func NewContext(cfg *Config, sink progress.Sink) *Context {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Context{Config: cfg, Prog: progress.New(sink)}
}
