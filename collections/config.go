package collections

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Config holds the package-wide settings.
type Config struct {
	// Logger receives Dump output and decoding diagnostics.
	// Defaults to a JSON logger on stderr at info level.
	Logger zerolog.Logger

	// DumpLevel is the level Dump logs at. Defaults to info.
	DumpLevel zerolog.Level
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Logger:    zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger(),
		DumpLevel: zerolog.InfoLevel,
	}
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	current.Store(&cfg)
}

// Configure replaces the package-wide settings. Safe to call from multiple
// goroutines.
func Configure(cfg Config) {
	current.Store(&cfg)
}

func settings() *Config {
	return current.Load()
}

// dump logs the JSON rendering of a collection at the configured level.
func dump(kind Kind, count int, payload []byte, err error) {
	cfg := settings()
	ev := cfg.Logger.WithLevel(cfg.DumpLevel).
		Str("kind", kind.String()).
		Int("count", count)
	if err != nil {
		ev.Err(err).Msg("collection dump")
		return
	}
	ev.RawJSON("items", payload).Msg("collection dump")
}
