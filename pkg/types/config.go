package types

import "errors"

// Config holds backend selection and parameters for opening a Slot.
type Config struct {
	Backend   string `json:"backend" yaml:"backend"`
	DataDir   string `json:"data_dir" yaml:"data_dir"`
	SlotKey   string `json:"slot_key" yaml:"slot_key"`
	RedisAddr string `json:"redis_addr" yaml:"redis_addr"`
	Locale    string `json:"locale" yaml:"locale"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Defaults applied by WithDefaults.
const (
	DefaultSlotKey = "recipebox_v1"
	DefaultLocale  = "en"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrSlotKeyEmpty   = errors.New("slot key must not be empty")
	ErrRedisAddrEmpty = errors.New("redis backend requires an address")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendRedis:  true,
	BackendMemory: true,
}

// WithDefaults returns a copy of c with an empty SlotKey and Locale
// replaced by their defaults.
func (c Config) WithDefaults() Config {
	if c.SlotKey == "" {
		c.SlotKey = DefaultSlotKey
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.SlotKey == "" {
		return ErrSlotKeyEmpty
	}
	if c.Backend == BackendRedis && c.RedisAddr == "" {
		return ErrRedisAddrEmpty
	}
	return nil
}
