package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", SlotKey: "k"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", SlotKey: "k"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "missing slot key returns ErrSlotKeyEmpty",
			config:  Config{Backend: BackendFile, DataDir: "/tmp/data"},
			wantErr: ErrSlotKeyEmpty,
		},
		{
			name:    "redis without address returns ErrRedisAddrEmpty",
			config:  Config{Backend: BackendRedis, SlotKey: "k"},
			wantErr: ErrRedisAddrEmpty,
		},
		{
			name:    "valid file config",
			config:  Config{Backend: BackendFile, DataDir: "/tmp/data", SlotKey: "k"},
			wantErr: nil,
		},
		{
			name:    "valid redis config",
			config:  Config{Backend: BackendRedis, RedisAddr: "localhost:6379", SlotKey: "k"},
			wantErr: nil,
		},
		{
			name:    "memory with empty DataDir is valid",
			config:  Config{Backend: BackendMemory, SlotKey: "k"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := Config{Backend: BackendFile}.WithDefaults()
	if c.SlotKey != DefaultSlotKey {
		t.Errorf("SlotKey = %q, want %q", c.SlotKey, DefaultSlotKey)
	}
	if c.Locale != DefaultLocale {
		t.Errorf("Locale = %q, want %q", c.Locale, DefaultLocale)
	}

	c = Config{Backend: BackendFile, SlotKey: "custom", Locale: "de"}.WithDefaults()
	if c.SlotKey != "custom" || c.Locale != "de" {
		t.Errorf("WithDefaults overwrote explicit values: %+v", c)
	}
}
