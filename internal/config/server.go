package config

import (
	"fmt"
	"time"

	"github.com/VrushabBayas/chessboard/internal/errors"
)

// ServerConfig holds settings for the HTTP and websocket service.
type ServerConfig struct {
	// Addr is the listen address; empty disables the server
	Addr string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// PingInterval is how long a websocket may stay idle before a ping
	PingInterval time.Duration

	// AllowedOrigins feeds the CORS handler and the websocket origin check
	AllowedOrigins []string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		PingInterval:    30 * time.Second,
		AllowedOrigins:  []string{"*"},
	}
}

// Enabled reports whether a listen address was configured.
func (s *ServerConfig) Enabled() bool {
	return s.Addr != ""
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("negative server timeout: %w", errors.ErrInvalidConfig)
	}
	if s.PingInterval <= 0 {
		return fmt.Errorf("ping interval (%v) must be positive: %w", s.PingInterval, errors.ErrInvalidConfig)
	}
	return nil
}

// AllowsOrigin reports whether origin matches AllowedOrigins. An empty
// origin (non-browser client) is always allowed.
func (s *ServerConfig) AllowsOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range s.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
