package server

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"
)

// Config holds the server's startup parameters. There are no flags or
// environment overrides; main passes DefaultConfig through unchanged.
type Config struct {
	Port            int           // TCP port on all interfaces (default: 8080, 0 picks a free port)
	Root            string        // Directory to serve (default: current directory)
	Fs              afero.Fs      // Optional filesystem; replaces Root when set
	ShutdownTimeout time.Duration // Graceful shutdown window (default: 5s)

	Stdout io.Writer    // Receives the startup banner (default: os.Stdout)
	Logger *slog.Logger // Lifecycle logger (default: slog.Default())
}

// DefaultConfig returns the configuration the binary runs with.
func DefaultConfig() Config {
	return Config{
		Port:            8080,
		Root:            ".",
		ShutdownTimeout: 5 * time.Second,
		Stdout:          os.Stdout,
		Logger:          slog.Default(),
	}
}

// validate fills unset fields and clamps values to sane bounds
func (c *Config) validate() {
	if c.Port < 0 {
		c.Port = 0
	}
	if c.Port > 65535 {
		c.Port = 65535
	}
	if c.Root == "" {
		c.Root = "."
	}

	if c.ShutdownTimeout < 1*time.Second {
		c.ShutdownTimeout = 1 * time.Second
	}
	if c.ShutdownTimeout > 60*time.Second {
		c.ShutdownTimeout = 60 * time.Second
	}

	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
