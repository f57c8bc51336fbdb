package server

import (
	"net/http"
	"time"
)

// Config holds configuration for the HTTP/WebSocket server.
type Config struct {
	// Address is the address to listen on (e.g., ":8080" or "localhost:3000").
	// Default: ":8080".
	Address string

	// WebSocket buffer sizes

	// ReadBufferSize is the WebSocket read buffer size.
	// Default: 4096.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size.
	// Default: 4096.
	WriteBufferSize int

	// CheckOrigin is called to validate the request origin.
	// Default: allows all origins (not recommended for production).
	CheckOrigin func(r *http.Request) bool

	// Watch connection tuning

	// HeartbeatInterval is the time between pings on watch connections.
	// Default: 30 seconds.
	HeartbeatInterval time.Duration

	// WatchWriteTimeout is the maximum time to wait when pushing an event.
	// Default: 10 seconds.
	WatchWriteTimeout time.Duration

	// WatchReadTimeout is the deadline for hearing from a watch client,
	// extended on every pong. Default: 90 seconds.
	WatchReadTimeout time.Duration

	// DefaultPollInterval is the poll interval used when a dataset request
	// asks for polling without naming an interval. Default: 30 seconds.
	DefaultPollInterval time.Duration

	// Limits

	// MaxDatasetSize is the largest dataset body accepted on upload.
	// Default: 16MB.
	MaxDatasetSize int64

	// Server lifecycle

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 30 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout is the maximum time to read request headers.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:             ":8080",
		ReadBufferSize:      4096,
		WriteBufferSize:     4096,
		CheckOrigin:         func(r *http.Request) bool { return true },
		HeartbeatInterval:   30 * time.Second,
		WatchWriteTimeout:   10 * time.Second,
		WatchReadTimeout:    90 * time.Second,
		DefaultPollInterval: 30 * time.Second,
		MaxDatasetSize:      16 << 20,
		ShutdownTimeout:     30 * time.Second,
		ReadHeaderTimeout:   10 * time.Second,
	}
}
