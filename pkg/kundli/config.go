package kundli

import (
	"strings"
	"time"
)

const (
	DefaultBaseURI   = "https://api.vedicrishiastro.com/v1"
	DefaultUserAgent = "kundli.io 0.1"
	DefaultTimeout   = 30 * time.Second
)

// Config holds the connection settings for a Client. Zero values fall back
// to DefaultConfig. Credentials have no default and are sent as given.
type Config struct {
	BaseURI   string
	Username  string
	Password  string
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns the settings used for any field a caller leaves empty.
func DefaultConfig() Config {
	return Config{
		BaseURI:   DefaultBaseURI,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	c.BaseURI = strings.TrimSpace(c.BaseURI)
	if c.BaseURI == "" {
		c.BaseURI = def.BaseURI
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}
