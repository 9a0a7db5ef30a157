// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

const (
	// DefaultOutputFormat is the renderer used when none is selected.
	DefaultOutputFormat = "stdout"

	// DefaultPort is the port used for zone transfers.
	DefaultPort = 53

	// DefaultTimeout bounds each DNS operation.
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrNoDomain is returned when no target domain was provided.
	ErrNoDomain = errors.New("a target domain name must be provided")
	// ErrInvalidPort is returned for ports outside of 1-65535.
	ErrInvalidPort = errors.New("the port must be between 1 and 65535")
	// ErrInvalidTimeout is returned for timeouts that are not positive.
	ErrInvalidTimeout = errors.New("the timeout must be greater than zero")
)

// Updater allows an object to implement a method that updates a configuration.
type Updater interface {
	OverrideConfig(*Config) error
}

// Config passes along the zone transfer settings and options.
type Config struct {
	// A Universally Unique Identifier (UUID) for the session
	UUID uuid.UUID

	// Logger for diagnostic messages
	Log *slog.Logger

	// The domain name whose zone transfer permissions are tested
	Domain string

	// Name of the renderer selected for the extracted records
	OutputFormat string

	// The directory that stores the files created
	Dir string

	// DNS resolvers used for the NS and address lookups, as host:port
	Resolvers []string

	// The port the nameservers are contacted on for zone transfers
	Port int

	// The maximum time allowed for each DNS operation
	Timeout time.Duration

	// Censor the output to make it suitable for demonstrations
	DemoMode bool
}

// NewConfig returns a default configuration object.
func NewConfig() *Config {
	return &Config{
		UUID:         uuid.New(),
		Log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		OutputFormat: DefaultOutputFormat,
		Dir:          ".",
		Port:         DefaultPort,
		Timeout:      DefaultTimeout,
	}
}

// NewLogger returns a text logger writing to out at the provided level,
// tagged with the session UUID of the configuration.
func (c *Config) NewLogger(out io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With("session", c.UUID.String())
}

// UpdateConfig allows the provided Updater to update the current configuration.
func (c *Config) UpdateConfig(update Updater) error {
	return update.OverrideConfig(c)
}

// CheckSettings normalizes the configuration and runs some sanity checks on the options selected.
func (c *Config) CheckSettings() error {
	domain, err := NormalizeDomain(c.Domain)
	if err != nil {
		return err
	}
	c.Domain = domain

	if suffix, _ := publicsuffix.PublicSuffix(domain); suffix == domain {
		c.Log.Warn("the domain name is a public suffix", "domain", domain)
	}

	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Dir == "" {
		c.Dir = "."
	}
	dir, err := homedir.Expand(c.Dir)
	if err != nil {
		return fmt.Errorf("failed to expand the output directory %s: %w", c.Dir, err)
	}
	c.Dir = dir

	if len(c.Resolvers) == 0 {
		c.SetResolvers(SystemResolvers(ResolvConfPath)...)
	}
	if len(c.Resolvers) == 0 {
		c.SetResolvers(DefaultBaselineResolvers...)
	}
	return nil
}

// NormalizeDomain returns the lowercase ASCII form of the domain name without
// the trailing dot. Names that cannot be converted to ASCII are kept as provided.
func NormalizeDomain(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return "", ErrNoDomain
	}

	if ascii, err := idna.Lookup.ToASCII(name); err == nil {
		name = ascii
	}
	return strings.ToLower(name), nil
}
