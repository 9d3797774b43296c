// Package config declares the report's call-site parameters. There is no
// persisted configuration, no environment variables, and no network surface:
// everything the run needs arrives as a flag.
package config

import (
	"errors"
	"fmt"
)

// Config holds all report settings, populated from command-line flags.
type Config struct {
	Input string `arg:"" help:"Path to the StormData CSV (plain, .gz, or .bz2)." type:"path"`

	Out         string `help:"Output directory for report.md and chart images." default:"report" type:"path"`
	Top         int    `help:"Number of event types in each ranked table." default:"10"`
	SeriesEvent string `help:"Exact EVTYPE label for the yearly casualty charts." default:"TORNADO"`

	LogLevel  string `help:"Log level (debug, info, warn, error)." default:"info" enum:"debug,info,warn,error"`
	LogFormat string `help:"Log format (text, json)." default:"text" enum:"text,json"`
}

// Validate is called by kong after parsing.
func (c *Config) Validate() error {
	if c.Top < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", c.Top)
	}
	if c.SeriesEvent == "" {
		return errors.New("--series-event must not be empty")
	}
	return nil
}
