package main

import (
	"flag"
	"io"
	"log"
)

type Config struct {
	// Path to the sqlite journal. Empty disables journaling.
	JournalPath string
	Color       bool
	Quiet       bool
}

func ParseConfig(args []string) (*Config, error) {
	cfg := &Config{}
	var noColor bool

	fs := flag.NewFlagSet("stackqueue", flag.ContinueOnError)
	fs.StringVar(&cfg.JournalPath, "journal", memoryDSN, "sqlite file the operation journal is written to, removed on startup (empty disables it)")
	fs.BoolVar(&noColor, "no-color", false, "do not color output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "discard log output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Color = !noColor
	return cfg, nil
}

func (c *Config) ApplyLogging() {
	if c.Quiet {
		log.SetOutput(io.Discard)
	}
}
