package config

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultPrompt is shown before reading the number in interactive mode.
const DefaultPrompt = "Введите неотрицательное число: "

type Config struct {
	Prompt      string
	Color       bool
	Interactive bool
}

// Default returns the configuration for a plain, non-interactive run.
func Default() Config {
	return Config{Prompt: DefaultPrompt}
}

// Validate validates the configuration and applies necessary fixes
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Prompt, "\r\n") {
		return errors.Errorf("prompt must be a single line, got %q", c.Prompt)
	}

	// piped runs never show a prompt, and their output stays free of escape codes
	if !c.Interactive {
		c.Color = false
		return nil
	}

	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}

	return nil
}
