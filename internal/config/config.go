package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/small-engineer/recados-api/internal/domain"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds the server settings. Values come from defaults, then the
// YAML file, then the PORT environment variable.
type Config struct {
	Port      string        `yaml:"port"`
	LogLevel  string        `yaml:"log_level"`
	LogFormat string        `yaml:"log_format"`
	Seed      []domain.User `yaml:"seed"`
}

// NewConfig creates a Config with default values
func NewConfig() *Config {
	return &Config{
		Port:      "8080",
		LogLevel:  "info",
		LogFormat: FormatJSON,
	}
}

// Load builds a Config from path (optional) and the environment, then validates it.
func Load(path string) (*Config, error) {
	c := NewConfig()
	if path != "" {
		if err := c.readFile(path); err != nil {
			return nil, err
		}
	}
	if p := os.Getenv("PORT"); p != "" {
		c.Port = p
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.LogFormat != FormatJSON && c.LogFormat != FormatConsole {
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	seen := make(map[string]bool, len(c.Seed))
	for _, u := range c.Seed {
		if seen[u.Email] {
			return fmt.Errorf("duplicate seed user %q", u.Email)
		}
		seen[u.Email] = true
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// DemoUsers are the two accounts the service historically booted with.
func DemoUsers() []domain.User {
	return []domain.User{
		{
			Email:    "teste@teste.com",
			Name:     "João da Silva",
			Password: "senha123",
			Recados:  []domain.Note{},
		},
		{
			Email:    "teste2@teste.com",
			Name:     "Maria da Silva",
			Password: "senha12345",
			Recados:  []domain.Note{},
		},
	}
}
