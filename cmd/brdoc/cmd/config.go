package cmd

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings read from the environment. Flags set on the
// command line take precedence.
type Config struct {
	Format  string `env:"BRDOC_FORMAT"`
	Verbose bool   `env:"BRDOC_VERBOSE"`
	Kind    string `env:"BRDOC_KIND" envDefault:"auto"`
	Seed    uint64 `env:"BRDOC_SEED"`
}

// LoadConfig reads an optional .env file and parses the environment.
// On a parse error the returned Config still holds every field that parsed.
func LoadConfig() (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	var c Config
	err := env.Parse(&c)
	if c.Kind == "" {
		c.Kind = "auto"
	}
	return c, err
}
