package config

import "time"

// Config contains all application settings
type Config struct {
	BindPort       int    `mapstructure:"PORT" yaml:"port"`
	BindHost       string `mapstructure:"HOST" yaml:"host"`
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER" yaml:"database_driver"`
	DatabaseURL    string `mapstructure:"DATABASE_URL" yaml:"database_url"`
	NATSServerURL  string `mapstructure:"NATS_URL" yaml:"nats_url"`
	Timezone       string `mapstructure:"TIMEZONE" yaml:"timezone"`
	LogLevel       string `mapstructure:"LOG_LEVEL" yaml:"log_level"`

	// Version
	BuildVersion string `yaml:"-"`
	BuildHash    string `yaml:"-"`
	BuildTime    string `yaml:"-"`
}

// Location returns the time zone derived date fields are evaluated in.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
