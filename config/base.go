package config

import "time"

const (
	defaultListenAddress   = ":3000"
	defaultShutdownTimeout = 10 * time.Second
	defaultRedisKeyPrefix  = "numstats:usage:"
)

type RedisConfig struct {
	Hosts     []string `yaml:"hosts" validate:"dive,hostname_port"`
	KeyPrefix string   `yaml:"key_prefix"`
}

type Config struct {
	Version    bool   `yaml:"-"`
	ConfigFile string `yaml:"-"`

	Verbose     bool   `yaml:"verbose"`
	Environment string `yaml:"environment"`

	ListenAddress   string        `yaml:"listen" validate:"required,hostname_port"`
	MetricsAddress  string        `yaml:"metrics_listen" validate:"omitempty,hostname_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`

	Redis RedisConfig `yaml:"redis"`
}

func NewWithDefaults() Config {
	return Config{
		ListenAddress:   defaultListenAddress,
		ShutdownTimeout: defaultShutdownTimeout,
		Redis: RedisConfig{
			KeyPrefix: defaultRedisKeyPrefix,
		},
	}
}

func (c Config) MetricsEnabled() bool {
	return c.MetricsAddress != ""
}

func (c Config) UsageEnabled() bool {
	return len(c.Redis.Hosts) > 0
}
