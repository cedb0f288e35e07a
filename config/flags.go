package config

import (
	flag "github.com/spf13/pflag"
)

const flagSetName = "numstats"

// Parse builds the config from defaults, the optional --config file and the
// command line, in that order of precedence.
func Parse(args []string) (Config, error) {
	cfg := NewWithDefaults()

	if err := newFlagSet(&cfg).Parse(args); err != nil {
		return cfg, err
	}

	if cfg.ConfigFile == "" || cfg.Version {
		return cfg, nil
	}

	fileCfg, err := LoadFile(cfg.ConfigFile, NewWithDefaults())
	if err != nil {
		return cfg, err
	}

	// Flags are bound again with the file values as defaults, so only the
	// ones set explicitly on the command line replace them.
	if err := newFlagSet(&fileCfg).Parse(args); err != nil {
		return fileCfg, err
	}

	return fileCfg, nil
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)

	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug mode")
	fs.BoolVar(&cfg.Version, "version", cfg.Version, "Prints version number")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "Path to YAML config file")

	fs.StringVar(&cfg.Environment, "environment", cfg.Environment, "Environment name")
	fs.StringVar(&cfg.ListenAddress, "listen", cfg.ListenAddress, "Address of the statistics API")
	fs.StringVar(&cfg.MetricsAddress, "metrics_listen", cfg.MetricsAddress, "Address of the Prometheus metrics endpoint, disabled when empty")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown_timeout", cfg.ShutdownTimeout, "Time allowed for in-flight requests on shutdown")

	fs.StringSliceVar(&cfg.Redis.Hosts, "redis_hosts", cfg.Redis.Hosts, "Redis hosts for usage counters, disabled when empty")
	fs.StringVar(&cfg.Redis.KeyPrefix, "redis_key_prefix", cfg.Redis.KeyPrefix, "Key prefix of usage counters")

	return fs
}
