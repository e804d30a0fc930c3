package config

import (
	"errors"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type option struct {
	cfg        string
	name       string
	envPrefix  string
	configType string
}

type Option func(*option)

func WithConfigFile(cfg string) Option {
	return func(o *option) {
		o.cfg = cfg
	}
}

// SetDefaults registers the value of every known key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.url", "http://127.0.0.1:8000/master/api/area/")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.retry", 1)
	v.SetDefault("api.retry_interval", 200*time.Millisecond)
	v.SetDefault("api.rate_limit", 0)
	v.SetDefault("api.burst", 1)
	v.SetDefault("api.csrf_cookie", "csrftoken")
	v.SetDefault("api.csrf_header", "X-CSRFToken")
	v.SetDefault("api.cookies", map[string]string{})
	v.SetDefault("cache.stale_time", 30*time.Second)
	v.SetDefault("cache.cleanup_interval", time.Minute)
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.path", "")
	v.SetDefault("log.console", true)
	v.SetDefault("log.format", "console")
	v.SetDefault("table.page_size", 10)
}

// LoadConfig init Config. Without an explicit file a missing
// ~/.areactl.yaml is not an error.
func LoadConfig(opts ...Option) error {
	return Load(viper.GetViper(), opts...)
}

func Load(v *viper.Viper, opts ...Option) error {
	o := &option{
		name:       ".areactl",
		envPrefix:  "areactl",
		configType: "yaml",
	}
	for _, opt := range opts {
		opt(o)
	}
	SetDefaults(v)
	if o.cfg != "" {
		// Use config file from the flag.
		v.SetConfigFile(o.cfg)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigName(o.name)
		v.SetConfigType(o.configType)
	}

	v.SetEnvPrefix(o.envPrefix) // set environment variables prefix to avoid conflict
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv() // read in environment variables that match

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if o.cfg == "" && errors.As(err, &notFound) {
		return nil
	}
	return err
}
