package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

const (
	DefaultOutDirectory  = "out"
	DefaultRedirectsFile = "redirects.yml"

	defaultUserAgent   = "Signpost/1.0 (+https://go.hacdias.com/signpost)"
	defaultTimeout     = time.Minute
	defaultMaxBodySize = 5 << 20
	defaultPort        = 8080
)

type Config struct {
	OutDirectory  string
	RedirectsFile string
	UserAgent     string
	Timeout       time.Duration
	MaxBodySize   int64
	Port          int
	Refresh       string
}

// ParseConfig reads the configuration from a signpost.yml (or .yaml, .toml,
// .json) file in the working directory. The file is optional: if it does not
// exist, the defaults are used.
func ParseConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("signpost")
	v.AddConfigPath(".")

	v.SetDefault("outDirectory", DefaultOutDirectory)
	v.SetDefault("redirectsFile", DefaultRedirectsFile)
	v.SetDefault("userAgent", defaultUserAgent)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("maxBodySize", defaultMaxBodySize)
	v.SetDefault("port", defaultPort)

	err := v.ReadInConfig()
	if err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, err
		}
	}

	conf := &Config{}
	err = v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) validate() error {
	if c.OutDirectory == "" {
		return errors.New("config: OutDirectory is empty")
	}

	if c.RedirectsFile == "" {
		return errors.New("config: RedirectsFile is empty")
	}

	if c.Timeout <= 0 {
		return errors.New("config: Timeout must be a positive duration")
	}

	if c.MaxBodySize <= 0 {
		return errors.New("config: MaxBodySize must be a positive number of bytes")
	}

	if c.Port < 0 {
		return fmt.Errorf("config: Port should be above zero or zero for random port: %d", c.Port)
	}

	if c.Refresh != "" {
		_, err := cron.ParseStandard(c.Refresh)
		if err != nil {
			return fmt.Errorf("config: Refresh is not a valid cron expression: %w", err)
		}
	}

	return nil
}
