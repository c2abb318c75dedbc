// Package config loads the CLI's configuration file: log settings and the
// table-rule knobs that change scoring arithmetic.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"riichi-score-go/score"
)

type LogConf struct {
	Level  string `mapstructure:"level"`
	Prefix string `mapstructure:"prefix"`
}

type RulesConf struct {
	KiriageMangan bool `mapstructure:"kiriageMangan"`
	DoubleYakuman bool `mapstructure:"doubleYakuman"`
}

type Config struct {
	LogConf   `mapstructure:"log"`
	RulesConf `mapstructure:"rules"`
}

// Rules converts the configured knobs to a score.Rules.
func (c *Config) Rules() score.Rules {
	return score.Rules{
		KiriageMangan: c.KiriageMangan,
		DoubleYakuman: c.DoubleYakuman,
	}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogConf:   LogConf{Level: "info", Prefix: "riichi-score"},
		RulesConf: RulesConf{KiriageMangan: true, DoubleYakuman: true},
	}
}

// Load reads the configuration file, layering it over the defaults.
// Environment variables override file values.
func Load(configFile string) (Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("log.level", cfg.Level)
	v.SetDefault("log.prefix", cfg.Prefix)
	v.SetDefault("rules.kiriageMangan", cfg.KiriageMangan)
	v.SetDefault("rules.doubleYakuman", cfg.DoubleYakuman)

	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
