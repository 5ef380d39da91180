// Package config loads and validates the tool configuration.
package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Output OutputConfig `mapstructure:"output"`
	REPL   REPLConfig   `mapstructure:"repl"`
}

type OutputConfig struct {
	// ComplexPrecision is the number of decimals used when formatting the
	// parts of a complex root. Real roots are printed at full precision.
	ComplexPrecision int  `mapstructure:"complex_precision" validate:"gte=0,lte=12"`
	Color            bool `mapstructure:"color"`
}

type REPLConfig struct {
	Prompt string `mapstructure:"prompt" validate:"required"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/polysolve")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("output.complex_precision", 2)
	v.SetDefault("output.color", true)
	v.SetDefault("repl.prompt", "equation> ")

	// Allow disabling colors from the environment only
	if err := v.BindEnv("output.color", "POLYSOLVE_COLOR"); err != nil {
		return nil, fmt.Errorf("failed to bind POLYSOLVE_COLOR environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
