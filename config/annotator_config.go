package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spacesedan/groundtruth/internal/annotator"
	"github.com/spacesedan/groundtruth/internal/logging"
	"github.com/spacesedan/groundtruth/internal/sentiment"
	"github.com/spacesedan/groundtruth/internal/verify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "GROUNDTRUTH"

type Config struct {
	Inputs          []string `mapstructure:"inputs"`
	OutputDir       string   `mapstructure:"output_dir"`
	Suffix          string   `mapstructure:"suffix"`
	Extension       string   `mapstructure:"extension"`
	Output          string   `mapstructure:"output"`
	ASCII           string   `mapstructure:"ascii"`
	Markdown        bool     `mapstructure:"markdown"`
	ContinueOnError bool     `mapstructure:"continue_on_error"`
	LogLevel        string   `mapstructure:"log_level"`
	MaxReported     int      `mapstructure:"max_reported"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"output-dir":        "output_dir",
	"suffix":            "suffix",
	"extension":         "extension",
	"output":            "output",
	"ascii":             "ascii",
	"markdown":          "markdown",
	"continue-on-error": "continue_on_error",
	"log-level":         "log_level",
	"max-reported":      "max_reported",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("inputs", []string{})
	v.SetDefault("output_dir", ".")
	v.SetDefault("suffix", annotator.DEFAULT_SUFFIX)
	v.SetDefault("extension", annotator.DEFAULT_EXTENSION)
	v.SetDefault("output", "")
	v.SetDefault("ascii", string(sentiment.ASCIINone))
	v.SetDefault("markdown", false)
	v.SetDefault("continue_on_error", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("max_reported", verify.DEFAULT_MAX_REPORTED)
}

// Load merges defaults, the optional config file, GROUNDTRUTH_* environment
// variables and any flags that were set, in increasing precedence.
func Load(configFilePath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("[Config] failed to read %s: %w", configFilePath, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("[Config] failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	}); err != nil {
		return nil, fmt.Errorf("[Config] failed to decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem rather than stopping at the first.
func (c *Config) Validate() []error {
	errs := c.ValidateCommon()

	if len(c.Inputs) == 0 {
		errs = append(errs, errors.New("no input files configured"))
	}
	for i, in := range c.Inputs {
		if strings.TrimSpace(in) == "" {
			errs = append(errs, fmt.Errorf("input %d is empty", i))
		}
	}
	if c.Output != "" && len(c.Inputs) > 1 {
		errs = append(errs, fmt.Errorf("output %q can only be used with a single input, got %d", c.Output, len(c.Inputs)))
	}
	if c.Output == "" && c.Suffix == "" && c.Extension == "" {
		errs = append(errs, errors.New("suffix and extension cannot both be empty"))
	}
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		errs = append(errs, fmt.Errorf("extension %q must start with a dot", c.Extension))
	}
	if strings.ContainsAny(c.Suffix, `/\`) {
		errs = append(errs, fmt.Errorf("suffix %q must not contain path separators", c.Suffix))
	}
	if _, err := sentiment.ParseASCIIMode(c.ASCII); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ValidateCommon covers the settings every command reads, inputs excluded.
func (c *Config) ValidateCommon() []error {
	errs := make([]error, 0)
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.MaxReported < 0 {
		errs = append(errs, fmt.Errorf("max_reported must not be negative, got %d", c.MaxReported))
	}
	return errs
}

func (c *Config) Namer() annotator.OutputNamer {
	if c.Output != "" {
		return annotator.FixedNamer(c.Output)
	}
	return annotator.SuffixNamer{
		Dir:       c.OutputDir,
		Suffix:    c.Suffix,
		Extension: c.Extension,
	}
}

// AnnotatorConfig assumes Validate returned no errors.
func (c *Config) AnnotatorConfig() annotator.Config {
	mode, _ := sentiment.ParseASCIIMode(c.ASCII)
	return annotator.Config{
		Inputs:          c.Inputs,
		Namer:           c.Namer(),
		ASCII:           mode,
		ContinueOnError: c.ContinueOnError,
	}
}
