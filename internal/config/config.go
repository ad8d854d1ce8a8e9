package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/pythonqtwrapper/internal/core/binding"
)

// EnvPrefix prefixes environment overrides, e.g. PYTHONQTWRAPPER_OUTPUT_DIR.
const EnvPrefix = "PYTHONQTWRAPPER"

// DefaultConfigName is looked up in the working directory when no --config is given.
const DefaultConfigName = ".pythonqtwrapper"

// ErrOutputDirRequired is returned when no output directory is configured.
var ErrOutputDirRequired = errors.New("output directory not specified")

// Config holds the settings of one run.
type Config struct {
	Verbose           bool   `mapstructure:"verbose"`
	JSONLog           bool   `mapstructure:"json_log"`
	WrappingNamespace string `mapstructure:"wrapping_namespace" validate:"required,wrapns"`
	TargetName        string `mapstructure:"target_name"`
	CheckOnly         bool   `mapstructure:"check_only"`
	OutputDir         string `mapstructure:"output_dir" validate:"required"`
}

// Namespace returns the validated wrapping namespace.
func (c *Config) Namespace() binding.Namespace {
	return binding.Namespace(c.WrappingNamespace)
}

// flagKeys maps viper keys to the CLI flags that set them.
var flagKeys = map[string]string{
	"verbose":            "verbose",
	"json_log":           "json-log",
	"wrapping_namespace": "wrapping-namespace",
	"target_name":        "target-name",
	"check_only":         "check-only",
	"output_dir":         "output-dir",
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("json_log", false)
	v.SetDefault("wrapping_namespace", binding.DefaultNamespace)
	v.SetDefault("target_name", "")
	v.SetDefault("check_only", false)
	v.SetDefault("output_dir", "")
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	Flags      *pflag.FlagSet // flags override every other source when set explicitly
	ConfigFile string         // explicit config file, optional
	Dir        string         // directory searched for .pythonqtwrapper.{yaml,json,toml}
}

// Load merges defaults, the config file, PYTHONQTWRAPPER_* environment
// variables and explicitly set flags, in increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else if opts.Dir != "" {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(opts.Dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	_ = val.RegisterValidation("wrapns", func(fl validator.FieldLevel) bool {
		return binding.IsValidNamespace(fl.Field().String())
	})
	return val
}

// Validate checks the configuration invariants and reports the first
// violation as a user-facing error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fe := fieldErrs[0]
	switch {
	case fe.Field() == "WrappingNamespace" && fe.Tag() == "required":
		return binding.ErrNamespaceRequired
	case fe.Field() == "WrappingNamespace":
		return fmt.Errorf("%w (got %q)", binding.ErrInvalidNamespace, c.WrappingNamespace)
	case fe.Field() == "OutputDir":
		return ErrOutputDirRequired
	default:
		return fmt.Errorf("invalid configuration: %w", err)
	}
}
