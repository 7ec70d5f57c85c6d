package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/contentcheck/internal/collection"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CONTENTCHECK_"

// DefaultLocalPath is the local config file used when --config is not given.
const DefaultLocalPath = ".contentcheck.json"

// Configuration represents the contentcheck CLI configuration
type Configuration struct {
	FailFast    bool     `koanf:"fail_fast"`
	DateLayouts []string `koanf:"date_layouts" validate:"dive,required"`
	LogLevel    string   `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	Color       string   `koanf:"color" validate:"required,oneof=auto always never"`
}

// ValidatorOptions maps the configuration onto collection validator options.
func (c *Configuration) ValidatorOptions() collection.Options {
	return collection.Options{
		FailFast:    c.FailFast,
		DateLayouts: append([]string(nil), c.DateLayouts...),
	}
}

// GlobalPath returns the path of the per-user config file.
func GlobalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".contentcheck", "config.json"), nil
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying default %s: %w", key, err)
		}
	}

	if globalPath, err := GlobalPath(); err == nil {
		if err := loadFile(k, globalPath); err != nil {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Color = strings.ToLower(cfg.Color)

	source := localConfigPath
	if source == "" {
		source = "config"
	}
	if err := ValidateConfigValues(&cfg, source); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile merges a JSON config file into k. Missing files are skipped.
func loadFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	if info.IsDir() {
		return &ValidationError{FilePath: path, Message: "is a directory, not a file"}
	}
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: CONTENTCHECK_FAIL_FAST -> fail_fast
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

var validate = validator.New()

// ValidateConfigValues checks struct constraints and reports the first
// violation as a *ValidationError naming the config key.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("config validation failed: %w", err)
	}

	fe := fieldErrs[0]
	return &ValidationError{
		FilePath: filePath,
		Field:    configKey(fe.StructField()),
		Message:  describeRule(fe),
	}
}

// configKey maps a struct field name to its koanf key.
func configKey(structField string) string {
	name := structField
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "FailFast":
		return "fail_fast"
	case "DateLayouts":
		return "date_layouts"
	case "LogLevel":
		return "log_level"
	case "Color":
		return "color"
	default:
		return structField
	}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
