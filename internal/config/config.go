package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/surveyscope/internal/utils"
)

const dirName = ".surveyscope"

// Global configuration structure.
type Global struct {
	// DataPath overrides the default dataset location when set.
	DataPath string `mapstructure:"data_path" yaml:"data_path"`
	// Sheet selects the worksheet for .xlsx inputs; empty means the first one.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// Report limits
	PreviewChars  int `mapstructure:"preview_chars" yaml:"preview_chars" validate:"min=1"`
	TopValues     int `mapstructure:"top_values" yaml:"top_values" validate:"min=1"`
	TopOpenEnded  int `mapstructure:"top_open_ended" yaml:"top_open_ended" validate:"min=1"`
	SampleColumns int `mapstructure:"sample_columns" yaml:"sample_columns" validate:"min=1"`
	TopMissing    int `mapstructure:"top_missing" yaml:"top_missing" validate:"min=1"`
	HeaderPreview int `mapstructure:"header_preview" yaml:"header_preview" validate:"min=1"`

	DemographicColumns []string `mapstructure:"demographic_columns" yaml:"demographic_columns" validate:"min=1,dive,required"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"omitempty,oneof=text json"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Name fields by their yaml key in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Defaults returns the built-in configuration.
func Defaults() *Global {
	return &Global{
		PreviewChars:       100,
		TopValues:          5,
		TopOpenEnded:       5,
		SampleColumns:      3,
		TopMissing:         10,
		HeaderPreview:      10,
		DemographicColumns: []string{"AgeGroup_Broad", "Province", "Education", "Gender", "HH_Income_Fine_23"},
		LogLevel:           "warn",
		LogFormat:          "text",
	}
}

// ValidationError lists the keys that failed validation.
type ValidationError struct {
	// Keys are yaml key names, one per offending field.
	Keys     []string
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}

// Validate checks value ranges and enumerations. Failures are *ValidationError.
func (c *Global) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	ve := &ValidationError{}
	seen := make(map[string]bool)
	for _, fe := range verrs {
		ve.Problems = append(ve.Problems, fmt.Sprintf("%s: failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
		// dive errors name the element, e.g. demographic_columns[1]
		key := strings.SplitN(fe.Field(), "[", 2)[0]
		if !seen[key] {
			seen[key] = true
			ve.Keys = append(ve.Keys, key)
		}
	}
	return ve
}

// Repair resets every field that fails validation to its default and returns
// the yaml keys it reset. Valid fields are left untouched.
func (c *Global) Repair() []string {
	var verrs validator.ValidationErrors
	if !errors.As(validate.Struct(c), &verrs) {
		return nil
	}
	cur := reflect.ValueOf(c).Elem()
	def := reflect.ValueOf(Defaults()).Elem()
	var keys []string
	seen := make(map[string]bool)
	for _, fe := range verrs {
		name := strings.SplitN(fe.StructField(), "[", 2)[0]
		if seen[name] {
			continue
		}
		seen[name] = true
		cur.FieldByName(name).Set(def.FieldByName(name))
		keys = append(keys, strings.SplitN(fe.Field(), "[", 2)[0])
	}
	return keys
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.surveyscope/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, dirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (including a local .env file) > config file > defaults.
// When the values decode but fail validation, Load returns the decoded config
// together with a *ValidationError.
func Load(cfgFile string) (*Global, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SURVEYSCOPE")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("data_path", d.DataPath)
	v.SetDefault("sheet", d.Sheet)
	v.SetDefault("preview_chars", d.PreviewChars)
	v.SetDefault("top_values", d.TopValues)
	v.SetDefault("top_open_ended", d.TopOpenEnded)
	v.SetDefault("sample_columns", d.SampleColumns)
	v.SetDefault("top_missing", d.TopMissing)
	v.SetDefault("header_preview", d.HeaderPreview)
	v.SetDefault("demographic_columns", d.DemographicColumns)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, dirName))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist; the default location is optional.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		// Decoded values are still returned so callers can Repair them.
		return &c, err
	}
	return &c, nil
}
