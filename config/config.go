package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/romserve"
	romhttp "github.com/sagarc03/romserve/http"
)

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for romserve.
type Config struct {
	Server ServerConfig       `mapstructure:"server"`
	Router RouterConfig       `mapstructure:"router"`
	Assets AssetsConfig       `mapstructure:"assets"`
	API    APIConfig          `mapstructure:"api"`
	CORS   romhttp.CORSConfig `mapstructure:"cors"`
	Log    LogConfig          `mapstructure:"log"`
	Env    string             `mapstructure:"env" validate:"required,oneof=dev prod"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	Adapter      string        `mapstructure:"adapter" validate:"required,oneof=chi chain"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" validate:"min=0"`
}

// RouterConfig holds asset router configuration.
type RouterConfig struct {
	DefaultDocument string   `mapstructure:"default_document" validate:"required,assetpath"`
	IgnoredPrefixes []string `mapstructure:"ignored_prefixes" validate:"dive,prefix"`
}

// AssetsConfig controls where the asset table comes from.
type AssetsConfig struct {
	// Dir is the asset directory. Empty serves the embedded demo set.
	Dir       string `mapstructure:"dir"`
	Recursive bool   `mapstructure:"recursive"`
	Minify    bool   `mapstructure:"minify"`
	Compress  bool   `mapstructure:"compress"`
	Manifest  string `mapstructure:"manifest" validate:"required"`
}

// APIConfig holds the JSON API configuration.
type APIConfig struct {
	Prefix  string `mapstructure:"prefix" validate:"required,prefix"`
	Metrics bool   `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// RomserveRouterConfig converts to the router's own config type.
func (c RouterConfig) RomserveRouterConfig() romserve.RouterConfig {
	return romserve.RouterConfig{DefaultDocument: c.DefaultDocument}
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"assets-dir": "assets.dir",
	"recursive":  "assets.recursive",
	"minify":     "assets.minify",
	"compress":   "assets.compress",
	"port":       "server.port",
	"adapter":    "server.adapter",
	"log-level":  "log.level",
	"api-prefix": "api.prefix",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.adapter", "chi")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)

	v.SetDefault("router.default_document", romserve.DefaultDocument)
	v.SetDefault("router.ignored_prefixes", []string{})

	v.SetDefault("assets.dir", "") // empty means embedded demo assets
	v.SetDefault("assets.recursive", true)
	v.SetDefault("assets.minify", false)
	v.SetDefault("assets.compress", false)
	v.SetDefault("assets.manifest", "assets.yaml")

	v.SetDefault("api.prefix", "/api")
	v.SetDefault("api.metrics", true)

	v.SetDefault("cors.enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("env", "dev")
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("assetpath", func(fl validator.FieldLevel) bool {
		return romserve.IsValidAssetPath(fl.Field().String())
	})
	_ = validate.RegisterValidation("prefix", func(fl validator.FieldLevel) bool {
		return romserve.IsValidPrefix(fl.Field().String())
	})
	return validate
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("romserve")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	v.SetEnvPrefix("ROMSERVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := newValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
