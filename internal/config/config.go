// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	DailyGoal    int `mapstructure:"daily_goal"`     // goal 未指定時のセッション件数
	MaxDailyGoal int `mapstructure:"max_daily_goal"` // ?goal= の上限
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

var Cfg Config

// LoadConfig は path 配下の config.yaml と環境変数 (APP_ 接頭辞) から設定を読み込みます。
// 例: APP_DATABASE_URL, APP_APP_DAILY_GOAL
func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 接頭辞なしの DATABASE_URL も受け付ける (docker-compose などでよく使われるため)
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using defaults and environment variables.", slog.String("path", path))
		} else {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	Cfg = cfg

	slog.Info("Config loaded successfully",
		slog.String("server_port", Cfg.Server.Port),
		slog.String("database_driver", Cfg.Database.Driver),
		slog.Int("daily_goal", Cfg.App.DailyGoal),
		slog.Bool("metrics_enabled", Cfg.Metrics.Enabled),
	)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("app.daily_goal", DefaultDailyGoal)
	v.SetDefault("app.max_daily_goal", DefaultMaxDailyGoal)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("metrics.enabled", true)
}

// Validate は起動前に矛盾した設定を弾きます。
func (c Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("database.url is required for postgres"))
		}
	case DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported database.driver %q", c.Database.Driver))
	}
	if c.App.DailyGoal <= 0 {
		errs = append(errs, fmt.Errorf("app.daily_goal must be positive, got %d", c.App.DailyGoal))
	}
	if c.App.MaxDailyGoal < c.App.DailyGoal {
		errs = append(errs, fmt.Errorf("app.max_daily_goal (%d) must be >= app.daily_goal (%d)", c.App.MaxDailyGoal, c.App.DailyGoal))
	}
	return errors.Join(errs...)
}
