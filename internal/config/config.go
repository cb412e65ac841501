package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress     string        `json:"server_address"`
	GRPCAddress       string        `json:"grpc_address"`
	ShortenerEnabled  bool          `json:"shortener_enabled"`
	ShortenerEndpoint string        `json:"shortener_endpoint"`
	ShortenerTimeout  time.Duration `json:"shortener_timeout"`
	EnableHTTPS       bool          `json:"enable_https"`
	TLSCertPath       string        `json:"tls_cert_path"`
	TLSKeyPath        string        `json:"tls_key_path"`
	LogLevel          string        `json:"log_level"`
	LogFile           string        `json:"log_file"`
	DefaultStyle      model.Style   `json:"-"`
}

// ключ viper -> имя флага
var flagKeys = map[string]string{
	"server_address":     "address",
	"grpc_address":       "grpc-address",
	"shortener_endpoint": "shortener",
	"enable_https":       "https",
	"tls_cert_path":      "cert",
	"tls_key_path":       "key",
	"log_level":          "log-level",
	"log_file":           "log-file",
	"config":             "config",
}

// RegisterFlags adds the server flags to fs. Flags carry no defaults of their
// own; defaults live in viper so that env and config files can override them.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("address", "a", "", "HTTP server address")
	fs.StringP("grpc-address", "g", "", "gRPC server address (empty string disables gRPC)")
	fs.StringP("shortener", "u", "", "TinyURL-compatible shortener endpoint")
	fs.BoolP("https", "s", false, "enable HTTPS")
	fs.String("cert", "", "path to TLS certificate")
	fs.String("key", "", "path to TLS key")
	fs.StringP("config", "c", "", "path to JSON config file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("log-file", "", "write logs to this file as well, rotated")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_address", "localhost:8080")
	v.SetDefault("grpc_address", "localhost:3200")
	v.SetDefault("shortener_enabled", true)
	v.SetDefault("shortener_endpoint", shortener.DefaultEndpoint)
	v.SetDefault("shortener_timeout", 10*time.Second)
	v.SetDefault("enable_https", false)
	v.SetDefault("tls_cert_path", "cert.pem")
	v.SetDefault("tls_key_path", "key.pem")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("default_fill_color", model.DefaultFillColor)
	v.SetDefault("default_back_color", model.DefaultBackColor)
	v.SetDefault("default_module_size", model.DefaultModuleSize)
	v.SetDefault("default_border_width", model.DefaultBorderWidth)
}

// Load reads the configuration. Priority from lowest to highest:
// defaults, .env, JSON config file, environment, flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	// Читаем .env, если есть
	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	cfg := &Config{
		ServerAddress:     v.GetString("server_address"),
		GRPCAddress:       v.GetString("grpc_address"),
		ShortenerEnabled:  v.GetBool("shortener_enabled"),
		ShortenerEndpoint: v.GetString("shortener_endpoint"),
		ShortenerTimeout:  v.GetDuration("shortener_timeout"),
		EnableHTTPS:       v.GetBool("enable_https"),
		TLSCertPath:       v.GetString("tls_cert_path"),
		TLSKeyPath:        v.GetString("tls_key_path"),
		LogLevel:          v.GetString("log_level"),
		LogFile:           v.GetString("log_file"),
		DefaultStyle: model.Style{
			FillColor:   v.GetString("default_fill_color"),
			BackColor:   v.GetString("default_back_color"),
			ModuleSize:  v.GetInt("default_module_size"),
			BorderWidth: v.GetInt("default_border_width"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return errors.New("server address must not be empty")
	}
	if cfg.ShortenerEnabled && cfg.ShortenerEndpoint == "" {
		return errors.New("shortener endpoint must not be empty when shortening is enabled")
	}
	if cfg.ShortenerTimeout < 0 {
		return fmt.Errorf("shortener timeout %s is negative", cfg.ShortenerTimeout)
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return errors.New("HTTPS needs both tls_cert_path and tls_key_path")
	}
	if !cfg.DefaultStyle.InRange() {
		return fmt.Errorf("default style out of range: module size %d, border %d",
			cfg.DefaultStyle.ModuleSize, cfg.DefaultStyle.BorderWidth)
	}
	if _, err := qr.ParseHexColor(cfg.DefaultStyle.FillColor); err != nil {
		return fmt.Errorf("default fill color: %w", err)
	}
	if _, err := qr.ParseHexColor(cfg.DefaultStyle.BackColor); err != nil {
		return fmt.Errorf("default back color: %w", err)
	}
	return nil
}
