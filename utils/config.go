package utils

import (
	"fmt"
	"log/slog"

	"2witter/models"

	"github.com/BurntSushi/toml"
	"github.com/gin-gonic/gin"
)

type Config struct {
	ListenAddr     string `toml:"listen_addr"`
	DefaultPicture string `toml:"default_picture"`
	LogLevel       string `toml:"log_level"`
	LogFile        string `toml:"log_file"`
	GinMode        string `toml:"gin_mode"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:     models.ListenAddr,
		DefaultPicture: models.DefaultPicture,
		LogLevel:       models.LogLevel,
		GinMode:        models.GinMode,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config decode error: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("invalid gin_mode %q", cfg.GinMode)
	}
	return cfg, nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
