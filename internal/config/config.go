package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/kdudkov/gocoord/pkg/coord"
	"github.com/kdudkov/gocoord/pkg/proj"
)

const (
	EnvPrefix = "GOCOORD"

	// accepted range of the decimals setting and parameter
	MinDecimals = -6
	MaxDecimals = 12
)

var ErrInvalid = errors.New("invalid config")

type AppConfig struct {
	v      *viper.Viper
	logger *slog.Logger
}

// Snapshot is the immutable view of the config the server works with. A new
// one is built on every reload.
type Snapshot struct {
	APIAddr       string
	Target        int
	Decimals      int
	System        coord.System
	Metrics       bool
	LogErrorsOnly bool
}

func NewAppConfig() *AppConfig {
	c := &AppConfig{
		v:      viper.New(),
		logger: slog.Default().With(slog.String("logger", "config")),
	}

	setDefaults(c.v)

	c.v.SetEnvPrefix(EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_addr", ":8080")
	v.SetDefault("target", coord.DefaultTarget)
	v.SetDefault("decimals", coord.DefaultDecimals)
	v.SetDefault("system", coord.LV95.ID())
	v.SetDefault("metrics", true)
	v.SetDefault("log_errors_only", false)
}

// Load merges the given yaml files in order. It reports whether at least one
// of them was read.
func (c *AppConfig) Load(filename ...string) bool {
	loaded := false

	for _, name := range filename {
		if name == "" {
			continue
		}

		c.v.SetConfigFile(name)

		if err := c.v.MergeInConfig(); err != nil {
			c.logger.Info(fmt.Sprintf("error loading config: %s", err.Error()))
		} else {
			loaded = true
		}
	}

	return loaded
}

func (c *AppConfig) Bool(key string) bool {
	return c.v.GetBool(key)
}

func (c *AppConfig) String(key string) string {
	return c.v.GetString(key)
}

func (c *AppConfig) Int(key string) int {
	return c.v.GetInt(key)
}

func (c *AppConfig) Set(key string, v any) {
	c.v.Set(key, v)
}

// Snapshot reads and validates the current values.
func (c *AppConfig) Snapshot() (*Snapshot, error) {
	s := &Snapshot{
		APIAddr:       c.v.GetString("api_addr"),
		Target:        c.v.GetInt("target"),
		Decimals:      c.v.GetInt("decimals"),
		Metrics:       c.v.GetBool("metrics"),
		LogErrorsOnly: c.v.GetBool("log_errors_only"),
	}

	if proj.ForEPSG(s.Target) == nil {
		return nil, fmt.Errorf("%w: target: %w", ErrInvalid, proj.ErrUnknownProjection)
	}

	if s.Decimals < MinDecimals || s.Decimals > MaxDecimals {
		return nil, fmt.Errorf("%w: decimals %d not in [%d, %d]", ErrInvalid, s.Decimals, MinDecimals, MaxDecimals)
	}

	sys, err := coord.ParseSystem(c.v.GetString("system"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	s.System = sys

	return s, nil
}

// Watch calls f with a fresh snapshot each time the loaded file changes.
// Invalid changes are logged and skipped.
func (c *AppConfig) Watch(f func(s *Snapshot)) {
	c.v.OnConfigChange(func(e fsnotify.Event) {
		c.logger.Info("config changed", slog.String("file", e.Name), slog.String("op", e.Op.String()))

		s, err := c.Snapshot()
		if err != nil {
			c.logger.Warn("config not applied", slog.Any("error", err))
			return
		}

		f(s)
	})

	c.v.WatchConfig()
}
