package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sparques/irmouse/mouse"
	"github.com/sparques/irmouse/sim"
)

// appConfig is the tuning of the simulated device and host.
type appConfig struct {
	VelocityInitial  int           `mapstructure:"velocity-initial"`
	VelocityStep     int           `mapstructure:"velocity-step"`
	VelocityLimit    int           `mapstructure:"velocity-limit"`
	VelocitySentinel int           `mapstructure:"velocity-sentinel"`
	ClampVelocity    bool          `mapstructure:"clamp-velocity"`
	IdleReload       int           `mapstructure:"idle-reload"`
	IdleThreshold    int           `mapstructure:"idle-threshold"`
	ClickDebounce    time.Duration `mapstructure:"click-debounce"`
	LoopCost         time.Duration `mapstructure:"loop-cost"`
	USBInterval      time.Duration `mapstructure:"usb-interval"`
	Tail             time.Duration `mapstructure:"tail"`
	ConfigPath       string        `mapstructure:"-"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix("RC5SIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	d := mouse.DefaultConfig
	v.SetDefault("velocity-initial", d.InitialVelocity)
	v.SetDefault("velocity-step", d.VelocityStep)
	v.SetDefault("velocity-limit", d.VelocityLimit)
	v.SetDefault("velocity-sentinel", d.VelocitySentinel)
	v.SetDefault("clamp-velocity", d.ClampVelocity)
	v.SetDefault("idle-reload", d.IdleReload)
	v.SetDefault("idle-threshold", d.IdleThreshold)
	v.SetDefault("click-debounce", d.ClickDebounce)
	v.SetDefault("loop-cost", sim.LoopCost)
	v.SetDefault("usb-interval", sim.USBInterval)
	v.SetDefault("tail", time.Duration(0))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.motion().Validate(); err != nil {
		return cfg, err
	}
	if cfg.LoopCost <= 0 {
		return cfg, fmt.Errorf("invalid loop-cost: %v", cfg.LoopCost)
	}
	if cfg.USBInterval <= 0 {
		return cfg, fmt.Errorf("invalid usb-interval: %v", cfg.USBInterval)
	}
	return cfg, nil
}

func (c appConfig) motion() mouse.Config {
	return mouse.Config{
		InitialVelocity:  c.VelocityInitial,
		VelocityStep:     c.VelocityStep,
		VelocityLimit:    c.VelocityLimit,
		VelocitySentinel: c.VelocitySentinel,
		ClampVelocity:    c.ClampVelocity,
		IdleReload:       c.IdleReload,
		IdleThreshold:    c.IdleThreshold,
		ClickDebounce:    c.ClickDebounce,
	}
}

func (c appConfig) bench() sim.Config {
	return sim.Config{
		Motion:      c.motion(),
		LoopCost:    c.LoopCost,
		USBInterval: c.USBInterval,
	}
}
