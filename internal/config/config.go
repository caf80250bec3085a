// Package config loads the tool's configuration file, creating it with
// defaults on first run.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultPath is where the config file lives unless overridden.
	DefaultPath = "config.json"

	DefaultChecklistPath = "boss_data.json"
	DefaultSavePath      = "default_save.json"
)

// Config points at the two data files: the static boss catalog and the
// mutable save file.
type Config struct {
	ChecklistPath string `mapstructure:"checklist_path" json:"checklist_path"`
	DefaultSave   string `mapstructure:"default_save" json:"default_save"`
}

// Load reads the config file at path, writing a default-valued one first if
// it does not exist. Values can be overridden through BOSSCHECK_* environment
// variables. All failures, including a failed first-run write, are returned
// to the caller.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("BOSSCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("checklist_path", DefaultChecklistPath)
	v.SetDefault("default_save", DefaultSavePath)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := v.WriteConfigAs(path); err != nil {
			return Config{}, fmt.Errorf("write default config %s: %w", path, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
