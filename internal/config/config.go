// Package config provides the TOML configuration file and path helpers.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the optional TOML configuration file. Flags take
// precedence over file values, which take precedence over defaults.
type FileConfig struct {
	Store     *string `toml:"store"`
	Debug     *bool   `toml:"debug"`
	WeekStart *string `toml:"week-start"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ParseWeekStart maps a weekday name to time.Weekday, defaulting to Sunday.
func ParseWeekStart(name string) (time.Weekday, error) {
	if name == "" {
		return time.Sunday, nil
	}
	days := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	wd, ok := days[strings.ToLower(name)]
	if !ok {
		return time.Sunday, fmt.Errorf("invalid week start: %s", name)
	}
	return wd, nil
}
