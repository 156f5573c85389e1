package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elemgen-labs/elemgen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in the config file and as ELEMGEN_<KEY> env vars.
const (
	KeyElementsFile = "elements_file"
	KeyLogLevel     = "log_level"
	KeyLogFile      = "log_file"
)

// DefaultLogLevel keeps the console quiet unless something is off.
const DefaultLogLevel = "warn"

// Settings is the resolved configuration for one invocation.
type Settings struct {
	ElementsFile string // replacement registry document; empty means embedded
	LogLevel     string
	LogFile      string // optional rotated JSON log
}

// Dir returns the config directory. ELEMGEN_HOME wins over ~/.elemgen.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file (if present) and the environment.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	// A missing config file is the common case.
	if _, err := os.Stat(FilePath()); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", FilePath(), err)
		}
	}

	return &Settings{
		ElementsFile: expandHome(v.GetString(KeyElementsFile)),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFile:      expandHome(v.GetString(KeyLogFile)),
	}, nil
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
