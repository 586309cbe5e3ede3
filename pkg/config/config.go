// Package config resolves where the appointment service lives and how the
// client should behave, from .appt.yaml, APPT_* env vars and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyURL      = "url"
	KeyTimeout  = "timeout"
	KeyPath     = "path"
	KeyLogLevel = "log.level"
	KeyLogFile  = "log.file"

	DefaultURL      = "http://localhost:8080"
	DefaultTimeout  = time.Duration(0) // no client timeout
	DefaultPath     = "~/.appt"
	DefaultLogLevel = "warn"

	configName    = ".appt" // .yaml is implicit
	envPrefix     = "APPT"
	envConfigPath = "APPT_CONFIG_PATH"
)

type Config interface {
	BaseURL() string
	Timeout() time.Duration
	SessionPath() string
	LogLevel() string
	LogFile() string
	// Source is the config file in use, or empty when only defaults and env
	// were read.
	Source() string
}

// Load reads the process-wide viper instance, which the root command binds
// its persistent flags into.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration into v and resolves it.
func LoadFrom(v *viper.Viper) (Config, error) {
	v.SetDefault(KeyURL, DefaultURL)
	v.SetDefault(KeyTimeout, DefaultTimeout.String())
	v.SetDefault(KeyPath, DefaultPath)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetConfigName(configName)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(envConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	timeout, err := parseTimeout(v.GetString(KeyTimeout))
	if err != nil {
		return nil, err
	}
	path, err := homedir.Expand(v.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("config: expand %s: %w", KeyPath, err)
	}

	return &fileConfig{
		URL:      strings.TrimRight(strings.TrimSpace(v.GetString(KeyURL)), "/"),
		Wait:     timeout,
		Path:     path,
		Level:    v.GetString(KeyLogLevel),
		File:     v.GetString(KeyLogFile),
		FileUsed: v.ConfigFileUsed(),
	}, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", KeyTimeout, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative, got %s", KeyTimeout, d)
	}
	return d, nil
}

type fileConfig struct {
	URL      string        `json:"url"`
	Wait     time.Duration `json:"timeout"`
	Path     string        `json:"path"`
	Level    string        `json:"logLevel"`
	File     string        `json:"logFile,omitempty"`
	FileUsed string        `json:"source,omitempty"`
}

func (f *fileConfig) BaseURL() string        { return f.URL }
func (f *fileConfig) Timeout() time.Duration { return f.Wait }
func (f *fileConfig) SessionPath() string    { return f.Path }
func (f *fileConfig) LogLevel() string       { return f.Level }
func (f *fileConfig) LogFile() string        { return f.File }
func (f *fileConfig) Source() string         { return f.FileUsed }
