package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Install InstallConfig `mapstructure:"install"`
	Launch  LaunchConfig  `mapstructure:"launch"`
	Shell   ShellConfig   `mapstructure:"shell"`
	Command CommandConfig `mapstructure:"command"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InstallConfig describes where the Git for Windows install root is recorded
type InstallConfig struct {
	// Locations are registry keys in probe order, e.g. HKLM\SOFTWARE\GitForWindows.
	Locations  []string `mapstructure:"locations"`
	ValueName  string   `mapstructure:"value_name"`
	Executable string   `mapstructure:"executable"`
}

// LaunchConfig contains process launch configuration
type LaunchConfig struct {
	CdFlag string `mapstructure:"cd_flag"`
}

// ShellConfig lists the window classes used to classify the foreground window
type ShellConfig struct {
	DesktopClasses  []string `mapstructure:"desktop_classes"`
	ExplorerClasses []string `mapstructure:"explorer_classes"`
}

// CommandConfig contains what the host displays for the command
type CommandConfig struct {
	Title string `mapstructure:"title"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// DefaultLocations is the registry probe order used by Git for Windows installers.
var DefaultLocations = []string{
	`HKLM\SOFTWARE\GitForWindows`,
	`HKLM\SOFTWARE\WOW6432Node\GitForWindows`,
	`HKCU\SOFTWARE\GitForWindows`,
	`HKCU\SOFTWARE\WOW6432Node\GitForWindows`,
}

// Load loads configuration from the default search paths and environment
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from an explicit file. An empty path searches
// the user config directory and the working directory.
func LoadFile(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "githere"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	return unmarshal(v)
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	cfg, err := unmarshal(newViper())
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	// Environment variable overrides
	v.SetEnvPrefix("GITHERE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	cacheDir, err := os.UserCacheDir()
	if err != nil || cacheDir == "" {
		cacheDir = os.TempDir()
	}

	v.SetDefault("install.locations", DefaultLocations)
	v.SetDefault("install.value_name", "InstallPath")
	v.SetDefault("install.executable", "git-bash.exe")

	v.SetDefault("launch.cd_flag", "--cd=")

	v.SetDefault("shell.desktop_classes", []string{"Progman", "WorkerW"})
	v.SetDefault("shell.explorer_classes", []string{"CabinetWClass", "ExploreWClass"})

	v.SetDefault("command.title", "Git Bash Here")

	v.SetDefault("paths.log_file", filepath.Join(cacheDir, "githere", "githere.log"))

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	// Expand %VAR% as well as $VAR, since Windows users write the former
	path = expandPercentVars(path)
	path = os.ExpandEnv(path)

	return path
}

func expandPercentVars(path string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(path, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(path[start+1:], '%')
		if end < 0 {
			break
		}
		name := path[start+1 : start+1+end]
		b.WriteString(path[:start])
		if val, ok := os.LookupEnv(name); ok && name != "" {
			b.WriteString(val)
		} else {
			b.WriteString(path[start : start+end+2])
		}
		path = path[start+end+2:]
	}
	b.WriteString(path)
	return b.String()
}
