package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application settings. Precedence, lowest first: defaults,
// settings file, environment, command line flags.
type Config struct {
	DataDir   string `toml:"data_dir"`
	ExportDir string `toml:"export_dir"`
	Theme     string `toml:"theme"` // auto, light or dark
	Debug     bool   `toml:"debug"`

	// One-shot modes, command line only.
	Export  string `toml:"-"`
	Preview bool   `toml:"-"`
}

func DefaultConfig() Config {
	dataDir := "."
	if dir, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(dir, "scrollkit")
	}
	exportDir := "."
	if wd, err := os.Getwd(); err == nil {
		exportDir = wd
	}
	return Config{
		DataDir:   dataDir,
		ExportDir: exportDir,
		Theme:     "auto",
	}
}

// StoragePath is the key/value file standing in for browser local storage.
func (c Config) StoragePath() string { return filepath.Join(c.DataDir, "storage.json") }

// PreviewPath is where the live preview page is written.
func (c Config) PreviewPath() string { return filepath.Join(c.DataDir, "preview.html") }

func (c Config) LogPath() string { return filepath.Join(c.DataDir, "scrollkit.log") }

func applyEnvOverrides(config Config) Config {
	if val := os.Getenv("SCROLLKIT_DATA_DIR"); val != "" {
		config.DataDir = val
	}
	if val := os.Getenv("SCROLLKIT_EXPORT_DIR"); val != "" {
		config.ExportDir = val
	}
	if val := os.Getenv("SCROLLKIT_THEME"); val != "" {
		config.Theme = val
	}
	if val := os.Getenv("SCROLLKIT_DEBUG"); val != "" {
		if debug, err := strconv.ParseBool(val); err == nil {
			config.Debug = debug
		}
	}
	return config
}

// ParseFlags builds the configuration from args (without the program name).
func ParseFlags(args []string, stderr io.Writer) (Config, error) {
	config := DefaultConfig()

	fs := flag.NewFlagSet("scrollkit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var configFile string
	flagConfig := config
	fs.StringVar(&configFile, "config", "", "Path to TOML settings file")
	fs.StringVar(&flagConfig.DataDir, "data-dir", config.DataDir, "Directory for saved state, preview page and log")
	fs.StringVar(&flagConfig.ExportDir, "export-dir", config.ExportDir, "Directory exported files are written to")
	fs.StringVar(&flagConfig.Theme, "theme", config.Theme, "Color theme: auto, light or dark")
	fs.BoolVar(&flagConfig.Debug, "debug", config.Debug, "Enable debug logging")
	fs.StringVar(&flagConfig.Export, "export", "", "Print the saved scrollbar as css, scss or js and exit")
	fs.BoolVar(&flagConfig.Preview, "preview", false, "Write the preview page, open it in a browser and exit")

	if err := fs.Parse(args); err != nil {
		return config, err
	}

	if configFile != "" {
		fileConfig, err := loadConfigFromFile(configFile, config)
		if err != nil {
			return config, err
		}
		config = fileConfig
	}
	config = applyEnvOverrides(config)

	// Explicit flags win over everything else.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			config.DataDir = flagConfig.DataDir
		case "export-dir":
			config.ExportDir = flagConfig.ExportDir
		case "theme":
			config.Theme = flagConfig.Theme
		case "debug":
			config.Debug = flagConfig.Debug
		}
	})
	config.Export = flagConfig.Export
	config.Preview = flagConfig.Preview

	switch config.Theme {
	case "auto", "light", "dark":
	default:
		return config, fmt.Errorf("invalid theme %q (want auto, light or dark)", config.Theme)
	}
	return config, nil
}

// loadConfigFromFile decodes a TOML settings file on top of base.
func loadConfigFromFile(filename string, base Config) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return base, fmt.Errorf("read settings: %w", err)
	}

	config := base
	if err := toml.Unmarshal(data, &config); err != nil {
		return base, fmt.Errorf("parse settings %s: %w", filename, err)
	}
	return config, nil
}
