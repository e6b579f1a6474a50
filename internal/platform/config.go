package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// DefaultFeedURL is the published collection sheet.
const DefaultFeedURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSbD1WEET8Z_X9SGBu_Nzfag8zO6NaBxnNn3HVBUH1erzlZAinL8oDIA1nUWGN07xd71HoR85fgQ2Yq/pub?output=csv"

// Config holds all configuration options.
type Config struct {
	Feed    FeedConfig    `yaml:"feed" json:"feed"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	View    ViewConfig    `yaml:"view" json:"view"`
	Log     LogConfig     `yaml:"log" json:"log"`

	// Source is the config file that was loaded, empty if none.
	Source string `yaml:"-" json:"-"`
}

// FeedConfig configures where the collection comes from.
type FeedConfig struct {
	// URI is an http(s) CSV URL, a local CSV path or a doublestar glob.
	URI string `yaml:"uri" json:"uri" default:"https://docs.google.com/spreadsheets/d/e/2PACX-1vSbD1WEET8Z_X9SGBu_Nzfag8zO6NaBxnNn3HVBUH1erzlZAinL8oDIA1nUWGN07xd71HoR85fgQ2Yq/pub?output=csv" validate:"required"`
	// Timeout bounds one fetch, e.g. "15s".
	Timeout string `yaml:"timeout" json:"timeout" default:"15s" validate:"required"`
}

// StorageConfig configures local persistence of notes and preferences.
type StorageConfig struct {
	// Dir defaults to $XDG_DATA_HOME/cellar or ~/.local/share/cellar.
	Dir string `yaml:"dir" json:"dir"`
}

// ViewConfig configures terminal rendering.
type ViewConfig struct {
	Layout  string `yaml:"layout" json:"layout" default:"grid" validate:"oneof=grid list"`
	Columns int    `yaml:"columns" json:"columns" default:"3" validate:"min=1,max=6"`
	Width   int    `yaml:"width" json:"width" default:"100" validate:"min=40,max=400"`
}

// LogConfig configures slog.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" default:"text" validate:"oneof=text json"`
}

// FeedTimeout parses Feed.Timeout.
func (c Config) FeedTimeout() time.Duration {
	d, err := time.ParseDuration(c.Feed.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// ConfigFileNames are looked up, in order, in each directory walking upward.
var ConfigFileNames = []string{".cellar.yaml", ".cellar.yml", ".cellar.json"}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDir    string            // where the config search starts; os.Getwd() if empty
	ConfigPath string            // explicit config file; skips the search
	Overrides  Config            // non-zero fields win over everything else
	Env        map[string]string // environment; os.Environ() if nil
	// DotEnv loads a .env file from WorkDir into Env when present.
	DotEnv bool
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Config file (explicit path, or the nearest one found walking upward)
// 3. Environment (CELLAR_FEED, CELLAR_STORAGE_DIR, CELLAR_LOG_LEVEL), including .env
// 4. Overrides
//
// The result is validated.
func LoadConfig(input LoadConfigInput) (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("set default config failed: %w", err)
	}

	workDir := input.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
		workDir = wd
	}

	path := input.ConfigPath
	if path == "" {
		path = FindConfig(workDir)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	if path != "" {
		if err := readConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
		cfg.Source = path
	}

	env := input.Env
	if env == nil {
		env = environ()
	}
	if input.DotEnv {
		dotenv, err := godotenv.Read(filepath.Join(workDir, ".env"))
		if err == nil {
			for k, v := range dotenv {
				if _, set := env[k]; !set {
					env[k] = v
				}
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read .env: %w", err)
		}
	}
	applyEnv(&cfg, env)
	applyOverrides(&cfg, input.Overrides)

	// Fill fields a file set to their zero value.
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("re-set default config failed: %w", err)
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = DefaultStorageDir(env)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.ParseDuration(cfg.Feed.Timeout); err != nil {
		return Config{}, fmt.Errorf("invalid config: feed.timeout: %w", err)
	}
	return cfg, nil
}

// readConfigFile decodes YAML, or JSON with comments and trailing commas,
// by extension.
func readConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file failed: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("parse config file %s failed: %w", path, err)
		}
		if err := json.Unmarshal(standardized, cfg); err != nil {
			return fmt.Errorf("parse config file %s failed: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config file %s failed: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config, env map[string]string) {
	if v := env["CELLAR_FEED"]; v != "" {
		cfg.Feed.URI = v
	}
	if v := env["CELLAR_STORAGE_DIR"]; v != "" {
		cfg.Storage.Dir = v
	}
	if v := env["CELLAR_LOG_LEVEL"]; v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
}

func applyOverrides(cfg *Config, o Config) {
	if o.Feed.URI != "" {
		cfg.Feed.URI = o.Feed.URI
	}
	if o.Feed.Timeout != "" {
		cfg.Feed.Timeout = o.Feed.Timeout
	}
	if o.Storage.Dir != "" {
		cfg.Storage.Dir = o.Storage.Dir
	}
	if o.View.Layout != "" {
		cfg.View.Layout = o.View.Layout
	}
	if o.View.Columns != 0 {
		cfg.View.Columns = o.View.Columns
	}
	if o.View.Width != 0 {
		cfg.View.Width = o.View.Width
	}
	if o.Log.Level != "" {
		cfg.Log.Level = o.Log.Level
	}
	if o.Log.Format != "" {
		cfg.Log.Format = o.Log.Format
	}
}

// DefaultStorageDir returns $XDG_DATA_HOME/cellar, else ~/.local/share/cellar,
// else ".cellar" in the working directory.
func DefaultStorageDir(env map[string]string) string {
	if xdg := env["XDG_DATA_HOME"]; xdg != "" {
		return filepath.Join(xdg, "cellar")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".local", "share", "cellar")
	}
	return ".cellar"
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, e := range os.Environ() {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}
	return env
}
