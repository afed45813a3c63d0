// Package config reads the application manifest: routes and their view
// targets, the default route, mock data sources, locale and logging.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultManifest string

// Duration is a time.Duration read from strings like "3s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the decoded manifest.
type Config struct {
	App     App     `toml:"app"`
	Routing Routing `toml:"routing"`
	Data    Data    `toml:"data"`
	Notify  Notify  `toml:"notify"`
	Log     Log     `toml:"log"`
}

type App struct {
	ID     string `toml:"id"`
	Title  string `toml:"title"`
	Locale string `toml:"locale"`
}

type Routing struct {
	DefaultRoute string  `toml:"default_route"`
	Routes       []Route `toml:"routes"`
}

type Route struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
	Target  string `toml:"target"`
}

type Data struct {
	Customers string   `toml:"customers"`
	Products  string   `toml:"products"`
	Orders    string   `toml:"orders"`
	Timeout   Duration `toml:"timeout"`
}

type Notify struct {
	ToastDuration Duration `toml:"toast_duration"`
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Default returns the embedded manifest.
func Default() *Config {
	cfg := &Config{}
	if _, err := toml.Decode(defaultManifest, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded manifest is invalid: %v", err))
	}
	return cfg
}

// Load reads the manifest at path over the embedded defaults. An empty path
// uses $PODISPLAY_CONFIG; if that is unset too, the defaults are returned.
// A missing file is not an error. LOG_LEVEL overrides log.level.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a manifest from a string over the embedded defaults.
func Parse(manifest string) (*Config, error) {
	cfg := Default()

	// Routes from the manifest replace the defaults rather than append to them.
	cfg.Routing.Routes = nil
	meta, err := toml.Decode(manifest, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !meta.IsDefined("routing", "routes") {
		cfg.Routing.Routes = Default().Routing.Routes
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown keys %v", undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	*c = *parsed
	return nil
}

// Validate checks route names are unique and the default route exists.
func (c *Config) Validate() error {
	if len(c.Routing.Routes) == 0 {
		return errors.New("config: no routes defined")
	}

	seen := make(map[string]bool, len(c.Routing.Routes))
	for _, r := range c.Routing.Routes {
		if r.Name == "" {
			return errors.New("config: route without a name")
		}
		if seen[r.Name] {
			return fmt.Errorf("config: duplicate route %q", r.Name)
		}
		seen[r.Name] = true
	}

	if c.Routing.DefaultRoute == "" {
		c.Routing.DefaultRoute = constants.RouteMain
	}
	if !seen[c.Routing.DefaultRoute] {
		return fmt.Errorf("config: default route %q is not defined", c.Routing.DefaultRoute)
	}
	return nil
}

// Encode renders the config back to TOML.
func (c *Config) Encode() (string, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("config: encode: %w", err)
	}
	return buf.String(), nil
}
