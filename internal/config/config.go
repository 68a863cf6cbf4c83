// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAnkiConnectURL = "http://localhost:8765"
	DefaultModelName      = "Basic"
	DefaultFrontField     = "Front"
	DefaultBackField      = "Back"
	DefaultTimeout        = 10 * time.Second
	DefaultExportOutput   = "output.csv"
	DefaultFileName       = "vocabankify.yaml"
	EnvPrefix             = "VOCABANKIFY"
)

type AnkiConfig struct {
	URL        string        `yaml:"url"`
	Timeout    time.Duration `yaml:"timeout"`
	ModelName  string        `yaml:"model_name"`
	FrontField string        `yaml:"front_field"`
	BackField  string        `yaml:"back_field"`
	Tags       []string      `yaml:"tags,omitempty"`
}

type DeckConfig struct {
	Name string `yaml:"name"`
	Root string `yaml:"root"`
}

type ExportConfig struct {
	Output string `yaml:"output"`
}

type LogConfig struct {
	Verbose bool   `yaml:"verbose"`
	Debug   bool   `yaml:"debug"`
	Dir     string `yaml:"dir"`
}

// UpdateConfig points `version --check` at a release manifest and/or a
// GitHub latest-release API URL. Both empty disables the check.
type UpdateConfig struct {
	ManifestURL string `yaml:"manifest_url"`
	GitHubURL   string `yaml:"github_url"`
}

type Config struct {
	Anki   AnkiConfig   `yaml:"anki"`
	Deck   DeckConfig   `yaml:"deck"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
	Update UpdateConfig `yaml:"update"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the configuration as YAML, refusing to replace an existing
// file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *Config) applyDefaults() {
	if c.Anki.URL == "" {
		c.Anki.URL = DefaultAnkiConnectURL
	}
	if c.Anki.Timeout <= 0 {
		c.Anki.Timeout = DefaultTimeout
	}
	if c.Anki.ModelName == "" {
		c.Anki.ModelName = DefaultModelName
	}
	if c.Anki.FrontField == "" {
		c.Anki.FrontField = DefaultFrontField
	}
	if c.Anki.BackField == "" {
		c.Anki.BackField = DefaultBackField
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultExportOutput
	}
}

// ApplyOverrides copies every key set in v (flags bound to it, or
// VOCABANKIFY_* environment variables) over the file values.
func (c *Config) ApplyOverrides(v *viper.Viper) {
	if v.IsSet("anki.url") {
		c.Anki.URL = v.GetString("anki.url")
	}
	if v.IsSet("anki.timeout") {
		c.Anki.Timeout = v.GetDuration("anki.timeout")
	}
	if v.IsSet("anki.model_name") {
		c.Anki.ModelName = v.GetString("anki.model_name")
	}
	if v.IsSet("anki.front_field") {
		c.Anki.FrontField = v.GetString("anki.front_field")
	}
	if v.IsSet("anki.back_field") {
		c.Anki.BackField = v.GetString("anki.back_field")
	}
	if v.IsSet("anki.tags") {
		c.Anki.Tags = v.GetStringSlice("anki.tags")
	}
	if v.IsSet("deck.name") {
		c.Deck.Name = v.GetString("deck.name")
	}
	if v.IsSet("deck.root") {
		c.Deck.Root = v.GetString("deck.root")
	}
	if v.IsSet("export.output") {
		c.Export.Output = v.GetString("export.output")
	}
	if v.IsSet("log.verbose") {
		c.Log.Verbose = v.GetBool("log.verbose")
	}
	if v.IsSet("log.debug") {
		c.Log.Debug = v.GetBool("log.debug")
	}
	if v.IsSet("log.dir") {
		c.Log.Dir = v.GetString("log.dir")
	}
	if v.IsSet("update.manifest_url") {
		c.Update.ManifestURL = v.GetString("update.manifest_url")
	}
	if v.IsSet("update.github_url") {
		c.Update.GitHubURL = v.GetString("update.github_url")
	}

	c.applyDefaults()
}
