package model

import (
	"fmt"
	"time"
)

// Config holds everything a generator run needs. A pipeline copies it at
// construction and never mutates it afterwards.
type Config struct {
	SourceURL       string         `yaml:"source_url" mapstructure:"source_url"`             // Dataset location
	LocalCachePath  string         `yaml:"local_cache_path" mapstructure:"local_cache_path"` // Scratch copy of the download
	DestinationPath string         `yaml:"destination_path" mapstructure:"destination_path"` // Generated source file
	Normalizer      NormalizerMode `yaml:"normalizer" mapstructure:"normalizer"`             // denylist or strict

	HTTP     HTTPConfig `yaml:"http" mapstructure:"http"`
	Template Template   `yaml:"template" mapstructure:"template"`
	Log      LogConfig  `yaml:"log" mapstructure:"log"`
}

// HTTPConfig configures the dataset download
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	MaxRedirects  int           `yaml:"max_redirects" mapstructure:"max_redirects"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// Template describes the envelope of the generated artifact.
// Header, Entry and Footer are text/template snippets.
type Template struct {
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
	Container string `yaml:"container" mapstructure:"container"`
	Header    string `yaml:"header" mapstructure:"header"`
	Entry     string `yaml:"entry" mapstructure:"entry"`
	Footer    string `yaml:"footer" mapstructure:"footer"`
}

// LogConfig configures progress logging
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error
}

// NormalizerMode selects how display names become identifiers
type NormalizerMode string

const (
	NormalizerDenylist NormalizerMode = "denylist" // Strip space , ( ) - only
	NormalizerStrict   NormalizerMode = "strict"   // Keep identifier characters only
)

const (
	DefaultSourceURL = "https://github.com/mledoze/countries/raw/master/countries.json"

	defaultHeader = `namespace {{.Namespace}}
{
    public class {{.Container}}
    {
`
	defaultEntry  = `        public Country {{.Identifier}} { get; } = new Country { Name = "{{.Literal}}" };`
	defaultFooter = `    }
}
`
)

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		SourceURL:       DefaultSourceURL,
		LocalCachePath:  "countries.json",
		DestinationPath: "CountryRepository.cs",
		Normalizer:      NormalizerDenylist,
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "countrygen/0.1 (+https://github.com/ppiankov/countrygen)",
			MaxBodyBytes: 32 << 20,
			MaxRedirects: 5,
		},
		Template: DefaultTemplate(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultTemplate returns the C# country repository envelope
func DefaultTemplate() Template {
	return Template{
		Namespace: "lib12.Data.Geopolitical",
		Container: "CountryRepository",
		Header:    defaultHeader,
		Entry:     defaultEntry,
		Footer:    defaultFooter,
	}
}

// Validate reports the first missing or malformed setting
func (c *Config) Validate() error {
	switch {
	case c.SourceURL == "":
		return fmt.Errorf("source_url is required")
	case c.LocalCachePath == "":
		return fmt.Errorf("local_cache_path is required")
	case c.DestinationPath == "":
		return fmt.Errorf("destination_path is required")
	case c.LocalCachePath == c.DestinationPath:
		return fmt.Errorf("local_cache_path and destination_path must differ: %s", c.DestinationPath)
	case c.Template.Entry == "":
		return fmt.Errorf("template.entry is required")
	case c.Template.Container == "":
		return fmt.Errorf("template.container is required")
	case c.HTTP.MaxBodyBytes <= 0:
		return fmt.Errorf("http.max_body_bytes must be positive, got %d", c.HTTP.MaxBodyBytes)
	case c.HTTP.MaxRedirects < 0:
		return fmt.Errorf("http.max_redirects must not be negative, got %d", c.HTTP.MaxRedirects)
	}

	switch c.Normalizer {
	case NormalizerDenylist, NormalizerStrict:
	default:
		return fmt.Errorf("unknown normalizer %q (want %q or %q)", c.Normalizer, NormalizerDenylist, NormalizerStrict)
	}

	return nil
}
