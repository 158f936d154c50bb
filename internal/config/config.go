// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the analyzer configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Model artifacts
	VectorizerPath string `json:"vectorizer_path,omitempty"` // Path to TF-IDF vectorizer model file
	ClassifierPath string `json:"classifier_path,omitempty"` // Path to linear classifier model file
	GazetteerPath  string `json:"gazetteer_path,omitempty"`  // Path to NER gazetteer file (optional)

	// External services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for summarization
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Ingestion limits
	MaxFileSizeMB     int      `json:"max_file_size_mb,omitempty"`   // Maximum upload size in megabytes
	AllowedExtensions []string `json:"allowed_extensions,omitempty"` // Accepted file extensions (with dot)

	// Behavior
	EnableSummarization bool   `json:"enable_summarization,omitempty"` // Generate LLM summaries when an API key is set
	RemoveStopwords     bool   `json:"remove_stopwords,omitempty"`     // Strip stopwords before categorization
	Verbose             bool   `json:"verbose,omitempty"`              // Print detailed debug information
	ListenAddr          string `json:"listen_addr,omitempty"`          // Address for the HTTP server, e.g. ":8080"
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxFileSizeMB < 0 {
		return fmt.Errorf("config error: 'max_file_size_mb' must be non-negative")
	}

	for _, ext := range c.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("config error: allowed extension %q must start with a dot", ext)
		}
	}

	if c.GazetteerPath != "" {
		if _, err := os.Stat(c.GazetteerPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: gazetteer file not found: %s", c.GazetteerPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.VectorizerPath == "" {
		result.VectorizerPath = defaults.VectorizerPath
	}
	if result.ClassifierPath == "" {
		result.ClassifierPath = defaults.ClassifierPath
	}
	if result.GazetteerPath == "" {
		result.GazetteerPath = defaults.GazetteerPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	// Int fields: use default if zero
	if result.MaxFileSizeMB == 0 {
		if defaults.MaxFileSizeMB > 0 {
			result.MaxFileSizeMB = defaults.MaxFileSizeMB
		} else {
			result.MaxFileSizeMB = 10
		}
	}

	if len(result.AllowedExtensions) == 0 {
		if len(defaults.AllowedExtensions) > 0 {
			result.AllowedExtensions = defaults.AllowedExtensions
		} else {
			result.AllowedExtensions = []string{".pdf", ".docx", ".txt"}
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ExtensionAllowed reports whether the given extension is in the allowed set.
// The comparison is case-insensitive.
func (c *Config) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.AllowedExtensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

// MaxFileSizeBytes returns the upload size limit in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}
