package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/featuregrid/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "featuregrid.json"

	// DefaultPort is the default server port.
	DefaultPort = 4100

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultExportDir is the default static export directory.
	DefaultExportDir = "dist"

	// DefaultMaxSessions caps concurrent builder sessions.
	DefaultMaxSessions = 1000
)

// Config represents the complete featuregrid.json configuration.
type Config struct {
	// Server contains HTTP server and session settings.
	Server ServerConfig `json:"server,omitempty"`

	// Registry contains card registry settings.
	Registry RegistryConfig `json:"registry,omitempty"`

	// Catalog contains catalog file settings.
	Catalog CatalogConfig `json:"catalog,omitempty"`

	// Builder contains the initial state of new builder sessions.
	Builder BuilderConfig `json:"builder,omitempty"`

	// Export contains static export settings.
	Export ExportConfig `json:"export,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings. Durations are Go duration
// strings such as "30s".
type ServerConfig struct {
	Host            string `json:"host,omitempty"`
	Port            int    `json:"port,omitempty"`
	ReadTimeout     string `json:"readTimeout,omitempty"`
	WriteTimeout    string `json:"writeTimeout,omitempty"`
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`

	// SessionTTL is how long an idle session is kept.
	SessionTTL string `json:"sessionTTL,omitempty"`

	// SweepInterval is how often idle sessions are collected.
	SweepInterval string `json:"sweepInterval,omitempty"`

	// MaxSessions caps live sessions. Zero means DefaultMaxSessions.
	MaxSessions int `json:"maxSessions,omitempty"`

	// AllowedOrigins lists WebSocket origins besides the server's own.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// RegistryConfig contains card registry settings.
type RegistryConfig struct {
	// OnDuplicate is "overwrite" (last write wins) or "reject".
	OnDuplicate string `json:"onDuplicate,omitempty"`
}

// CatalogConfig contains catalog settings.
type CatalogConfig struct {
	// Path is an optional catalog.hcl replacing the embedded one.
	Path string `json:"path,omitempty"`
}

// BuilderConfig is the starting selection of a new session.
type BuilderConfig struct {
	Layout   string `json:"layout,omitempty"`
	Variant  string `json:"variant,omitempty"`
	Category string `json:"category,omitempty"`
	Card     string `json:"card,omitempty"`
	Theme    string `json:"theme,omitempty"`
	ViewMode string `json:"viewMode,omitempty"`
	Dark     bool   `json:"dark,omitempty"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	// Dir is the local output directory.
	Dir string `json:"dir,omitempty"`

	// Bucket, Prefix and Region select an S3 target instead of Dir.
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for featuregrid.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E104").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E104").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	// Server
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "10s"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Server.SessionTTL == "" {
		c.Server.SessionTTL = "30m"
	}
	if c.Server.SweepInterval == "" {
		c.Server.SweepInterval = "1m"
	}
	if c.Server.MaxSessions == 0 {
		c.Server.MaxSessions = DefaultMaxSessions
	}

	// Registry
	if c.Registry.OnDuplicate == "" {
		c.Registry.OnDuplicate = "overwrite"
	}

	// Builder
	if c.Builder.Layout == "" {
		c.Builder.Layout = "classic-grid"
		if c.Builder.Variant == "" {
			c.Builder.Variant = "3x2"
		}
	}
	if c.Builder.Category == "" && c.Builder.Card == "" {
		c.Builder.Category = "interactive"
		c.Builder.Card = "flip-card"
	}
	if c.Builder.Theme == "" {
		c.Builder.Theme = "blue"
	}
	if c.Builder.ViewMode == "" {
		c.Builder.ViewMode = "desktop"
	}

	// Export
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E103").
			WithDetail("server.port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if c.Server.MaxSessions < 0 {
		return errors.New("E103").
			WithDetail("server.maxSessions must not be negative")
	}

	durations := []struct{ key, value string }{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
		{"server.sessionTTL", c.Server.SessionTTL},
		{"server.sweepInterval", c.Server.SweepInterval},
	}
	for _, d := range durations {
		if parsed, err := time.ParseDuration(d.value); err != nil || parsed <= 0 {
			return errors.New("E103").
				WithDetail(d.key + " must be a positive duration, got " + strconv.Quote(d.value)).
				WithExample(`"sessionTTL": "30m"`)
		}
	}

	switch c.Registry.OnDuplicate {
	case "overwrite", "reject":
	default:
		return errors.New("E103").
			WithDetail("registry.onDuplicate must be \"overwrite\" or \"reject\", got " + strconv.Quote(c.Registry.OnDuplicate))
	}

	switch c.Builder.ViewMode {
	case "mobile", "tablet", "desktop":
	default:
		return errors.New("E103").
			WithDetail("builder.viewMode must be mobile, tablet or desktop, got " + strconv.Quote(c.Builder.ViewMode))
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return errors.New("E103").
			WithDetail("log.level must be debug, info, warn or error, got " + strconv.Quote(c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E103").
			WithDetail("log.format must be text or json, got " + strconv.Quote(c.Log.Format))
	}

	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the server's base URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ReadTimeout returns server.readTimeout as a duration.
func (c *Config) ReadTimeout() time.Duration {
	return duration(c.Server.ReadTimeout, 10*time.Second)
}

// WriteTimeout returns server.writeTimeout as a duration.
func (c *Config) WriteTimeout() time.Duration {
	return duration(c.Server.WriteTimeout, 10*time.Second)
}

// ShutdownTimeout returns server.shutdownTimeout as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return duration(c.Server.ShutdownTimeout, 10*time.Second)
}

// SessionTTL returns server.sessionTTL as a duration.
func (c *Config) SessionTTL() time.Duration {
	return duration(c.Server.SessionTTL, 30*time.Minute)
}

// SweepInterval returns server.sweepInterval as a duration.
func (c *Config) SweepInterval() time.Duration {
	return duration(c.Server.SweepInterval, time.Minute)
}

// ExportPath returns the export directory, relative to the config file.
func (c *Config) ExportPath() string {
	if filepath.IsAbs(c.Export.Dir) {
		return c.Export.Dir
	}
	return filepath.Join(c.Dir(), c.Export.Dir)
}

// CatalogPath returns the catalog override path, relative to the config
// file, or "" when the embedded catalog is used.
func (c *Config) CatalogPath() string {
	if c.Catalog.Path == "" || filepath.IsAbs(c.Catalog.Path) {
		return c.Catalog.Path
	}
	return filepath.Join(c.Dir(), c.Catalog.Path)
}

// LogLevel returns log.level as an slog.Level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing featuregrid.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent holding featuregrid.json.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// LoadOrDefault loads path if set, else searches from the working
// directory. A missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadFile(path)
	} else {
		cfg, err = LoadFromWorkingDir()
	}
	if err != nil {
		if path == "" && errors.Code(err) == "E101" {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
