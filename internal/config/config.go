package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/slider/internal/errors"
	"github.com/vango-dev/slider/pkg/slider"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "slider.json"

	// DefaultAddr is the default listen address of slider serve.
	DefaultAddr = ":3000"

	// DefaultTitle is the default page title.
	DefaultTitle = "Slider"

	// DefaultExportKey is the object key used when none is given.
	DefaultExportKey = "slider.html"
)

// Config represents the complete slider.json configuration.
type Config struct {
	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server"`

	// Slider is the initial state of every new widget.
	Slider SliderConfig `json:"slider"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":3000").
	Addr string `json:"addr,omitempty"`

	// Title is the page title of GET /.
	Title string `json:"title,omitempty"`

	// ReadTimeout, WriteTimeout and ShutdownTimeout are durations (e.g., "10s").
	ReadTimeout     string `json:"readTimeout,omitempty"`
	WriteTimeout    string `json:"writeTimeout,omitempty"`
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`

	// AllowedOrigins lists the origins allowed to open /ws. Empty means same
	// origin only; "*" allows any origin.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// SliderConfig is the initial widget state.
type SliderConfig struct {
	// Value is in the accessible range [Minimum, Maximum].
	Value       float64 `json:"value"`
	Minimum     float64 `json:"minimum"`
	Maximum     float64 `json:"maximum"`
	Step        float64 `json:"step"`
	Orientation string  `json:"orientation,omitempty"`
	MarkSteps   bool    `json:"markSteps,omitempty"`
	ControlSize string  `json:"controlSize,omitempty"`
}

// ExportConfig contains S3 export settings.
type ExportConfig struct {
	// Bucket is the target bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to object keys.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region (default: $AWS_REGION).
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle forces path-style addressing.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			Title:           DefaultTitle,
			ReadTimeout:     "10s",
			WriteTimeout:    "10s",
			ShutdownTimeout: "5s",
		},
		Slider: SliderConfig{
			Minimum:     0,
			Maximum:     100,
			Step:        1,
			Orientation: string(slider.Horizontal),
			ControlSize: slider.DefaultControlSize,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for slider.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, syntaxError(path, data, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// syntaxError points a JSON decoding error at its line and column.
func syntaxError(path string, data []byte, err error) error {
	se := errors.New(errors.CodeConfigSyntax).
		WithSuggestion("Check that " + ConfigFileName + " is valid JSON").
		Wrap(err)

	var offset int64 = -1
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syn):
		offset = syn.Offset
	case stderrors.As(err, &typ):
		offset = typ.Offset
	}
	if offset < 0 {
		return se
	}
	line, col := position(data, offset)
	return se.WithSource(path, data, line, col)
}

// position converts a byte offset to a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	col = int(offset) - (bytes.LastIndexByte(prefix, '\n') + 1)
	if col < 1 {
		col = 1
	}
	return line, col
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
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
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
	d := New()

	// Server
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.Title == "" {
		c.Server.Title = d.Server.Title
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = d.Server.WriteTimeout
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}

	// Slider
	if c.Slider.Orientation == "" {
		c.Slider.Orientation = d.Slider.Orientation
	}
	if c.Slider.ControlSize == "" {
		c.Slider.ControlSize = d.Slider.ControlSize
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	invalid := func(detail string) error {
		return errors.New(errors.CodeConfigInvalid).WithDetail(detail)
	}

	if c.Server.Addr == "" {
		return invalid("server.addr must not be empty")
	}
	for name, v := range map[string]string{
		"server.readTimeout":     c.Server.ReadTimeout,
		"server.writeTimeout":    c.Server.WriteTimeout,
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
	} {
		if _, err := parseDuration(v); err != nil {
			return invalid(name + ": " + err.Error())
		}
	}

	s := c.Slider
	for name, v := range map[string]float64{
		"slider.value":   s.Value,
		"slider.minimum": s.Minimum,
		"slider.maximum": s.Maximum,
		"slider.step":    s.Step,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(name + " must be a finite number")
		}
	}
	if s.Maximum < s.Minimum {
		return invalid("slider.maximum must not be less than slider.minimum")
	}
	if s.Step < 0 {
		return invalid("slider.step must not be negative")
	}
	if _, err := slider.ParseOrientation(s.Orientation); err != nil {
		return invalid("slider.orientation must be \"horizontal\" or \"vertical\"")
	}
	return nil
}

// State returns the initial widget state described by the slider section.
func (c *Config) State() (slider.State, error) {
	o, err := slider.ParseOrientation(c.Slider.Orientation)
	if err != nil {
		return slider.State{}, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}
	s := slider.DefaultState()
	s.Minimum = c.Slider.Minimum
	s.Maximum = c.Slider.Maximum
	s.Step = c.Slider.Step
	s.Orientation = o
	s.MarkSteps = c.Slider.MarkSteps
	if c.Slider.ControlSize != "" {
		s.ControlSize = c.Slider.ControlSize
	}
	s.SetValue(c.Slider.Value)
	s.Normalize()
	return s, nil
}

// Timeouts returns the parsed server timeouts. Unparseable values fall back
// to the defaults; Validate reports them.
func (c *Config) Timeouts() (read, write, shutdown time.Duration) {
	d := New().Server
	return durationOr(c.Server.ReadTimeout, d.ReadTimeout),
		durationOr(c.Server.WriteTimeout, d.WriteTimeout),
		durationOr(c.Server.ShutdownTimeout, d.ShutdownTimeout)
}

// ExportKey joins the export prefix and name into an object key.
func (c *Config) ExportKey(name string) string {
	if name == "" {
		name = DefaultExportKey
	}
	if c.Export.Prefix == "" {
		return name
	}
	p := c.Export.Prefix
	if p[len(p)-1] != '/' {
		p += "/"
	}
	return p + name
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, stderrors.New("must be positive, got " + strconv.Quote(s))
	}
	return d, nil
}

func durationOr(s, fallback string) time.Duration {
	if d, err := parseDuration(s); err == nil {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find slider.json.
// Returns the directory containing it, or an error if not found.
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
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads slider.json from the working directory or a
// parent. When none exists it returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		if errors.HasCode(err, errors.CodeConfigNotFound) {
			return New(), nil
		}
		return nil, err
	}

	return Load(root)
}
