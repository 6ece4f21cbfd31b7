package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"overlog/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Compose struct {
		Bin     string `yaml:"bin"`
		File    string `yaml:"file"`
		Project string `yaml:"project"`
	} `yaml:"compose"`
	Container struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"container"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Logs struct {
		Buffer int    `yaml:"buffer"`
		Tail   string `yaml:"tail"`
	} `yaml:"logs"`
	Services []string `yaml:"-"`

	major int
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Compose.Bin = DefaultComposeBin
	cfg.Compose.Project = DefaultProject

	cfg.Container.Name = DefaultContainer
	cfg.Container.Version = DefaultImageVersion

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Logs.Buffer = SinkBufferSize
	cfg.Logs.Tail = DefaultTail

	return cfg
}

// Load loads the configuration from the rc file, overlog.yaml, and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(RCFile); err == nil {
		if err := godotenv.Load(RCFile); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	data, err := os.ReadFile(ConfigFile)

	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}

		services, err := parseServiceOrder(data)
		if err != nil {
			return nil, errors.ErrFailedToParseConfig
		}

		cfg.Services = services
	case os.IsNotExist(err):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every config key with viper so environment overrides resolve
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("compose.bin", cfg.Compose.Bin)
	v.SetDefault("compose.file", cfg.Compose.File)
	v.SetDefault("compose.project", cfg.Compose.Project)
	v.SetDefault("container.name", cfg.Container.Name)
	v.SetDefault("container.version", cfg.Container.Version)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logs.buffer", cfg.Logs.Buffer)
	v.SetDefault("logs.tail", cfg.Logs.Tail)
}

// parseServiceOrder extracts the ordered services list from overlog.yaml, if present
func parseServiceOrder(data []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, nil
	}

	for i := 0; i < len(doc.Content); i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		if key.Value != "services" || value.Kind != yaml.SequenceNode {
			continue
		}

		services := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			services = append(services, strings.TrimSpace(node.Value))
		}

		return services, nil
	}

	return nil, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Logs.Buffer <= 0 {
		return errors.ErrInvalidLogsBuffer
	}

	if err := ValidateTail(c.Logs.Tail); err != nil {
		return err
	}

	known := make(map[string]bool, len(KnownServices))
	for _, name := range KnownServices {
		known[name] = true
	}

	for _, name := range c.Services {
		if !known[name] {
			return fmt.Errorf("%w: '%s'", errors.ErrUnknownService, name)
		}
	}

	major, err := parseMajor(c.Container.Version)
	if err != nil {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidImageVersion, c.Container.Version)
	}

	c.major = major

	return nil
}

// ValidateTail checks that a tail count is a positive integer or "all"
func ValidateTail(value string) error {
	if value == TailAll {
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidTailCount, value)
	}

	return nil
}

// parseMajor extracts the major component of an image version string
func parseMajor(version string) (int, error) {
	head, _, _ := strings.Cut(strings.TrimPrefix(version, "v"), ".")

	major, err := strconv.Atoi(head)
	if err != nil || major <= 0 {
		return 0, errors.ErrInvalidImageVersion
	}

	return major, nil
}

// MajorVersion returns the major component of the deployed image version
func (c *Config) MajorVersion() int {
	return c.major
}

// LogBase returns the in-container log directory for the deployed image version
func (c *Config) LogBase() string {
	if c.major >= ModernPathMajor {
		return LogBaseModern
	}

	return LogBaseLegacy
}

// ComposeArgs returns the leading argv for invoking the compose binary
func (c *Config) ComposeArgs() []string {
	args := strings.Fields(c.Compose.Bin)

	if c.Compose.File != "" {
		args = append(args, "-f", c.Compose.File)
	}

	if c.Compose.Project != "" {
		args = append(args, "-p", c.Compose.Project)
	}

	return args
}

// ServiceSet returns the ordered service set for this deployment
func (c *Config) ServiceSet() []string {
	source := KnownServices
	if len(c.Services) > 0 {
		source = c.Services
	}

	services := make([]string, len(source))
	copy(services, source)

	return services
}
