package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyDatabasePath    = "database.path"
	KeyServerPort      = "server.port"
	KeyImportUploadDir = "import.upload_dir"
	KeyLocations       = "locations"
)

type Config struct {
	Database  DatabaseConfig `mapstructure:"database" validate:"required"`
	Server    ServerConfig   `mapstructure:"server"`
	Import    ImportConfig   `mapstructure:"import"`
	Locations []string       `mapstructure:"locations"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gte=0,lte=65535"`
}

type ImportConfig struct {
	UploadDir string `mapstructure:"upload_dir"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# minimcu configuration
database:
  path: "./minimcu.db"

server:
  port: 8080

import:
  upload_dir: "./uploads"

# Known site names seeded into the locations registry on first use.
locations:
  - "Rig AB-100"
  - "Rig LTO-150"
  - "Rig Taylor C-200"
  - "HWU EHR#10"
  - "Kantor"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateLocations(cfg.Locations); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "./minimcu.db")
	v.SetDefault(KeyServerPort, 8080)
	v.SetDefault(KeyImportUploadDir, "./uploads")
	v.SetDefault(KeyLocations, []string{})
}

func validateLocations(locations []string) error {
	seen := make(map[string]struct{}, len(locations))
	for i, location := range locations {
		name := strings.TrimSpace(location)
		if name == "" {
			return fmt.Errorf("validation failed: locations[%d] must not be blank", i)
		}
		key := strings.ToLower(name)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("validation failed: duplicate location %q", name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
