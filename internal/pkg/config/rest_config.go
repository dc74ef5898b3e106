package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the configuration for the REST API binary.
type RestConfig struct {
	Port   string         `mapstructure:"port" validate:"required,numeric"`
	Logger LoggerSettings `mapstructure:"logger"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	return c.Logger.Validate()
}

// InitializeRestConfig reads and validates the REST API configuration from a YAML file.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var restConfig RestConfig
	if err := v.Unmarshal(&restConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := restConfig.Validate(); err != nil {
		return nil, err
	}

	return &restConfig, nil
}
