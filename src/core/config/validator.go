package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate validates the configuration using struct tags, then applies
// the few cross-field rules tags can't express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if c.BasePath == "" {
		return fmt.Errorf("base_path cannot be empty")
	}
	if _, err := os.Stat(c.BasePath); os.IsNotExist(err) {
		if err := os.MkdirAll(c.BasePath, 0o755); err != nil {
			return fmt.Errorf("cannot create base path %s: %w", c.BasePath, err)
		}
	}

	if c.Layout.Dimensions.EventWidth <= 0 || c.Layout.Dimensions.TaskWidth <= 0 || c.Layout.Dimensions.GatewayWidth <= 0 {
		return fmt.Errorf("layout dimensions must be positive")
	}

	return nil
}
