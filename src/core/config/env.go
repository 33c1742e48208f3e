package config

import (
	"os"
	"strconv"
	"strings"
)

// LoadFromEnv overrides configuration fields from DSLC_-prefixed environment variables.
func (c *Config) LoadFromEnv() {
	if env := os.Getenv("DSLC_INSTANCE_NAME"); env != "" {
		c.InstanceName = env
	}
	if env := os.Getenv("DSLC_BASE_PATH"); env != "" {
		c.BasePath = env
	}

	if env := os.Getenv("DSLC_LOGGER_LEVEL"); env != "" {
		c.Logger.Level = strings.ToLower(env)
	}
	if env := os.Getenv("DSLC_LOGGER_FORMAT"); env != "" {
		c.Logger.Format = strings.ToLower(env)
	}
	if env := os.Getenv("DSLC_LOGGER_DIRECTORY"); env != "" {
		c.Logger.Directory = env
	}
	if env := os.Getenv("DSLC_LOGGER_MAX_SIZE"); env != "" {
		if size, err := strconv.ParseInt(env, 10, 64); err == nil {
			c.Logger.MaxSize = size
		}
	}
	if env := os.Getenv("DSLC_LOGGER_MAX_AGE"); env != "" {
		if age, err := strconv.Atoi(env); err == nil {
			c.Logger.MaxAge = age
		}
	}
	if env := os.Getenv("DSLC_LOGGER_MAX_BACKUPS"); env != "" {
		if backups, err := strconv.Atoi(env); err == nil {
			c.Logger.MaxBackups = backups
		}
	}
	if env := os.Getenv("DSLC_LOGGER_ENABLE_CONSOLE"); env != "" {
		c.Logger.EnableConsole = strings.ToLower(env) == "true"
	}

	if env := os.Getenv("DSLC_STRICT_MODE"); env != "" {
		c.Compiler.StrictMode = strings.ToLower(env) == "true"
	}
	if env := os.Getenv("DSLC_EMIT_ON_WARNINGS"); env != "" {
		c.Compiler.EmitOnWarnings = strings.ToLower(env) == "true"
	}
}
