package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/kcwebb/taskline/internal/core/styles"
	"github.com/rs/zerolog"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("log_level", c.LogLevel, logLevelParses),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func logLevelParses(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	return nil
}
