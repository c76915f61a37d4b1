package conventions

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFile is the tool config searched for in the working directory.
const ConfigFile = "wren.yml"

// Config holds tool-wide defaults and any custom conventions declared in
// wren.yml:
//
//	convert:
//	  from: CamelCase
//	  to: SnakeCase
//	conventions:
//	  - name: DotCase
//	    separator: "."
type Config struct {
	From        string
	To          string
	Conventions []Definition
}

// DefaultConfig returns the config used when no wren.yml exists: no
// defaults, no custom conventions.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads wren.yml from the working directory. A missing file is not an
// error; wren works fine without one.
func Load() (*Config, error) {
	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigName("wren")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Let WREN_CONVERT_FROM etc. override the file.
	v.AutomaticEnv()
	v.SetEnvPrefix("WREN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	cfg := &Config{
		From: v.GetString("convert.from"),
		To:   v.GetString("convert.to"),
	}
	if err := v.UnmarshalKey("conventions", &cfg.Conventions); err != nil {
		return nil, fmt.Errorf("invalid conventions in %s: %w", ConfigFile, err)
	}
	return cfg, nil
}
