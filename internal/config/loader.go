package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	// Secrets usually arrive via environment only; bind them explicitly so
	// Unmarshal sees them even when the keys are absent from the file.
	for _, key := range []string{
		"storage.postgres.user",
		"storage.postgres.password",
		"storage.postgres.db",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.setDefaults()
	return &config, nil
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "product-catalog-service"
	}
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "memory"
	}
}
