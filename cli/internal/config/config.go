// Package config loads CLI configuration from config files, .env files
// and the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem used for config and .env probing; swappable in
// tests.
var AppFs = afero.NewOsFs()

// Config holds the resolved application configuration. A non-empty
// DatabaseURL selects the networked engine; otherwise the embedded engine
// opens DatabasePath.
type Config struct {
	DatabaseURL  string
	DatabasePath string
	Debug        bool
}

// Load resolves configuration from, in increasing priority: config file
// (.coursebay.yaml in the working directory, home, or
// ~/.config/coursebay), .env and .env.local files, then the process
// environment.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".coursebay")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "coursebay"))

	viper.SetEnvPrefix("COURSEBAY")
	viper.AutomaticEnv()

	viper.SetDefault("database_path", "coursebay.db")
	viper.SetDefault("debug", false)

	// Missing config file is fine; defaults and environment cover it.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabasePath: viper.GetString("database_path"),
		Debug:        viper.GetBool("debug"),
	}, nil
}

// Save writes the configuration to ~/.config/coursebay/.coursebay.yaml.
// DatabaseURL is not persisted; it stays in the environment.
func Save(cfg *Config) error {
	viper.Set("database_path", cfg.DatabasePath)
	viper.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".config", "coursebay")
	if err := AppFs.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return viper.WriteConfigAs(filepath.Join(configDir, ".coursebay.yaml"))
}
