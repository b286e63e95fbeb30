package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Snapshot SnapshotConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type SnapshotConfig struct {
	// Path of the whole-store snapshot file, loaded at startup when present
	// and written back on shutdown.
	Path string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SNAPSHOT_PATH", "store.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Snapshot: SnapshotConfig{
			Path: viper.GetString("SNAPSHOT_PATH"),
		},
	}
}
