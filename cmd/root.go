package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/Hxfrzc/galinfo/internal/config"
)

// CLI represents the complete command structure for the galinfo application
type CLI struct {
	Lookup LookupCmd `cmd:"" help:"Look up a game by its exact title"`
	Fuzzy  FuzzyCmd  `cmd:"" help:"Fuzzy-search a game by an approximate title"`
	Org    OrgCmd    `cmd:"" help:"Show a publisher organization by its catalog id"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("galinfo"),
		kong.Description("Look up galgame metadata and cover art from the ymgal.games catalog."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("galinfo.client_id", "ymgal")
	viper.SetDefault("galinfo.client_secret", "luna0327")
	viper.SetDefault("galinfo.similarity", 80)
	viper.SetDefault("galinfo.token_refresh", 60)
	viper.SetDefault("galinfo.temp_dir", "./tmp")
	viper.SetDefault("galinfo.strict_publisher", true)
	viper.SetDefault("galinfo.request_timeout", "30s")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("galinfo.client_id", "YMGAL_CLIENT_ID"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv("galinfo.client_secret", "YMGAL_CLIENT_SECRET"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
