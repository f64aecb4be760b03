package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// ClientID is the OAuth client id for the ymgal.games open API
	ClientID string
	// ClientSecret is the OAuth client secret for the ymgal.games open API
	ClientSecret string
	// Similarity is the match threshold passed to accurate searches
	Similarity int
	// TokenRefresh is the interval between background token refreshes
	TokenRefresh time.Duration
	// TempDir is the work directory for transient cover image files
	TempDir string
	// StrictPublisher aborts a lookup when the publisher lookup fails;
	// when false the record degrades to an unknown publisher instead
	StrictPublisher bool
	// RequestTimeout bounds a single lookup pipeline end to end
	RequestTimeout time.Duration
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("galinfo.client_id", "ymgal")
	viper.SetDefault("galinfo.client_secret", "luna0327")
	viper.SetDefault("galinfo.similarity", 80)
	viper.SetDefault("galinfo.token_refresh", 60) // minutes
	viper.SetDefault("galinfo.temp_dir", "./tmp")
	viper.SetDefault("galinfo.strict_publisher", true)
	viper.SetDefault("galinfo.request_timeout", "30s")

	// Get values from viper
	ClientID = viper.GetString("galinfo.client_id")
	ClientSecret = viper.GetString("galinfo.client_secret")
	Similarity = viper.GetInt("galinfo.similarity")
	TokenRefresh = time.Duration(viper.GetInt("galinfo.token_refresh")) * time.Minute
	TempDir = viper.GetString("galinfo.temp_dir")
	StrictPublisher = viper.GetBool("galinfo.strict_publisher")
	RequestTimeout = viper.GetDuration("galinfo.request_timeout")
}
