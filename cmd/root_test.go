package cmd

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/spf13/viper"

	"github.com/Hxfrzc/galinfo/internal/config"
	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	initConfig()

	assert.Equal(t, "ymgal", config.ClientID)
	assert.Equal(t, "luna0327", config.ClientSecret)
	assert.Equal(t, 80, config.Similarity)
	assert.Equal(t, time.Hour, config.TokenRefresh)
	assert.Equal(t, "./tmp", config.TempDir)
	assert.True(t, config.StrictPublisher)
	assert.Equal(t, 30*time.Second, config.RequestTimeout)
}

func TestRenderExpected(t *testing.T) {
	// User-recoverable kinds are printed as guidance and swallowed.
	assert.NoError(t, renderExpected(apperrors.NewGameNotFoundError("x")))
	assert.NoError(t, renderExpected(apperrors.NewNoCandidatesError("x")))

	// Everything else propagates to the generic error exit.
	remote := apperrors.NewRemoteError("search-game", 500)
	assert.Error(t, renderExpected(remote))
}
