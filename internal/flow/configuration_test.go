package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	require.Equal(t, 6, cfg.StepCount())
	ids := make([]string, 0, cfg.StepCount())
	for _, s := range cfg.Steps() {
		ids = append(ids, s.StepID())
	}
	assert.Equal(t, []string{
		"welcome",
		"permission-camera",
		"permission-location",
		"permission-notifications",
		"summary",
		"thankyou",
	}, ids)

	assert.True(t, cfg.ShowProgressIndicator)
	assert.True(t, cfg.MascotEnabled)
	assert.True(t, cfg.AnimationsEnabled)
	assert.False(t, cfg.AllowSkipping)
}

func TestMinimalConfiguration(t *testing.T) {
	cfg := MinimalConfiguration()

	require.Equal(t, 2, cfg.StepCount())
	_, isWelcome := cfg.Steps()[0].(WelcomeStep)
	_, isThankYou := cfg.Steps()[1].(ThankYouStep)
	assert.True(t, isWelcome)
	assert.True(t, isThankYou)
}

func TestConfiguration_StepsReturnsCopy(t *testing.T) {
	cfg := MinimalConfiguration()

	steps := cfg.Steps()
	steps[0] = ThankYouStep{}

	_, isWelcome := cfg.Steps()[0].(WelcomeStep)
	assert.True(t, isWelcome, "mutating the returned slice must not reach the configuration")
}

func TestConfiguration_StepAtBounds(t *testing.T) {
	cfg := MinimalConfiguration()

	_, ok := cfg.StepAt(-1)
	assert.False(t, ok)
	_, ok = cfg.StepAt(cfg.StepCount())
	assert.False(t, ok)
	s, ok := cfg.StepAt(0)
	require.True(t, ok)
	assert.Equal(t, "welcome", s.StepID())
}
