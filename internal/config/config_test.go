package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults_SensibleValues(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 4, cfg.TabWidth)
	assert.Equal(t, ".!?", cfg.SentenceTerminators)
	assert.True(t, cfg.AutoReload)
	assert.NotEmpty(t, cfg.Theme.Selection)
	assert.NotEmpty(t, cfg.Theme.Subtle)
	assert.NotEmpty(t, cfg.Theme.Error)
}
