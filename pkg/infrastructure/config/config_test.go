package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INVENTORY_DSN", "user:pass@tcp(db:3306)/otherdb?parseTime=true")
	t.Setenv("INVENTORY_LOG_FILE", "/tmp/inv.log")

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "user:pass@tcp(db:3306)/otherdb?parseTime=true", c.DSN)
	assert.Equal(t, "/tmp/inv.log", c.LogFile)
}
