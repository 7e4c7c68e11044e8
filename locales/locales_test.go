package locales

import (
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUse(t *testing.T) {
	assert.Contains(t, Languages(), "en")

	require.NoError(t, Use("en"))
	assert.Equal(t, "Monster", gotext.Get("SPAWN_MONSTER"))
	assert.Equal(t, "Legend", gotext.Get("LEGEND_TITLE"))

	assert.Error(t, Use("xx"))
}
