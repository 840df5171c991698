package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidKey(t *testing.T) {
	assert.True(t, IsValidKey(KeySupplierInfo))
	assert.True(t, IsValidKey(KeyRecipientInfo))
	assert.True(t, IsValidKey(KeyDefaultArticles))
	assert.False(t, IsValidKey(""))
	assert.False(t, IsValidKey("jwt_secret"))
}

func TestDefaultSettings(t *testing.T) {
	defaults := DefaultSettings()
	assert.Equal(t, "Ralf Hitscher", defaults.SupplierInfo.Name)
	assert.Equal(t, "DE-HH1-110071", defaults.SupplierInfo.Pflanzenpass)
	assert.Equal(t, "Loest Blumengrosshandel e.K.", defaults.RecipientInfo.Company)
	assert.NotNil(t, defaults.DefaultArticles)
	assert.Empty(t, defaults.DefaultArticles)
}

func TestSettingsJSONShape(t *testing.T) {
	// Stored documents use snake_case keys compatible with the legacy data.
	raw, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "supplier_info")
	assert.Contains(t, decoded, "recipient_info")
	assert.Contains(t, decoded, "default_articles")
}
