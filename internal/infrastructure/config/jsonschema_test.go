package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON_UsesTOMLKeys(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Bezel Configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "window")
	assert.Contains(t, props, "tabs")
	assert.Contains(t, props, "sidebar")

	tabs, ok := props["tabs"].(map[string]any)
	require.True(t, ok)
	tabProps, ok := tabs["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, tabProps, "default_url")
	assert.Contains(t, tabProps, "title_max_length")
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSchemaFile(dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
