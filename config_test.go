package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromBytes(t *testing.T) {
	input := []byte(`
{
	"comment_blocks": true,
	"comment_prefix_length": 2,
	"keywords": {
		"VERSION": "0.9.1"
	}
}
`)

	config, err := configFromBytes(input)
	assert.NoError(t, err)

	expected := configuration{
		CommentBlocks:       true,
		CommentPrefixLength: 2,
		Keywords: map[string]string{
			"VERSION": "0.9.1",
		},
	}

	assert.Equal(t, expected, config)
}

func TestConfigDefaults(t *testing.T) {
	config, err := configFromBytes([]byte(`{}`))
	assert.NoError(t, err)
	assert.False(t, config.CommentBlocks)
	assert.Equal(t, 3, config.CommentPrefixLength)
	assert.Empty(t, config.Keywords)
}

func TestConfigInvalidJSON(t *testing.T) {
	_, err := configFromBytes([]byte(`{`))
	assert.Error(t, err)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"comment_blocks": true}`), 0o644))

	config, err := loadConfig(path)
	assert.NoError(t, err)
	assert.True(t, config.CommentBlocks)
	assert.Equal(t, 3, config.CommentPrefixLength)
}
