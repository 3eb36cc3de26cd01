package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psaxe.dev/internal/config"
	"psaxe.dev/internal/models"
)

func TestGenerateWritesArtifacts(t *testing.T) {
	out := t.TempDir()
	cfg := &config.Config{
		StaticDir:       t.TempDir(),
		ProfileImage:    "img/profile.jpg",
		RevealThreshold: 0.1,
	}

	require.NoError(t, generate(cfg, out))

	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `id="projects"`)

	data, err := os.ReadFile(filepath.Join(out, "content.json"))
	require.NoError(t, err)
	var content models.Content
	require.NoError(t, json.Unmarshal(data, &content))
	assert.Len(t, content.Projects, 3)
}
