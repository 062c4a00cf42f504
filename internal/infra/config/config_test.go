package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackingMemory, cfg.StoreBacking)
	assert.True(t, cfg.SeedOnBoot)
}

func TestLoadRejectsUnknownBacking(t *testing.T) {
	t.Setenv("STORE_BACKING", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFirestoreRequiresProject(t *testing.T) {
	t.Setenv("STORE_BACKING", "firestore")
	t.Setenv("FIRESTORE_PROJECT_ID", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("FIRESTORE_PROJECT_ID", "demo-project")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackingFirestore, cfg.StoreBacking)
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: "https://a.example, https://b.example ,"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())

	assert.Empty(t, Config{}.Origins())
}
