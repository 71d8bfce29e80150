package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("CORS_ORIGINS", " https://a.test , ,https://b.test")
	t.Setenv("S3_REGION", "")
	t.Setenv("AWS_REGION", "ap-south-1")
	t.Setenv("MEDIA_URL", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("DB_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "ap-south-1", cfg.S3Region)
	assert.Equal(t, "http://localhost:9090/media", cfg.MediaURL)
}

func TestLoadValidates(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestOpenDBSQLite(t *testing.T) {
	db, err := OpenDB(&Config{DBDriver: "sqlite", DBPath: "file::memory:"})
	require.NoError(t, err)
	for _, table := range []string{"users", "meals", "meal_items", "food_images"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
