package db

import (
	"path/filepath"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLiteTempFile(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db", "test.db")

	gdb, err := InitDB(config.DatabaseConfig{Type: "sqlite", Filename: dbFile})
	require.NoError(t, err)
	t.Cleanup(func() { Close(gdb) })

	for _, m := range model.All() {
		assert.True(t, gdb.Migrator().HasTable(m), "missing table for %T", m)
	}
	assert.True(t, gdb.Migrator().HasTable("image_m2m_tag"))
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Type: "oracle"})
	assert.Error(t, err)
}

func TestNewRedis_Disabled(t *testing.T) {
	assert.Nil(t, NewRedis(config.RedisConfig{Enabled: false}))
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "photoshare:rl:1.2.3.4", RedisKey("", "rl", "1.2.3.4"))
	assert.Equal(t, "app", RedisKey("app"))
}
