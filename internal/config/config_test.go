package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"pg:\n  host: localhost\n  port: 5432\n  user: u\n  password: p\n  dbname: archivo\nuploads_dir: ./uploads\nseed_path: ./data/seed.json\nsession_ttl_minutes: 720\nsubmit_per_minute: 3\nsubmit_burst: 3\n",
		"admin_key_hash: '$2a$10$abcdefghijklmnopqrstuv'\nsession_key: 'k'\n",
	)

	cfg := MustLoad(dir)

	assert.Equal(t, "localhost", cfg.Public.Pg.Host)
	assert.Equal(t, 5432, cfg.Public.Pg.Port)
	assert.Equal(t, "./uploads", cfg.Public.UploadsDir)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.AdminKeyHash())
	assert.Equal(t, "k", cfg.SessionKey())
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL())
	assert.Equal(t, int64(8<<20), cfg.MaxAttachmentBytes(), "default upload cap is 8 MiB")
}

func TestMustLoad_MissingFolder(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for missing config files, got none")
		}
	}()
	_ = MustLoad(filepath.Join(t.TempDir(), "nope"))
}

func TestMaxAttachmentBytes_Configured(t *testing.T) {
	dir := writeConfigs(t, "max_attachment_mib: 2\n", "session_key: 'k'\n")
	cfg := MustLoad(dir)
	assert.Equal(t, int64(2<<20), cfg.MaxAttachmentBytes())
}
