// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/replication-scout/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   map[string]string
		errMsg string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "crossref-mailto", "  scout@example.edu  \n")
				writeFile(t, dir, "zenodo-api-token", "zk_xyz789")
				writeFile(t, dir, "dataverse-api-token", "dv_abc123\n")
				return dir
			},
			want: map[string]string{
				"crossref-mailto":     "scout@example.edu",
				"zenodo-api-token":    "zk_xyz789",
				"dataverse-api-token": "dv_abc123",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "zenodo-api-token", "valid-token")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				"zenodo-api-token": "valid-token",
			},
		},
		{
			name: "skips dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "crossref-mailto", "scout@example.edu")
				return dir
			},
			want: map[string]string{
				"crossref-mailto": "scout@example.edu",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "dataverse-api-token", "dv_123")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"dataverse-api-token": "dv_123",
			},
		},
		{
			name: "returns empty map for empty directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	// Create a file then remove read permission.
	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)
	// The good file should still be returned; the bad file is skipped with a warning.
	assert.Equal(t, "value123", got["good-key"])
	_, hasBad := got["bad-key"]
	assert.False(t, hasBad, "unreadable file should not appear in result")
}

func TestApply(t *testing.T) {
	secrets := map[string]string{
		KeyCrossRefMailto:    "scout@example.edu",
		KeyZenodoAPIToken:    "zk_from_file",
		KeyDataverseAPIToken: "dv_from_file",
	}

	t.Run("fills empty fields", func(t *testing.T) {
		var cfg types.PipelineConfig
		Apply(&cfg, secrets)
		assert.Equal(t, "scout@example.edu", cfg.Harvest.Mailto)
		assert.Equal(t, "zk_from_file", cfg.Resolver.ZenodoAPIToken)
		assert.Equal(t, "dv_from_file", cfg.Resolver.DataverseAPIToken)
	})

	t.Run("explicit config wins", func(t *testing.T) {
		var cfg types.PipelineConfig
		cfg.Resolver.ZenodoAPIToken = "zk_from_flag"
		Apply(&cfg, secrets)
		assert.Equal(t, "zk_from_flag", cfg.Resolver.ZenodoAPIToken)
		assert.Equal(t, "dv_from_file", cfg.Resolver.DataverseAPIToken)
	})

	t.Run("missing secrets leave config untouched", func(t *testing.T) {
		var cfg types.PipelineConfig
		Apply(&cfg, map[string]string{})
		assert.Empty(t, cfg.Harvest.Mailto)
		assert.Empty(t, cfg.Resolver.ZenodoAPIToken)
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
