package scaffold

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/ut/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		setupFunc func(t *testing.T, path string)
		wantErr   error
	}{
		{
			name:      "fresh initialization creates the directory",
			setupFunc: func(t *testing.T, path string) {},
		},
		{
			name: "existing file without force",
			setupFunc: func(t *testing.T, path string) {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte("offset: utc\n"), 0644))
			},
			wantErr: ErrExists,
		},
		{
			name:  "force replaces an existing file",
			force: true,
			setupFunc: func(t *testing.T, path string) {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte("precision: [broken\n"), 0644))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ut", "config.yml")
			tt.setupFunc(t, path)

			err := Initialize(path, tt.force)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)

			cfg, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, "local", cfg.Offset)
			assert.Equal(t, "second", cfg.Precision)
			assert.Equal(t, "warn", cfg.LogLevel)
		})
	}
}

func TestInitialize_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "ut")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	err := Initialize(filepath.Join(blocker, "config.yml"), false)
	require.Error(t, err)
}

func TestCheckExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	assert.NoError(t, CheckExisting(path))

	require.NoError(t, os.WriteFile(path, nil, 0644))
	err := CheckExisting(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))
	assert.Contains(t, err.Error(), path)
}

func TestPrintSuccess(t *testing.T) {
	var buf bytes.Buffer
	PrintSuccess(&buf, "/tmp/ut/config.yml")
	assert.Contains(t, buf.String(), "Created /tmp/ut/config.yml")
	assert.Contains(t, buf.String(), "Next steps:")
}
