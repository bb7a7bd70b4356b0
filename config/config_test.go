package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig() {
	once = sync.Once{}
	singleton = nil
	initErr = nil
}

func TestNew_MalformedEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultEnvFile), []byte("BOBIS_SCOPE=\"unterminated\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		resetConfig()
	})

	resetConfig()

	// every call reports the load error, not only the first one
	for i := 0; i < 2; i++ {
		cfg, err := New()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	}
}
