package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/authorscout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("a", "b.json")
	assert.Equal(t, filepath.Join(env.RootDir(), "a", "b.json"), path)
	assert.True(t, env.isWithinSandbox(path))
	assert.False(t, env.isWithinSandbox(filepath.Join(env.RootDir(), "..", "escape")))
}

func TestTestEnv_WriteReadFile(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("nested/dir/file.txt", "hello")
	assert.True(t, env.FileExists("nested/dir/file.txt"))
	assert.Equal(t, "hello", env.ReadFileString("nested/dir/file.txt"))
	assert.Equal(t, []string{"file.txt"}, env.ListFiles("nested/dir"))
}

func TestTestEnv_Chdir(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFileString("work/.keep", "")

	env.Chdir("work")

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolvedWant, err := filepath.EvalSymlinks(env.Path("work"))
	require.NoError(t, err)
	resolvedGot, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, resolvedWant, resolvedGot)
}

func TestSetTestConfigRestores(t *testing.T) {
	before := SaveConfigState()

	t.Run("inner", func(t *testing.T) {
		env := NewTestEnv(t)
		SetTestConfig(t, env, "http://127.0.0.1:1")

		assert.Equal(t, "http://127.0.0.1:1", config.OpenLibraryBaseURL)
		assert.False(t, config.CacheEnabled)
		assert.Equal(t, config.HistoryBackendFile, config.HistoryBackend)
		assert.Equal(t, env.Path("history.json"), config.HistoryFile)
	})

	assert.Equal(t, before, SaveConfigState())
}
