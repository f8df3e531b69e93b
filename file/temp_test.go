package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WinCoder/ckcore/file"
	"github.com/WinCoder/ckcore/fspath"
)

func TestTemp(t *testing.T) {
	f := file.Temp()

	require.False(t, f.Path().Empty())
	assert.Equal(t, filepath.Clean(os.TempDir()), f.Path().Dir().Name())

	// Only a name is reserved; nothing is created or opened.
	assert.False(t, f.Test())
	assert.False(t, f.Exist())
}

func TestTempIn(t *testing.T) {
	dir := fspath.New(t.TempDir())
	f := file.TempIn(dir)

	require.False(t, f.Path().Empty())
	assert.Equal(t, dir.Name(), f.Path().Dir().Name())
	assert.False(t, f.Exist())

	// The candidate name is usable for a real file.
	require.True(t, f.Open(file.ModeWrite))
	assert.Equal(t, int64(4), f.Write([]byte("temp")))
	require.True(t, f.Close())
	assert.True(t, f.Remove())
}

func TestTempInUnique(t *testing.T) {
	dir := fspath.New(t.TempDir())
	a := file.TempIn(dir)
	b := file.TempIn(dir)
	assert.NotEqual(t, a.Name(), b.Name())
}
