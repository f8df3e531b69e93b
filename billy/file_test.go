package billy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WinCoder/ckcore/billy"
	"github.com/WinCoder/ckcore/file"
	"github.com/WinCoder/ckcore/filetest"
	"github.com/WinCoder/ckcore/fspath"
)

func TestConformanceMemory(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.MkdirAll("work", 0o755))

	filetest.TestSuite(t, filetest.Harness{
		New:  func(p fspath.Path) file.Base { return billy.New(fsys, p) },
		Root: fspath.New("work"),
	})
}

func TestConformanceOS(t *testing.T) {
	fsys := billy.NewOS(t.TempDir())

	filetest.TestSuite(t, filetest.Harness{
		New:  func(p fspath.Path) file.Base { return billy.New(fsys, p) },
		Root: fspath.New("."),
	})
}

// writeMem creates a file with content in fsys through the contract.
func writeMem(t *testing.T, f *billy.File, content []byte) {
	t.Helper()
	require.True(t, f.Open(file.ModeWrite))
	require.Equal(t, int64(len(content)), f.Write(content))
	require.True(t, f.Close())
}

func TestTimeSlotsCarryModTime(t *testing.T) {
	fsys := billy.NewMemory()
	f := billy.New(fsys, fspath.New("stamped.bin"))
	writeMem(t, f, []byte("stamp"))

	access, modify, created, ok := f.Time()
	require.True(t, ok)
	assert.Equal(t, modify, access)
	assert.Equal(t, modify, created)
}

func TestTimeMissing(t *testing.T) {
	f := billy.New(billy.NewMemory(), fspath.New("missing.bin"))
	_, _, _, ok := f.Time()
	assert.False(t, ok)
}

func TestAccess(t *testing.T) {
	fsys := billy.NewMemory()
	f := billy.New(fsys, fspath.New("perms.bin"))
	writeMem(t, f, []byte("p"))

	assert.True(t, f.Access(file.ModeRead))
	assert.True(t, f.Access(file.ModeWrite))
	assert.False(t, f.Access(file.Mode(42)))

	missing := billy.New(fsys, fspath.New("missing.bin"))
	assert.False(t, missing.Access(file.ModeRead))
}

func TestHidden(t *testing.T) {
	fsys := billy.NewMemory()
	assert.True(t, billy.New(fsys, fspath.New(".config")).Hidden())
	assert.False(t, billy.New(fsys, fspath.New("visible.bin")).Hidden())
}

func TestSizeMissing(t *testing.T) {
	f := billy.New(billy.NewMemory(), fspath.New("missing.bin"))
	assert.Equal(t, int64(-1), f.Size())
}

func TestOpenUnknownMode(t *testing.T) {
	f := billy.New(billy.NewMemory(), fspath.New("mode.bin"))
	assert.False(t, f.Open(file.Mode(42)))
	assert.False(t, f.Test())
}
