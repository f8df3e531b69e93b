package file_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WinCoder/ckcore/file"
	"github.com/WinCoder/ckcore/filetest"
	"github.com/WinCoder/ckcore/fspath"
)

func TestConformance(t *testing.T) {
	filetest.TestSuite(t, filetest.Harness{
		New:  func(p fspath.Path) file.Base { return file.New(p) },
		Root: fspath.New(t.TempDir()),
	})
}

// seed creates a file with the given content and returns its path.
func seed(t *testing.T, name string, content []byte) fspath.Path {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, content, 0o644))
	return fspath.New(p)
}

func TestStaticInstanceAgreement(t *testing.T) {
	p := seed(t, "agree.bin", []byte("agreement payload"))
	missing := fspath.New(filepath.Join(t.TempDir(), "missing.bin"))

	f := file.New(p)
	assert.Equal(t, file.Exist(p), f.Exist())
	assert.Equal(t, file.Size(p), f.Size())
	assert.Equal(t, file.Access(p, file.ModeRead), f.Access(file.ModeRead))
	assert.Equal(t, file.Access(p, file.ModeWrite), f.Access(file.ModeWrite))
	assert.Equal(t, file.Hidden(p), f.Hidden())

	_, _, _, staticOK := file.Time(p)
	_, _, _, instanceOK := f.Time()
	assert.Equal(t, staticOK, instanceOK)

	g := file.New(missing)
	assert.Equal(t, file.Exist(missing), g.Exist())
	assert.Equal(t, file.Size(missing), g.Size())
	assert.Equal(t, int64(-1), g.Size())
}

func TestName(t *testing.T) {
	p := fspath.New(filepath.Join("some", "dir", "name.bin"))
	assert.Equal(t, p.Name(), file.New(p).Name())
}

func TestOpenMissingForRead(t *testing.T) {
	f := file.New(fspath.New(filepath.Join(t.TempDir(), "absent.bin")))
	assert.False(t, f.Open(file.ModeRead))
	assert.False(t, f.Test())
}

func TestOpenUnknownMode(t *testing.T) {
	p := seed(t, "mode.bin", []byte("x"))
	f := file.New(p)
	assert.False(t, f.Open(file.Mode(42)))
	assert.False(t, f.Test())
}

func TestOpenWriteCreates(t *testing.T) {
	p := fspath.New(filepath.Join(t.TempDir(), "created.bin"))
	f := file.New(p)

	require.True(t, f.Open(file.ModeWrite))
	assert.True(t, f.Exist())
	require.True(t, f.Close())

	info, err := os.Stat(p.Name())
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestRemoveMissing(t *testing.T) {
	missing := fspath.New(filepath.Join(t.TempDir(), "missing.bin"))
	assert.False(t, file.Remove(missing))
	assert.False(t, file.New(missing).Remove())
}

func TestStaticRename(t *testing.T) {
	p1 := seed(t, "old.bin", []byte("content"))
	p2 := fspath.New(filepath.Join(filepath.Dir(p1.Name()), "new.bin"))

	require.True(t, file.Rename(p1, p2))
	assert.False(t, file.Exist(p1))
	assert.True(t, file.Exist(p2))

	// The target now exists, so renaming anything onto it must fail.
	p3 := seed(t, "other.bin", []byte("other"))
	assert.False(t, file.Rename(p3, p2))
	assert.True(t, file.Exist(p3))
	assert.Equal(t, int64(7), file.Size(p2))
}

func TestHidden(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hidden is an attribute bit on Windows, not a name convention")
	}

	hidden := seed(t, ".secret", []byte("h"))
	plain := seed(t, "visible.bin", []byte("v"))

	assert.True(t, file.Hidden(hidden))
	assert.False(t, file.Hidden(plain))
	assert.True(t, file.New(hidden).Hidden())
	assert.False(t, file.New(plain).Hidden())
}

func TestTime(t *testing.T) {
	p := seed(t, "timed.bin", []byte("time payload"))

	info, err := os.Stat(p.Name())
	require.NoError(t, err)

	_, modify, _, ok := file.Time(p)
	require.True(t, ok)
	assert.WithinDuration(t, info.ModTime(), modify, 0)

	f := file.New(p)
	require.True(t, f.Open(file.ModeRead))
	defer f.Close()

	_, modifyOpen, _, ok := f.Time()
	require.True(t, ok)
	assert.WithinDuration(t, modify, modifyOpen, 0)
}

func TestTimeMissing(t *testing.T) {
	missing := fspath.New(filepath.Join(t.TempDir(), "missing.bin"))
	_, _, _, ok := file.Time(missing)
	assert.False(t, ok)
}

func TestAccess(t *testing.T) {
	p := seed(t, "perms.bin", []byte("p"))

	assert.True(t, file.Access(p, file.ModeRead))
	assert.True(t, file.Access(p, file.ModeWrite))
	assert.False(t, file.Access(p, file.Mode(42)))

	missing := fspath.New(filepath.Join(t.TempDir(), "missing.bin"))
	assert.False(t, file.Access(missing, file.ModeRead))
}

func TestAccessReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits do not map to the Windows read-only attribute")
	}
	if os.Getuid() == 0 {
		t.Skip("root bypasses permission checks")
	}

	p := seed(t, "readonly.bin", []byte("r"))
	require.NoError(t, os.Chmod(p.Name(), 0o400))

	assert.True(t, file.Access(p, file.ModeRead))
	assert.False(t, file.Access(p, file.ModeWrite))
}

func TestExistWhileOpenSurvivesUnlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unlinking an open file is POSIX-specific")
	}

	p := seed(t, "unlinked.bin", []byte("u"))
	f := file.New(p)
	require.True(t, f.Open(file.ModeRead))
	defer f.Close()

	require.NoError(t, os.Remove(p.Name()))

	// The handle still resolves the inode even though the path is gone.
	assert.True(t, f.Exist())
	assert.False(t, file.Exist(p))
}
