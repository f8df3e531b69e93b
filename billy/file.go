// Package billy adapts go-billy filesystems to the file.Base contract,
// giving the file core a virtual back-end for tests and embedding.
package billy

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/WinCoder/ckcore/file"
	"github.com/WinCoder/ckcore/fspath"
)

// NewMemory returns an empty in-memory filesystem.
//
//nolint:ireturn // billy.Filesystem is the adapter target.
func NewMemory() billy.Filesystem {
	return memfs.New()
}

// NewOS returns a filesystem rooted at root on the host.
//
//nolint:ireturn // billy.Filesystem is the adapter target.
func NewOS(root string) billy.Filesystem {
	return osfs.New(root)
}

// File binds a path within a billy filesystem to an optional open
// handle, with the same sentinel semantics as the platform File. The
// handle here is the non-nil billy.File.
type File struct {
	fs   billy.Filesystem
	fh   billy.File
	path fspath.Path
}

var _ file.Base = (*File)(nil)

// New returns a File bound to path within fsys. No handle is opened.
func New(fsys billy.Filesystem, path fspath.Path) *File {
	return &File{fs: fsys, path: path}
}

// Name returns the bound path's name string.
func (f *File) Name() string {
	return f.path.Name()
}

// Path returns the bound path. A successful Rename rebinds it.
func (f *File) Path() fspath.Path {
	return f.path
}

// Open implements Base.Open. An already-open handle is closed first;
// if that close fails the open is aborted and the prior handle kept.
func (f *File) Open(mode file.Mode) bool {
	if f.fh != nil && !f.Close() {
		return false
	}

	var fh billy.File
	var err error
	switch mode {
	case file.ModeRead:
		fh, err = f.fs.OpenFile(f.path.Name(), os.O_RDONLY, 0)
	case file.ModeWrite:
		fh, err = f.fs.OpenFile(f.path.Name(), os.O_CREATE|os.O_WRONLY, 0o600)
	default:
		return false
	}
	if err != nil {
		return false
	}

	f.fh = fh
	return true
}

// Close implements Base.Close.
func (f *File) Close() bool {
	if f.fh == nil {
		return false
	}
	if f.fh.Close() != nil {
		return false
	}
	f.fh = nil
	return true
}

// Test implements Base.Test.
func (f *File) Test() bool {
	return f.fh != nil
}

// Seek implements Base.Seek.
func (f *File) Seek(distance int64, whence file.Whence) int64 {
	if f.fh == nil {
		return -1
	}

	var w int
	switch whence {
	case file.Begin:
		w = io.SeekStart
	case file.Current:
		w = io.SeekCurrent
	case file.End:
		w = io.SeekEnd
	default:
		return -1
	}

	pos, err := f.fh.Seek(distance, w)
	if err != nil {
		return -1
	}
	return pos
}

// Tell implements Base.Tell.
func (f *File) Tell() int64 {
	return f.Seek(0, file.Current)
}

// Read implements Base.Read. End of file reports zero, not a failure.
func (f *File) Read(p []byte) int64 {
	if f.fh == nil {
		return -1
	}
	n, err := f.fh.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return -1
	}
	return int64(n)
}

// Write implements Base.Write.
func (f *File) Write(p []byte) int64 {
	if f.fh == nil {
		return -1
	}
	n, err := f.fh.Write(p)
	if err != nil {
		return -1
	}
	return int64(n)
}

// Exist implements Base.Exist. Billy exposes no handle-level stat, so
// the probe always goes through the path.
func (f *File) Exist() bool {
	_, err := f.fs.Stat(f.path.Name())
	return err == nil
}

// Remove implements Base.Remove.
func (f *File) Remove() bool {
	f.Close()
	return f.fs.Remove(f.path.Name()) == nil
}

// Rename implements Base.Rename: overwriting is refused before the
// close, so an open handle survives a refusal; a real rename closes
// the handle and does not reopen it.
func (f *File) Rename(newPath fspath.Path) bool {
	if _, err := f.fs.Stat(newPath.Name()); err == nil {
		return false
	}
	f.Close()
	if f.fs.Rename(f.path.Name(), newPath.Name()) != nil {
		return false
	}
	f.path = newPath
	return true
}

// Time implements Base.Time. Virtual filesystems track a single
// timestamp, so all three slots carry the modification time.
func (f *File) Time() (access, modify, created time.Time, ok bool) {
	info, err := f.fs.Stat(f.path.Name())
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, false
	}
	mt := info.ModTime().Local()
	return mt, mt, mt, true
}

// Access implements Base.Access using the permission bits reported by
// Stat.
func (f *File) Access(mode file.Mode) bool {
	info, err := f.fs.Stat(f.path.Name())
	if err != nil {
		return false
	}
	switch mode {
	case file.ModeRead:
		return info.Mode().Perm()&0o444 != 0
	case file.ModeWrite:
		return info.Mode().Perm()&0o222 != 0
	}
	return false
}

// Hidden follows the dot-basename convention; virtual filesystems
// carry no attribute bits.
func (f *File) Hidden() bool {
	base := f.path.Base()
	return len(base) > 1 && base[0] == '.' && base != ".."
}

// Size implements Base.Size. With an open handle the length is
// measured by seeking to the end and back, preserving the current
// position.
func (f *File) Size() int64 {
	if f.fh == nil {
		info, err := f.fs.Stat(f.path.Name())
		if err != nil {
			return -1
		}
		return info.Size()
	}
	cur := f.Tell()
	size := f.Seek(0, file.End)
	f.Seek(cur, file.Begin)
	return size
}
