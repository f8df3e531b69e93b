//go:build unix

package file

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/WinCoder/ckcore/fspath"
)

// handle is a raw POSIX file descriptor.
type handle = int

const invalidHandle handle = -1

// Open acquires a descriptor for the bound path in the given mode. An
// already-open descriptor is closed first; if that close fails the
// open is aborted and the prior descriptor kept.
func (f *File) Open(mode Mode) bool {
	if f.Test() && !f.Close() {
		return false
	}

	var fd int
	var err error
	switch mode {
	case ModeRead:
		fd, err = unix.Open(f.path.Name(), unix.O_RDONLY, 0)
	case ModeWrite:
		fd, err = unix.Open(f.path.Name(), unix.O_CREAT|unix.O_WRONLY, 0o600)
	default:
		return false
	}
	if err != nil {
		return false
	}

	f.handle = fd
	return true
}

// Close releases the open descriptor. Closing a File that has none
// returns false; a failed close leaves the descriptor open.
func (f *File) Close() bool {
	if !f.Test() {
		return false
	}
	if unix.Close(f.handle) != nil {
		return false
	}
	f.handle = invalidHandle
	return true
}

// Seek repositions the descriptor by distance relative to whence and
// returns the resulting absolute position, or -1 on failure or an
// unknown whence.
func (f *File) Seek(distance int64, whence Whence) int64 {
	if !f.Test() {
		return -1
	}

	var w int
	switch whence {
	case Begin:
		w = unix.SEEK_SET
	case Current:
		w = unix.SEEK_CUR
	case End:
		w = unix.SEEK_END
	default:
		return -1
	}

	pos, err := unix.Seek(f.handle, distance, w)
	if err != nil {
		return -1
	}
	return pos
}

// Read transfers up to len(p) bytes into p. Zero signals end of file;
// -1 signals failure. Short reads are not retried.
func (f *File) Read(p []byte) int64 {
	if !f.Test() {
		return -1
	}
	n, err := unix.Read(f.handle, p)
	if err != nil {
		return -1
	}
	return int64(n)
}

// Write transfers up to len(p) bytes from p and returns the number of
// bytes written, or -1 on failure. Short writes are not retried.
func (f *File) Write(p []byte) int64 {
	if !f.Test() {
		return -1
	}
	n, err := unix.Write(f.handle, p)
	if err != nil {
		return -1
	}
	return int64(n)
}

// Exist reports whether the file exists. With an open descriptor the
// probe goes through the descriptor, otherwise through the path.
func (f *File) Exist() bool {
	if f.Test() {
		var st unix.Stat_t
		return unix.Fstat(f.handle, &st) == nil
	}
	return Exist(f.path)
}

// Time returns the access, modification and status-change timestamps
// in local time. With an open descriptor the probe goes through the
// descriptor, otherwise through the path.
func (f *File) Time() (access, modify, created time.Time, ok bool) {
	if f.Test() {
		var st unix.Stat_t
		if unix.Fstat(f.handle, &st) != nil {
			return time.Time{}, time.Time{}, time.Time{}, false
		}
		return statTimes(&st)
	}
	return Time(f.path)
}

func statTimes(st *unix.Stat_t) (access, modify, created time.Time, ok bool) {
	access = time.Unix(st.Atim.Unix())
	modify = time.Unix(st.Mtim.Unix())
	created = time.Unix(st.Ctim.Unix())
	return access, modify, created, true
}

// Exist reports whether a file exists at path.
func Exist(path fspath.Path) bool {
	var st unix.Stat_t
	return unix.Stat(path.Name(), &st) == nil
}

// Time returns the access, modification and status-change timestamps
// of the file at path in local time. POSIX exposes no birth time here;
// the third slot carries the inode status-change time.
func Time(path fspath.Path) (access, modify, created time.Time, ok bool) {
	var st unix.Stat_t
	if unix.Stat(path.Name(), &st) != nil {
		return time.Time{}, time.Time{}, time.Time{}, false
	}
	return statTimes(&st)
}

// Access reports whether the active user may open the file at path in
// the given mode. An unknown mode reports false.
func Access(path fspath.Path, mode Mode) bool {
	switch mode {
	case ModeRead:
		return unix.Access(path.Name(), unix.R_OK) == nil
	case ModeWrite:
		return unix.Access(path.Name(), unix.W_OK) == nil
	}
	return false
}

// Hidden reports whether path is hidden by the POSIX convention of a
// dot-prefixed basename.
func Hidden(path fspath.Path) bool {
	base := path.Base()
	return len(base) > 1 && base[0] == '.' && base != ".."
}

// Size returns the length of the file at path in bytes, or -1 on
// failure.
func Size(path fspath.Path) int64 {
	var st unix.Stat_t
	if unix.Stat(path.Name(), &st) != nil {
		return -1
	}
	return st.Size
}

func removePath(name string) error {
	return unix.Unlink(name)
}

func renamePath(oldName, newName string) error {
	return unix.Rename(oldName, newName)
}
