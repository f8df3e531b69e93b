// Package file implements a portable file-handle abstraction over the
// operating system's file primitives.
//
// A File associates a path with at most one open platform handle. All
// fallible operations report failure through sentinels (false or -1)
// rather than error values; callers needing finer discrimination must
// consult the platform error state out of band.
//
// A single File is not safe for concurrent use. Distinct Files bound
// to the same path share only the underlying filesystem.
package file

import (
	"time"

	"github.com/WinCoder/ckcore/fspath"
)

// Mode selects how a file is opened.
type Mode int

const (
	// ModeRead opens an existing file for reading.
	ModeRead Mode = iota

	// ModeWrite opens a file for writing, creating it if absent with
	// owner read+write permission. Existing content is not truncated;
	// writes from offset zero overlay the existing prefix.
	ModeWrite
)

// Whence selects the base position of a seek operation.
type Whence int

const (
	// Begin seeks to an absolute offset from the start of the file.
	Begin Whence = iota

	// Current seeks relative to the current position.
	Current

	// End seeks relative to the end of the file.
	End
)

// Base is the contract shared by all file back-ends. Every fallible
// operation returns either a success indicator (true, a non-negative
// byte count, or a non-negative offset) or the failure sentinel
// (false or -1).
type Base interface {
	// Name returns the bound path's name string.
	Name() string

	// Open acquires a handle for the bound path in the given mode. An
	// already-open handle is closed first; if that close fails the
	// open is aborted and the prior handle kept.
	Open(mode Mode) bool

	// Close releases the open handle. Closing with no handle open
	// returns false; a failed close leaves the handle open.
	Close() bool

	// Test reports whether a handle is currently open.
	Test() bool

	// Seek repositions the handle by distance relative to whence and
	// returns the resulting absolute position, or -1 on failure.
	Seek(distance int64, whence Whence) int64

	// Tell returns the current position, or -1 if no handle is open.
	Tell() int64

	// Read transfers up to len(p) bytes into p and returns the number
	// of bytes read. Zero signals end of file; -1 signals failure.
	// Short reads are not retried.
	Read(p []byte) int64

	// Write transfers up to len(p) bytes from p and returns the number
	// of bytes written, or -1 on failure. Short writes are not
	// retried.
	Write(p []byte) int64

	// Exist reports whether the file exists, probing through the open
	// handle when one is present.
	Exist() bool

	// Remove closes any open handle (ignoring the result) and unlinks
	// the bound path.
	Remove() bool

	// Rename moves the file to newPath without overwriting: if
	// newPath exists the rename is refused before anything else
	// happens. Otherwise any open handle is closed and is not
	// reopened on success.
	Rename(newPath fspath.Path) bool

	// Time returns the access, modification and creation timestamps in
	// local time. On POSIX the creation slot carries the inode
	// status-change time. On failure ok is false and the timestamps
	// are undefined.
	Time() (access, modify, created time.Time, ok bool)

	// Access reports whether the active user may open the file in the
	// given mode. An unknown mode reports false.
	Access(mode Mode) bool

	// Size returns the file's length in bytes, or -1 on failure.
	Size() int64
}

// File binds a path to an optional platform handle. The zero value is
// not usable; construct with New, Temp or TempIn. A File must not be
// copied while a handle is open.
type File struct {
	handle handle
	path   fspath.Path
}

var _ Base = (*File)(nil)

// New returns a File bound to path. No handle is opened; opening is
// always explicit.
func New(path fspath.Path) *File {
	return &File{handle: invalidHandle, path: path}
}

// Name returns the bound path's name string.
func (f *File) Name() string {
	return f.path.Name()
}

// Path returns the bound path. A successful Rename rebinds it.
func (f *File) Path() fspath.Path {
	return f.path
}

// Test reports whether a handle is currently open.
func (f *File) Test() bool {
	return f.handle != invalidHandle
}

// Tell returns the current position, or -1 if no handle is open.
func (f *File) Tell() int64 {
	return f.Seek(0, Current)
}

// Remove closes any open handle (ignoring the result) and unlinks the
// bound path. It returns true iff the unlink succeeds.
func (f *File) Remove() bool {
	f.Close()
	return removePath(f.path.Name()) == nil
}

// Rename moves the file to newPath. If a file already exists at
// newPath the rename is refused before anything else happens: false is
// returned, the filesystem is untouched and any open handle stays
// open. Otherwise the handle is closed and not reopened; on success
// the bound path is rebound, on failure it is unchanged.
func (f *File) Rename(newPath fspath.Path) bool {
	if Exist(newPath) {
		return false
	}
	f.Close()
	if renamePath(f.path.Name(), newPath.Name()) != nil {
		return false
	}
	f.path = newPath
	return true
}

// Access reports whether the active user may open the file in mode.
func (f *File) Access(mode Mode) bool {
	return Access(f.path, mode)
}

// Hidden reports whether the file is hidden by the platform
// convention.
func (f *File) Hidden() bool {
	return Hidden(f.path)
}

// Size returns the file's length in bytes, or -1 on failure. With an
// open handle the length is measured by seeking to the end and back,
// preserving the current position; otherwise the path is probed
// directly.
func (f *File) Size() int64 {
	if !f.Test() {
		return Size(f.path)
	}
	cur := f.Tell()
	size := f.Seek(0, End)
	f.Seek(cur, Begin)
	return size
}

// Rename moves oldPath to newPath. If a file already exists at newPath
// the filesystem is left untouched and false is returned.
func Rename(oldPath, newPath fspath.Path) bool {
	if Exist(newPath) {
		return false
	}
	return renamePath(oldPath.Name(), newPath.Name()) == nil
}

// Remove unlinks the file at path. If other links to the file exist
// only this link is deleted.
func Remove(path fspath.Path) bool {
	return removePath(path.Name()) == nil
}
