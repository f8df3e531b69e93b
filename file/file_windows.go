//go:build windows

package file

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/WinCoder/ckcore/fspath"
)

// handle is a Win32 file handle.
type handle = windows.Handle

const invalidHandle = windows.InvalidHandle

// Open acquires a handle for the bound path in the given mode. An
// already-open handle is closed first; if that close fails the open is
// aborted and the prior handle kept.
func (f *File) Open(mode Mode) bool {
	if f.Test() && !f.Close() {
		return false
	}

	name, err := windows.UTF16PtrFromString(f.path.Name())
	if err != nil {
		return false
	}

	var h windows.Handle
	switch mode {
	case ModeRead:
		h, err = windows.CreateFile(name, windows.GENERIC_READ,
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
			windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	case ModeWrite:
		// OPEN_ALWAYS creates the file if absent and never truncates.
		h, err = windows.CreateFile(name, windows.GENERIC_WRITE,
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
			windows.OPEN_ALWAYS, windows.FILE_ATTRIBUTE_NORMAL, 0)
	default:
		return false
	}
	if err != nil {
		return false
	}

	f.handle = h
	return true
}

// Close releases the open handle. Closing a File that has none returns
// false; a failed close leaves the handle open.
func (f *File) Close() bool {
	if !f.Test() {
		return false
	}
	if windows.CloseHandle(f.handle) != nil {
		return false
	}
	f.handle = invalidHandle
	return true
}

// Seek repositions the handle by distance relative to whence and
// returns the resulting absolute position, or -1 on failure or an
// unknown whence.
func (f *File) Seek(distance int64, whence Whence) int64 {
	if !f.Test() {
		return -1
	}

	var w int
	switch whence {
	case Begin:
		w = windows.FILE_BEGIN
	case Current:
		w = windows.FILE_CURRENT
	case End:
		w = windows.FILE_END
	default:
		return -1
	}

	pos, err := windows.Seek(f.handle, distance, w)
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
	n, err := windows.Read(f.handle, p)
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
	n, err := windows.Write(f.handle, p)
	if err != nil {
		return -1
	}
	return int64(n)
}

// Exist reports whether the file exists. With an open handle the probe
// goes through the handle, otherwise through the path.
func (f *File) Exist() bool {
	if f.Test() {
		var info windows.ByHandleFileInformation
		return windows.GetFileInformationByHandle(f.handle, &info) == nil
	}
	return Exist(f.path)
}

// Time returns the access, modification and creation timestamps in
// local time. With an open handle the probe goes through the handle,
// otherwise through the path.
func (f *File) Time() (access, modify, created time.Time, ok bool) {
	if f.Test() {
		var info windows.ByHandleFileInformation
		if windows.GetFileInformationByHandle(f.handle, &info) != nil {
			return time.Time{}, time.Time{}, time.Time{}, false
		}
		return fileTimes(info.LastAccessTime, info.LastWriteTime, info.CreationTime)
	}
	return Time(f.path)
}

func fileTimes(atime, wtime, ctime windows.Filetime) (access, modify, created time.Time, ok bool) {
	access = time.Unix(0, atime.Nanoseconds())
	modify = time.Unix(0, wtime.Nanoseconds())
	created = time.Unix(0, ctime.Nanoseconds())
	return access, modify, created, true
}

func attrData(name string) (*windows.Win32FileAttributeData, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	var data windows.Win32FileAttributeData
	err = windows.GetFileAttributesEx(p, windows.GetFileExInfoStandard,
		(*byte)(unsafe.Pointer(&data)))
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Exist reports whether a file exists at path.
func Exist(path fspath.Path) bool {
	_, err := attrData(path.Name())
	return err == nil
}

// Time returns the access, modification and creation timestamps of the
// file at path in local time.
func Time(path fspath.Path) (access, modify, created time.Time, ok bool) {
	data, err := attrData(path.Name())
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, false
	}
	return fileTimes(data.LastAccessTime, data.LastWriteTime, data.CreationTime)
}

// Access reports whether the active user may open the file at path in
// the given mode. Write permission is denied for files carrying the
// read-only attribute. An unknown mode reports false.
func Access(path fspath.Path, mode Mode) bool {
	data, err := attrData(path.Name())
	if err != nil {
		return false
	}
	switch mode {
	case ModeRead:
		return true
	case ModeWrite:
		return data.FileAttributes&windows.FILE_ATTRIBUTE_READONLY == 0
	}
	return false
}

// Hidden reports whether the file at path carries the hidden
// attribute.
func Hidden(path fspath.Path) bool {
	data, err := attrData(path.Name())
	if err != nil {
		return false
	}
	return data.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// Size returns the length of the file at path in bytes, or -1 on
// failure.
func Size(path fspath.Path) int64 {
	data, err := attrData(path.Name())
	if err != nil {
		return -1
	}
	return int64(data.FileSizeHigh)<<32 | int64(data.FileSizeLow)
}

func removePath(name string) error {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	return windows.DeleteFile(p)
}

func renamePath(oldName, newName string) error {
	op, err := windows.UTF16PtrFromString(oldName)
	if err != nil {
		return err
	}
	np, err := windows.UTF16PtrFromString(newName)
	if err != nil {
		return err
	}
	return windows.MoveFile(op, np)
}
