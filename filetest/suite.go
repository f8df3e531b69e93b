// Package filetest provides a conformance test suite for validating
// file back-ends against the file.Base contract.
//
// Back-end packages import the suite and run it against their own
// implementation:
//
//	func TestConformance(t *testing.T) {
//	    filetest.TestSuite(t, filetest.Harness{
//	        New:  func(p fspath.Path) file.Base { return myfile.New(p) },
//	        Root: fspath.New(t.TempDir()),
//	    })
//	}
//
// The suite validates the contract, not back-end specifics: handle
// lifecycle, sentinel semantics on closed handles, write/read round
// trips, seek/tell agreement, the no-truncate write mode, and the
// no-overwrite rename policy. Tests create and destroy files under the
// harness root, which must be an existing writable directory.
package filetest

import (
	"bytes"
	"testing"

	"github.com/WinCoder/ckcore/file"
	"github.com/WinCoder/ckcore/fspath"
)

// Harness supplies the suite with a back-end factory and a workspace.
type Harness struct {
	// New returns a fresh Base bound to path without opening a handle.
	New func(path fspath.Path) file.Base

	// Root is an existing, writable directory in which the suite may
	// create and destroy files.
	Root fspath.Path
}

// TestSuite runs all conformance tests against the harness back-end.
func TestSuite(t *testing.T, h Harness) {
	t.Run("ClosedHandleSentinels", func(t *testing.T) {
		testClosedHandleSentinels(t, h)
	})
	t.Run("Lifecycle", func(t *testing.T) {
		testLifecycle(t, h)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		testRoundTrip(t, h)
	})
	t.Run("SeekTell", func(t *testing.T) {
		testSeekTell(t, h)
	})
	t.Run("ReopenWhileOpen", func(t *testing.T) {
		testReopenWhileOpen(t, h)
	})
	t.Run("WriteDoesNotTruncate", func(t *testing.T) {
		testWriteDoesNotTruncate(t, h)
	})
	t.Run("RenameRefusesOverwrite", func(t *testing.T) {
		testRenameRefusesOverwrite(t, h)
	})
	t.Run("Rename", func(t *testing.T) {
		testRename(t, h)
	})
	t.Run("SizeWhileOpen", func(t *testing.T) {
		testSizeWhileOpen(t, h)
	})
}

// writeFile creates path through the contract and fills it with data.
func writeFile(t *testing.T, h Harness, path fspath.Path, data []byte) {
	t.Helper()

	f := h.New(path)
	if !f.Open(file.ModeWrite) {
		t.Fatalf("Open(ModeWrite) on %q = false, want true", path.Name())
	}
	if n := f.Write(data); n != int64(len(data)) {
		t.Fatalf("Write(%d bytes) = %d, want %d", len(data), n, len(data))
	}
	if !f.Close() {
		t.Fatalf("Close() after write = false, want true")
	}
}

// readFile reads n bytes from path through the contract.
func readFile(t *testing.T, h Harness, path fspath.Path, n int) []byte {
	t.Helper()

	f := h.New(path)
	if !f.Open(file.ModeRead) {
		t.Fatalf("Open(ModeRead) on %q = false, want true", path.Name())
	}
	defer f.Close()

	buf := make([]byte, n)
	if got := f.Read(buf); got != int64(n) {
		t.Fatalf("Read(%d bytes) = %d, want %d", n, got, n)
	}
	return buf
}

// testClosedHandleSentinels verifies that every handle-bound operation
// on an unopened Base returns its failure sentinel without touching
// the filesystem.
func testClosedHandleSentinels(t *testing.T, h Harness) {
	f := h.New(h.Root.Join("closed.bin"))

	if f.Test() {
		t.Errorf("Test() on fresh Base = true, want false")
	}
	if f.Close() {
		t.Errorf("Close() on fresh Base = true, want false")
	}
	if got := f.Seek(0, file.Begin); got != -1 {
		t.Errorf("Seek(0, Begin) on closed handle = %d, want -1", got)
	}
	if got := f.Tell(); got != -1 {
		t.Errorf("Tell() on closed handle = %d, want -1", got)
	}
	if got := f.Read(make([]byte, 1)); got != -1 {
		t.Errorf("Read() on closed handle = %d, want -1", got)
	}
	if got := f.Write([]byte{0x01}); got != -1 {
		t.Errorf("Write() on closed handle = %d, want -1", got)
	}
	if f.Exist() {
		t.Errorf("Exist() on unbound path = true, want false")
	}
}

// testLifecycle verifies that Test tracks open/close/remove
// transitions and that Close is not idempotent.
func testLifecycle(t *testing.T, h Harness) {
	p := h.Root.Join("lifecycle.bin")
	f := h.New(p)

	if !f.Open(file.ModeWrite) {
		t.Fatalf("Open(ModeWrite) = false, want true")
	}
	if !f.Test() {
		t.Errorf("Test() after successful Open = false, want true")
	}
	if !f.Exist() {
		t.Errorf("Exist() while open = false, want true")
	}

	if !f.Close() {
		t.Errorf("first Close() = false, want true")
	}
	if f.Test() {
		t.Errorf("Test() after Close = true, want false")
	}
	if f.Close() {
		t.Errorf("second Close() without Open = true, want false")
	}

	if !f.Exist() {
		t.Errorf("Exist() after close = false, want true")
	}
	if !f.Remove() {
		t.Errorf("Remove() = false, want true")
	}
	if f.Exist() {
		t.Errorf("Exist() after Remove = true, want false")
	}
	if f.Test() {
		t.Errorf("Test() after Remove = true, want false")
	}
}

// testRoundTrip writes bytes to a new file, reopens it for reading and
// verifies the content and the zero return at end of file.
func testRoundTrip(t *testing.T, h Harness) {
	p := h.Root.Join("roundtrip.bin")
	payload := []byte{0x01, 0x02, 0x03}

	f := h.New(p)
	if !f.Open(file.ModeWrite) {
		t.Fatalf("Open(ModeWrite) = false, want true")
	}
	if n := f.Write(payload); n != 3 {
		t.Fatalf("Write(3 bytes) = %d, want 3", n)
	}
	if !f.Close() {
		t.Fatalf("Close() = false, want true")
	}

	if !f.Open(file.ModeRead) {
		t.Fatalf("Open(ModeRead) = false, want true")
	}
	buf := make([]byte, 3)
	if n := f.Read(buf); n != 3 {
		t.Fatalf("Read(3 bytes) = %d, want 3", n)
	}
	if !bytes.Equal(buf, payload) {
		t.Errorf("Read() = %v, want %v", buf, payload)
	}
	if n := f.Read(make([]byte, 1)); n != 0 {
		t.Errorf("Read() at end of file = %d, want 0", n)
	}
	if !f.Close() {
		t.Errorf("Close() = false, want true")
	}

	f.Remove()
}

// testSeekTell verifies absolute, relative and end-relative seeks and
// the Tell/Seek(0, Current) agreement on a 100-byte file.
func testSeekTell(t *testing.T, h Harness) {
	p := h.Root.Join("seektell.bin")
	writeFile(t, h, p, make([]byte, 100))

	f := h.New(p)
	if !f.Open(file.ModeRead) {
		t.Fatalf("Open(ModeRead) = false, want true")
	}
	defer f.Close()

	if got := f.Seek(0, file.End); got != 100 {
		t.Errorf("Seek(0, End) = %d, want 100", got)
	}
	if got := f.Seek(-10, file.Current); got != 90 {
		t.Errorf("Seek(-10, Current) = %d, want 90", got)
	}
	if got := f.Tell(); got != 90 {
		t.Errorf("Tell() = %d, want 90", got)
	}
	if got := f.Seek(0, file.Begin); got != 0 {
		t.Errorf("Seek(0, Begin) = %d, want 0", got)
	}
	if got := f.Seek(0, file.Whence(99)); got != -1 {
		t.Errorf("Seek(0, unknown whence) = %d, want -1", got)
	}
}

// testReopenWhileOpen verifies that Open on an already-open Base
// closes the prior handle and starts over at offset zero.
func testReopenWhileOpen(t *testing.T, h Harness) {
	p := h.Root.Join("reopen.bin")
	writeFile(t, h, p, []byte("reopen payload"))

	f := h.New(p)
	if !f.Open(file.ModeRead) {
		t.Fatalf("first Open(ModeRead) = false, want true")
	}
	if got := f.Seek(7, file.Begin); got != 7 {
		t.Fatalf("Seek(7, Begin) = %d, want 7", got)
	}

	if !f.Open(file.ModeRead) {
		t.Fatalf("Open(ModeRead) while open = false, want true")
	}
	if !f.Test() {
		t.Errorf("Test() after reopen = false, want true")
	}
	if got := f.Tell(); got != 0 {
		t.Errorf("Tell() after reopen = %d, want 0", got)
	}
	f.Close()
}

// testWriteDoesNotTruncate verifies that write mode overlays the
// existing prefix instead of truncating.
func testWriteDoesNotTruncate(t *testing.T, h Harness) {
	p := h.Root.Join("overlay.bin")
	writeFile(t, h, p, []byte("abcdefgh"))
	writeFile(t, h, p, []byte("XY"))

	got := readFile(t, h, p, 8)
	if want := []byte("XYcdefgh"); !bytes.Equal(got, want) {
		t.Errorf("content after short rewrite = %q, want %q", got, want)
	}
}

// testRenameRefusesOverwrite verifies that Rename onto an existing
// path fails and leaves both files intact. The overwrite check comes
// before any close, so an open handle survives the refusal.
func testRenameRefusesOverwrite(t *testing.T, h Harness) {
	p1 := h.Root.Join("rename-src.bin")
	p2 := h.Root.Join("rename-dst.bin")
	writeFile(t, h, p1, []byte("source"))
	writeFile(t, h, p2, []byte("target"))

	f := h.New(p1)
	if !f.Open(file.ModeRead) {
		t.Fatalf("Open(ModeRead) = false, want true")
	}
	if f.Rename(p2) {
		t.Fatalf("Rename onto existing path = true, want false")
	}
	if !f.Test() {
		t.Errorf("Test() after refused Rename = false, want true")
	}
	if got := f.Name(); got != p1.Name() {
		t.Errorf("Name() after refused Rename = %q, want %q", got, p1.Name())
	}
	f.Close()

	if got := readFile(t, h, p1, 6); !bytes.Equal(got, []byte("source")) {
		t.Errorf("source content = %q, want %q", got, "source")
	}
	if got := readFile(t, h, p2, 6); !bytes.Equal(got, []byte("target")) {
		t.Errorf("target content = %q, want %q", got, "target")
	}
}

// testRename verifies the success path: the file moves, the bound path
// is rebound and the handle stays closed.
func testRename(t *testing.T, h Harness) {
	p1 := h.Root.Join("move-src.bin")
	p2 := h.Root.Join("move-dst.bin")
	writeFile(t, h, p1, []byte("moving"))

	f := h.New(p1)
	if !f.Rename(p2) {
		t.Fatalf("Rename to free path = false, want true")
	}
	if got := f.Name(); got != p2.Name() {
		t.Errorf("Name() after Rename = %q, want %q", got, p2.Name())
	}
	if f.Test() {
		t.Errorf("Test() after Rename = true, want false")
	}
	if h.New(p1).Exist() {
		t.Errorf("Exist() at old path = true, want false")
	}
	if got := readFile(t, h, p2, 6); !bytes.Equal(got, []byte("moving")) {
		t.Errorf("content after Rename = %q, want %q", got, "moving")
	}
}

// testSizeWhileOpen verifies that Size agrees between the open-handle
// and path-probe forms and preserves the current position.
func testSizeWhileOpen(t *testing.T, h Harness) {
	p := h.Root.Join("size.bin")
	writeFile(t, h, p, make([]byte, 64))

	f := h.New(p)
	if got := f.Size(); got != 64 {
		t.Errorf("Size() without handle = %d, want 64", got)
	}

	if !f.Open(file.ModeRead) {
		t.Fatalf("Open(ModeRead) = false, want true")
	}
	defer f.Close()

	if got := f.Seek(10, file.Begin); got != 10 {
		t.Fatalf("Seek(10, Begin) = %d, want 10", got)
	}
	if got := f.Size(); got != 64 {
		t.Errorf("Size() with open handle = %d, want 64", got)
	}
	if got := f.Tell(); got != 10 {
		t.Errorf("Tell() after Size = %d, want 10", got)
	}
}
