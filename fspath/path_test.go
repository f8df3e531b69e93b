package fspath_test

import (
	"path/filepath"
	"testing"

	"github.com/WinCoder/ckcore/fspath"
)

func TestName(t *testing.T) {
	p := fspath.New("/tmp/data.bin")
	if got := p.Name(); got != "/tmp/data.bin" {
		t.Errorf("Name() = %q, want %q", got, "/tmp/data.bin")
	}
	if got := p.String(); got != "/tmp/data.bin" {
		t.Errorf("String() = %q, want %q", got, "/tmp/data.bin")
	}
}

func TestBaseAndDir(t *testing.T) {
	p := fspath.New(filepath.Join("a", "b", "c.txt"))
	if got := p.Base(); got != "c.txt" {
		t.Errorf("Base() = %q, want %q", got, "c.txt")
	}
	if got := p.Dir().Name(); got != filepath.Join("a", "b") {
		t.Errorf("Dir().Name() = %q, want %q", got, filepath.Join("a", "b"))
	}
}

func TestJoin(t *testing.T) {
	p := fspath.New("root").Join("sub", "leaf.bin")
	want := filepath.Join("root", "sub", "leaf.bin")
	if got := p.Name(); got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestEmpty(t *testing.T) {
	if !(fspath.Path{}).Empty() {
		t.Errorf("zero Path: Empty() = false, want true")
	}
	if fspath.New("x").Empty() {
		t.Errorf("New(\"x\"): Empty() = true, want false")
	}
}
