package fspathmust_test

import (
	"bytes"
	"errors"
	"testing"

	fspath "github.com/Jumpaku/go-fspath"
	"github.com/Jumpaku/go-fspath/fspathmust"
)

type located string

func (l located) FSPath() string {
	return string(l)
}

func TestFSPath_ReturnsOnSuccess(t *testing.T) {
	cases := []struct {
		name string
		path any
		want string
	}{
		{"string", "a/b", "a/b"},
		{"provider", located("x/y"), "x/y"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := fspathmust.FSPath(c.path); got != c.want {
				t.Fatalf("FSPath(%#v) = %q, want %q", c.path, got, c.want)
			}
		})
	}
}

func TestFSPath_PanicsOnFailure(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FSPath(42) did not panic, want panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered value %#v is not an error", r)
		}
		if !errors.Is(err, fspath.ErrNotPathLike) {
			t.Fatalf("recovered error %v does not wrap ErrNotPathLike", err)
		}
	}()
	fspathmust.FSPath(42)
}

func TestBytes_ReturnsOnSuccess(t *testing.T) {
	got := fspathmust.Bytes([]byte("a/b"))
	if !bytes.Equal(got, []byte("a/b")) {
		t.Fatalf("Bytes(%q) = %q, want %q", "a/b", got, "a/b")
	}
}

func TestAs_ReturnsOnSuccess(t *testing.T) {
	got := fspathmust.As[fspath.Path]("x/y")
	if got != fspath.Path("x/y") {
		t.Fatalf("As[Path](\"x/y\") = %q, want %q", got, "x/y")
	}
}
