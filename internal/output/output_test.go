package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Printf("count: %d", 42)
	if got := buf.String(); got != "count: 42" {
		t.Errorf("Printf() wrote %q, want %q", got, "count: 42")
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Println("/a")
	p.Println("/b")
	want := "/a\n/b\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	t.Run("array", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := New(&buf).JSON([]string{"/a", "/b"}); err != nil {
			t.Fatalf("JSON failed: %v", err)
		}
		want := "[\n  \"/a\",\n  \"/b\"\n]\n"
		if got := buf.String(); got != want {
			t.Errorf("JSON() wrote %q, want %q", got, want)
		}
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := New(&buf).JSON([]string{}); err != nil {
			t.Fatalf("JSON failed: %v", err)
		}
		if got := buf.String(); got != "[]\n" {
			t.Errorf("JSON() wrote %q, want %q", got, "[]\n")
		}
	})
}

func TestPrinter_IsTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if New(&buf).IsTerminal() {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	if New(f).IsTerminal() {
		t.Error("a regular file is not a terminal")
	}
}
