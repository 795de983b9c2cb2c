package vcsa

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testDevice creates a file shaped like a vcsa device for a cols by lines
// console.
func testDevice(t *testing.T, cols, lines int) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "vcsa")
	data := make([]byte, headerSize+cols*lines*2)
	data[0], data[1] = byte(lines), byte(cols)
	if err := os.WriteFile(name, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func testScreen(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return data[headerSize:]
}

func TestOpen(t *testing.T) {
	name := testDevice(t, 4, 3)
	c, err := Open(&Config{Path: name})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if cols, rows := c.Size(); cols != 4 || rows != 3 {
		t.Errorf("expected 4x3, got %dx%d", cols, rows)
	}

	if _, err = Open(&Config{Path: name, Cols: 5}); !errors.Is(err, ErrGeometry) {
		t.Errorf("expected %v for a grid wider than the console, got %v", ErrGeometry, err)
	}
	if _, err = Open(&Config{Path: filepath.Join(t.TempDir(), "missing")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %v, got %v", os.ErrNotExist, err)
	}
}

func TestFlush(t *testing.T) {
	t.Run("full-width", func(it *testing.T) {
		name := testDevice(it, 2, 2)
		c, err := Open(&Config{Path: name})
		if err != nil {
			it.Fatal(err)
		}
		defer c.Close()

		want := []byte("a\x0ab\x0ac\x0ad\x0a")
		if err = c.Flush(want); err != nil {
			it.Fatal(err)
		}
		if v := testScreen(it, name); !bytes.Equal(v, want) {
			it.Errorf("expected % x, got % x", want, v)
		}
	})

	t.Run("narrow", func(it *testing.T) {
		name := testDevice(it, 3, 2)
		c, err := Open(&Config{Path: name, Cols: 2})
		if err != nil {
			it.Fatal(err)
		}
		defer c.Close()

		if err = c.Flush([]byte("a\x01b\x01c\x02d\x02")); err != nil {
			it.Fatal(err)
		}
		want := []byte("a\x01b\x01\x00\x00c\x02d\x02\x00\x00")
		if v := testScreen(it, name); !bytes.Equal(v, want) {
			it.Errorf("expected % x, got % x", want, v)
		}
	})

	t.Run("too-tall", func(it *testing.T) {
		name := testDevice(it, 2, 1)
		c, err := Open(&Config{Path: name})
		if err != nil {
			it.Fatal(err)
		}
		defer c.Close()

		if err = c.Flush(make([]byte, 8)); !errors.Is(err, ErrGeometry) {
			it.Errorf("expected %v, got %v", ErrGeometry, err)
		}
	})
}
