package binary

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSafeReader_Size(t *testing.T) {
	sr, err := NewSafeReader(bytes.NewReader(make([]byte, 300)), "test.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.Size() != 300 {
		t.Errorf("expected size 300, got %d", sr.Size())
	}
	if sr.Path() != "test.mp3" {
		t.Errorf("expected path test.mp3, got %q", sr.Path())
	}
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr, err := NewSafeReader(bytes.NewReader(data), "test.ape")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := make([]byte, 2)
	if err := sr.ReadAt(buf, 1, "test read"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x02 || buf[1] != 0x03 {
		t.Errorf("expected [0x02, 0x03], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr, err := NewSafeReader(bytes.NewReader(data), "test.ape")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{name: "offset past end", off: 10, n: 2},
		{name: "read crosses end", off: 3, n: 2},
		{name: "negative offset", off: -1, n: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.n), tt.off, "header block")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			msg := err.Error()
			if !strings.Contains(msg, "test.ape") {
				t.Errorf("error should contain filename: %v", msg)
			}
			if !strings.Contains(msg, "header block") {
				t.Errorf("error should contain context: %v", msg)
			}
		})
	}
}

func TestSafeReader_ReadTail(t *testing.T) {
	data := []byte("audio-dataTAGxyz")
	sr, err := NewSafeReader(bytes.NewReader(data), "song.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := make([]byte, 3)
	if err := sr.ReadTail(buf, 6, "shadow marker"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "TAG" {
		t.Errorf("expected TAG, got %q", buf)
	}

	if err := sr.ReadTail(make([]byte, 4), 3, "footer"); err == nil {
		t.Error("expected error when fromEnd is shorter than the buffer")
	}
	if err := sr.ReadTail(make([]byte, 4), 100, "footer"); err == nil {
		t.Error("expected error when fromEnd exceeds the stream")
	}
}
