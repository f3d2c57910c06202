package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/simonhull/apetag"
	"github.com/simonhull/apetag/internal/memfile"
)

func TestDumpTag(t *testing.T) {
	f := memfile.New([]byte("audio"))
	err := apetag.NewFromStream(f).Update(func(fields *apetag.Fields) error {
		return fields.Set("Album", "A", "B")
	})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	data := f.Bytes()
	dumpTag(&out, bytes.NewReader(data), int64(len(data)))

	for _, want := range []string{
		"ID3v1 (size: 128",
		"APE footer (size: 49, items: 1, flags: 00 00 00 80",
		"APE header (size: 49, items: 1, flags: 00 00 00 a0, offset: 5)",
		`"Album" (length: 3, flags: 0, offset: 37)`,
		`    "A"`,
		`    "B"`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "left over") {
		t.Errorf("unexpected leftover bytes:\n%s", out.String())
	}
}

func TestDumpTag_NoTag(t *testing.T) {
	var out bytes.Buffer
	data := []byte("just some audio")
	dumpTag(&out, bytes.NewReader(data), int64(len(data)))
	if got := out.String(); got != "no APE footer\n" {
		t.Errorf("got %q", got)
	}
}
