package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	preamble    = "APETAGEX\xd0\x07\x00\x00"
	headerSize  = 32
	id3Size     = 128
	itemMinSize = 11
)

// Debugging aid: prints the raw layout of the APE tag at the end of a file
// without validating it, so corrupt tags can be inspected too.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ape-dump <file>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	dumpTag(os.Stdout, f, stat.Size())
}

func dumpTag(w io.Writer, r io.ReaderAt, end int64) {
	if end >= id3Size {
		marker := make([]byte, 3)
		if _, err := r.ReadAt(marker, end-id3Size); err == nil && string(marker) == "TAG" {
			fmt.Fprintf(w, "ID3v1 (size: %d, offset: %d)\n", id3Size, end-id3Size)
			end -= id3Size
		}
	}

	if end < headerSize {
		fmt.Fprintln(w, "no APE footer")
		return
	}
	footer := make([]byte, headerSize)
	if _, err := r.ReadAt(footer, end-headerSize); err != nil || !bytes.HasPrefix(footer, []byte(preamble)) {
		fmt.Fprintln(w, "no APE footer")
		return
	}

	size := int64(binary.LittleEndian.Uint32(footer[12:16]))
	count := binary.LittleEndian.Uint32(footer[16:20])
	start := end - size - headerSize
	fmt.Fprintf(w, "APE footer (size: %d, items: %d, flags: % x, offset: %d)\n", size, count, footer[20:24], end-headerSize)

	if start < 0 {
		fmt.Fprintf(w, "  size runs past start of file by %d bytes\n", -start)
		return
	}

	header := make([]byte, headerSize)
	if _, err := r.ReadAt(header, start); err != nil {
		fmt.Fprintf(w, "  header: %v\n", err)
		return
	}
	if bytes.HasPrefix(header, []byte(preamble)) {
		fmt.Fprintf(w, "APE header (size: %d, items: %d, flags: % x, offset: %d)\n",
			binary.LittleEndian.Uint32(header[12:16]), binary.LittleEndian.Uint32(header[16:20]), header[20:24], start)
	} else {
		fmt.Fprintf(w, "APE header missing at offset %d\n", start)
	}

	dumpItems(w, r, start+headerSize, end-headerSize, count)
}

func dumpItems(w io.Writer, r io.ReaderAt, offset, end int64, count uint32) {
	for i := uint32(0); i < count && offset < end; i++ {
		if end-offset < itemMinSize {
			fmt.Fprintf(w, "  %d trailing bytes at offset %d\n", end-offset, offset)
			return
		}

		head := make([]byte, 8)
		if _, err := r.ReadAt(head, offset); err != nil {
			return
		}
		length := int64(binary.LittleEndian.Uint32(head[0:4]))
		flags := binary.BigEndian.Uint32(head[4:8])

		rest := make([]byte, end-offset-8)
		if _, err := r.ReadAt(rest, offset+8); err != nil {
			return
		}
		keyLen := bytes.IndexByte(rest, 0)
		if keyLen < 0 {
			fmt.Fprintf(w, "  item %d has no key terminator (offset: %d)\n", i, offset)
			return
		}

		fmt.Fprintf(w, "  %q (length: %d, flags: %d, offset: %d)\n", rest[:keyLen], length, flags, offset)
		valueStart := int64(keyLen) + 1
		if valueStart+length > int64(len(rest)) {
			fmt.Fprintf(w, "    value runs past end of tag\n")
			return
		}
		for _, v := range bytes.Split(rest[valueStart:valueStart+length], []byte{0}) {
			fmt.Fprintf(w, "    %q\n", v)
		}

		offset += 8 + valueStart + length
	}

	if offset != end {
		fmt.Fprintf(w, "  %d bytes left over at offset %d\n", end-offset, offset)
	}
}
