package ico

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Container layout sizes in bytes.
const (
	HeaderSize = 6
	EntrySize  = 16
)

// Type is the container type discriminator stored in the header.
type Type uint16

// Container types.
const (
	TypeIcon   Type = 1
	TypeCursor Type = 2
)

// Header is the 6-byte preamble of every container.
type Header struct {
	// Reserved must be 0
	Reserved uint16

	// Type is the container type (TypeIcon or TypeCursor)
	Type Type

	// Count is the number of directory entries that follow
	Count uint16
}

// Entry is one 16-byte directory record describing an embedded image.
type Entry struct {
	// Width is the image width in pixels; 0 means 256
	Width uint8

	// Height is the image height in pixels; 0 means 256.
	// Entries produced by this package are always square.
	Height uint8

	// ColorCount is the palette size; 0 for images with 8 or more bpp
	ColorCount uint8

	// Reserved must be 0
	Reserved uint8

	// Planes is the color plane count (1 for icons)
	Planes uint16

	// BitCount is the bits per pixel (32 for icons written here)
	BitCount uint16

	// Size is the payload byte length
	Size uint32

	// Offset is the payload's offset from the start of the container
	Offset uint32
}

// Dim returns the logical edge length of the entry's image, decoding the
// format's 0-means-256 wraparound.
func (e Entry) Dim() int {
	if e.Width == 0 {
		return 256
	}
	return int(e.Width)
}

// dimByte encodes a logical edge length into the single-byte dimension
// field. 256 cannot be represented directly and wraps to 0.
func dimByte(size int) uint8 {
	if size >= 256 {
		return 0
	}
	return uint8(size)
}

// newEntry builds the directory entry for one target image. The payload
// offset is assigned separately during the write pass.
func newEntry(size int, length uint32) Entry {
	d := dimByte(size)
	return Entry{
		Width:    d,
		Height:   d,
		Planes:   1,
		BitCount: 32,
		Size:     length,
	}
}

// Image is one write target: an already-rasterized square image of a known
// edge length, whose payload bytes are supplied by Source. Length is the
// payload byte length recorded in the directory; the writer trusts it and
// does not re-measure the content.
type Image struct {
	Size   int
	Length uint32
	Source Source
}

// Source supplies the raw payload bytes for one image.
type Source interface {
	Open() (io.ReadCloser, error)
}

// FileSource supplies payload bytes from a file on disk.
type FileSource string

// Open opens the underlying file.
func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(s))
}

// BytesSource supplies payload bytes held in memory.
type BytesSource []byte

// Open returns a reader over the in-memory bytes.
func (s BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s)), nil
}

// FileImage builds an Image for a rasterized file on disk, using the
// file's current length as the payload byte length.
func FileImage(path string, size int) (Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Image{}, fmt.Errorf("stat image source: %w", err)
	}
	return Image{
		Size:   size,
		Length: uint32(info.Size()),
		Source: FileSource(path),
	}, nil
}
