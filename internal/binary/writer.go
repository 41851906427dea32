// Package binary provides low-level binary I/O operations for ICO container
// encoding and decoding. The format is little-endian throughout.
package binary

import (
	"encoding/binary"
	"io"
)

// Writer provides methods for writing little-endian ICO binary data at
// tracked positions.
type Writer struct {
	w   io.WriterAt
	pos int64
}

// NewWriter creates a binary writer positioned at offset 0.
func NewWriter(w io.WriterAt) *Writer {
	return &Writer{w: w, pos: 0}
}

// At returns a new writer positioned at the given offset.
// The new writer shares the underlying io.WriterAt but has independent position.
func (w *Writer) At(offset int64) *Writer {
	return &Writer{w: w.w, pos: offset}
}

// Pos returns the current write position.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	return err
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) error {
	return w.WriteBytes([]byte{v})
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return w.WriteBytes(buf)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return w.WriteBytes(buf)
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int) error {
	if n <= 0 {
		return nil
	}
	zeros := make([]byte, n)
	return w.WriteBytes(zeros)
}

// Skip advances the position by n bytes without writing.
func (w *Writer) Skip(n int64) {
	w.pos += n
}

// Buffer is a growable in-memory io.WriterAt. It is used to assemble a
// fixed-layout block (header plus directory table) before issuing it to a
// streaming sink as a single contiguous write.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a Buffer preallocated to the given size.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// WriteAt implements io.WriterAt, extending the buffer as needed.
func (b *Buffer) WriteAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if end := int(off) + len(p); end > len(b.buf) {
		grown := make([]byte, end)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[off:], p)
	return len(p), nil
}

// Bytes returns the accumulated bytes.
func (b *Buffer) Bytes() []byte {
	return b.buf
}
