package ico

import (
	"bytes"
	"fmt"

	binpkg "github.com/robert-malhotra/go-ico/internal/binary"
)

// ReadHeader decodes the 6-byte container header at the start of data.
// It is a pure decode: the type field is not validated.
func ReadHeader(data []byte) (Header, error) {
	r := binpkg.NewReader(bytes.NewReader(data))

	reserved, err := r.ReadUint16()
	if err != nil {
		return Header{}, fmt.Errorf("reading header: %w", err)
	}
	typ, err := r.ReadUint16()
	if err != nil {
		return Header{}, fmt.Errorf("reading header: %w", err)
	}
	count, err := r.ReadUint16()
	if err != nil {
		return Header{}, fmt.Errorf("reading header: %w", err)
	}

	return Header{
		Reserved: reserved,
		Type:     Type(typ),
		Count:    count,
	}, nil
}

// ReadEntry decodes the 16-byte directory entry starting at offset.
// Every field, the width byte included, is read relative to the entry
// start. The entry for image i of a container written by this package
// starts at HeaderSize + EntrySize*i.
func ReadEntry(data []byte, offset int64) (Entry, error) {
	r := binpkg.NewReader(bytes.NewReader(data)).At(offset)

	var e Entry
	var err error
	if e.Width, err = r.ReadUint8(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	if e.Height, err = r.ReadUint8(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	if e.ColorCount, err = r.ReadUint8(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	if e.Reserved, err = r.ReadUint8(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	if e.Planes, err = r.ReadUint16(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	if e.BitCount, err = r.ReadUint16(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	if e.Size, err = r.ReadUint32(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	if e.Offset, err = r.ReadUint32(); err != nil {
		return Entry{}, fmt.Errorf("reading entry at %d: %w", offset, err)
	}
	return e, nil
}

// Container is a decoded header plus its directory entries. Payload bytes
// stay in the caller's buffer; use Payload to slice one out.
type Container struct {
	Header  Header
	Entries []Entry
}

// Decode reads the header and all directory entries of the container in
// data. Payload bytes are not touched.
func Decode(data []byte) (*Container, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, h.Count)
	for i := range entries {
		e, err := ReadEntry(data, int64(HeaderSize+EntrySize*i))
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	return &Container{Header: h, Entries: entries}, nil
}

// Payload returns the payload bytes of entry i, sliced from data. Unlike
// the pure decodes above this bounds-checks, since a short buffer here
// would otherwise panic.
func (c *Container) Payload(data []byte, i int) ([]byte, error) {
	if i < 0 || i >= len(c.Entries) {
		return nil, fmt.Errorf("entry index %d out of range (%d entries)", i, len(c.Entries))
	}
	e := c.Entries[i]
	start, end := int64(e.Offset), int64(e.Offset)+int64(e.Size)
	if end > int64(len(data)) {
		return nil, fmt.Errorf("entry %d payload [%d:%d] extends past buffer (%d bytes)",
			i, start, end, len(data))
	}
	return data[start:end], nil
}
