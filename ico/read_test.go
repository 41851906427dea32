package ico

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader(t *testing.T) {
	t.Parallel()

	data := []byte{0x00, 0x00, 0x01, 0x00, 0x05, 0x00}
	h, err := ReadHeader(data)
	require.NoError(t, err)

	assert.Equal(t, uint16(0), h.Reserved)
	assert.Equal(t, TypeIcon, h.Type)
	assert.Equal(t, uint16(5), h.Count)
}

func TestReadHeaderNoTypeValidation(t *testing.T) {
	t.Parallel()

	// Pure decode: an unknown type passes through untouched.
	data := []byte{0x07, 0x00, 0x63, 0x00, 0x00, 0x00}
	h, err := ReadHeader(data)
	require.NoError(t, err)

	assert.Equal(t, uint16(7), h.Reserved)
	assert.Equal(t, Type(0x63), h.Type)
}

func TestReadEntrySecondEntryWidth(t *testing.T) {
	t.Parallel()

	// Two entries with different widths. The decode must take every field,
	// width included, from the requested entry, not from the first one.
	var sink bytes.Buffer
	images := []Image{
		{Size: 16, Length: 1, Source: BytesSource{0x01}},
		{Size: 48, Length: 1, Source: BytesSource{0x02}},
	}
	require.NoError(t, Write(&sink, images))

	e1, err := ReadEntry(sink.Bytes(), HeaderSize+EntrySize)
	require.NoError(t, err)
	assert.Equal(t, uint8(48), e1.Width)
	assert.Equal(t, uint8(48), e1.Height)
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	images := []Image{
		{Size: 16, Length: 20, Source: BytesSource(repeatBytes(0x11, 20))},
		{Size: 64, Length: 33, Source: BytesSource(repeatBytes(0x22, 33))},
		{Size: 256, Length: 500, Source: BytesSource(repeatBytes(0x33, 500))},
	}

	var sink bytes.Buffer
	require.NoError(t, Write(&sink, images))

	c, err := Decode(sink.Bytes())
	require.NoError(t, err)
	require.Equal(t, uint16(3), c.Header.Count)
	require.Len(t, c.Entries, 3)

	offset := uint32(HeaderSize + EntrySize*len(images))
	for i, img := range images {
		e := c.Entries[i]
		assert.Equal(t, img.Size, e.Dim(), "entry %d dim", i)
		assert.Equal(t, img.Length, e.Size, "entry %d size", i)
		assert.Equal(t, offset, e.Offset, "entry %d offset", i)
		assert.Equal(t, uint16(1), e.Planes, "entry %d planes", i)
		assert.Equal(t, uint16(32), e.BitCount, "entry %d bpp", i)
		offset += img.Length
	}
}

func TestContainerPayload(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	require.NoError(t, Write(&sink, twoImages()))
	data := sink.Bytes()

	c, err := Decode(data)
	require.NoError(t, err)

	p0, err := c.Payload(data, 0)
	require.NoError(t, err)
	assert.Equal(t, repeatBytes(0xAA, 20), p0)

	p1, err := c.Payload(data, 1)
	require.NoError(t, err)
	assert.Equal(t, repeatBytes(0xBB, 500), p1)
}

func TestContainerPayloadBounds(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	require.NoError(t, Write(&sink, twoImages()))
	data := sink.Bytes()

	c, err := Decode(data)
	require.NoError(t, err)

	_, err = c.Payload(data, 2)
	assert.Error(t, err, "index past last entry")

	_, err = c.Payload(data[:100], 1)
	assert.Error(t, err, "truncated buffer")
}
