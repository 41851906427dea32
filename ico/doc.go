// Package ico assembles and inspects Windows ICO icon containers.
//
// An ICO container is a 6-byte header, an array of 16-byte directory
// entries (one per embedded image), and the concatenated raw image
// payloads, all little-endian:
//
//	offset 0       uint16  reserved (0)
//	offset 2       uint16  type (1 = icon, 2 = cursor)
//	offset 4       uint16  image count N
//	offset 6       N x 16-byte directory entries
//	offset 6+16N   concatenated payloads, in directory order
//
// Payloads are embedded verbatim; the package does not decode, resize, or
// recompress image bytes. Each directory entry records the image's edge
// length, byte length, and the payload's offset from the start of the
// container. A 256-pixel edge is stored as the byte 0, since the dimension
// fields are a single byte (see [Entry.Dim]).
//
// # Writing
//
// [WriteFile] emits a container to a path; [Write] emits to any io.Writer.
// Inputs are [Image] records carrying the edge length, payload byte length,
// and a [Source] for the payload bytes. Entries and payloads appear in
// input order, and payload offsets are the running accumulation of the
// preceding payload lengths:
//
//	images := []ico.Image{
//	    {Size: 16, Length: uint32(len(small)), Source: ico.BytesSource(small)},
//	    {Size: 256, Length: uint32(len(big)), Source: ico.BytesSource(big)},
//	}
//	err := ico.WriteFile("app.ico", ico.Filter(images))
//
// # Reading
//
// [ReadHeader] and [ReadEntry] are pure decodes of the fixed-layout
// structures; [Decode] reads a whole container for inspection or
// round-trip checks. Decoding does not validate the container type or that
// payload bytes are well-formed images.
//
// # Errors
//
//   - [ErrNoImages]: a write was requested with no target images
//   - [ErrMissingDir]: the destination's parent directory does not exist
package ico
