package ico

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/robert-malhotra/go-ico/internal/alloc"
	binpkg "github.com/robert-malhotra/go-ico/internal/binary"
)

// WriteFile writes a container holding the given images to path. The
// parent directory must already exist; it is checked before any byte is
// written. The destination file is closed on every return path, but partial
// output is not removed on failure. Callers needing atomic replacement
// should write to a temporary path and rename on success.
func WriteFile(path string, images []Image, opts ...WriteOption) error {
	if len(images) == 0 {
		return ErrNoImages
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissingDir, dir)
		}
		return fmt.Errorf("checking destination directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	if err := Write(f, images, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes a container holding the given images to w. The header and
// the full directory table are issued as one contiguous write, followed by
// each image's payload bytes in input order. A failed source read aborts
// the write; bytes already flushed to w stay.
func Write(w io.Writer, images []Image, opts ...WriteOption) error {
	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	if len(images) == 0 {
		return ErrNoImages
	}

	block, err := directoryBlock(images, options)
	if err != nil {
		return fmt.Errorf("assembling directory: %w", err)
	}
	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("writing directory: %w", err)
	}

	if options.readConcurrency > 1 {
		return streamPrefetched(w, images, options)
	}
	return streamSequential(w, images, options)
}

// directoryBlock assembles the header and directory table into a single
// in-memory block. Payload offsets accumulate from the end of the table,
// advancing by each preceding image's recorded length.
func directoryBlock(images []Image, options *writeOptions) ([]byte, error) {
	n := len(images)
	buf := binpkg.NewBuffer(HeaderSize + EntrySize*n)
	bw := binpkg.NewWriter(buf)

	h := Header{Type: options.containerType, Count: uint16(n)}
	if err := h.write(bw); err != nil {
		return nil, err
	}

	a := alloc.New(uint64(HeaderSize + EntrySize*n))
	for _, img := range images {
		e := newEntry(img.Size, img.Length)
		e.Offset = uint32(a.Alloc(uint64(img.Length)))
		if err := e.write(bw); err != nil {
			return nil, err
		}
	}

	options.log().Debug("assembled icon directory",
		"images", n, "totalSize", a.End())
	return buf.Bytes(), nil
}

// write writes the 6-byte header at the writer's current position.
func (h Header) write(w *binpkg.Writer) error {
	if err := w.WriteUint16(h.Reserved); err != nil {
		return err
	}
	if err := w.WriteUint16(uint16(h.Type)); err != nil {
		return err
	}
	return w.WriteUint16(h.Count)
}

// write writes the 16-byte directory entry at the writer's current position.
func (e Entry) write(w *binpkg.Writer) error {
	if err := w.WriteUint8(e.Width); err != nil {
		return err
	}
	if err := w.WriteUint8(e.Height); err != nil {
		return err
	}
	if err := w.WriteUint8(e.ColorCount); err != nil {
		return err
	}
	if err := w.WriteUint8(e.Reserved); err != nil {
		return err
	}
	if err := w.WriteUint16(e.Planes); err != nil {
		return err
	}
	if err := w.WriteUint16(e.BitCount); err != nil {
		return err
	}
	if err := w.WriteUint32(e.Size); err != nil {
		return err
	}
	return w.WriteUint32(e.Offset)
}

// streamSequential copies each image's payload to the sink one at a time,
// in input order.
func streamSequential(w io.Writer, images []Image, options *writeOptions) error {
	for i, img := range images {
		rc, err := img.Source.Open()
		if err != nil {
			return fmt.Errorf("opening image %d (size %d): %w", i, img.Size, err)
		}
		n, err := io.Copy(w, rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("copying image %d (size %d): %w", i, img.Size, err)
		}
		options.log().Debug("wrote image payload",
			"index", i, "size", img.Size, "bytes", n)
	}
	return nil
}

// streamPrefetched reads image sources concurrently, bounded by the
// configured concurrency, then writes the payloads to the sink strictly in
// input order. Concurrency never reorders output bytes.
func streamPrefetched(w io.Writer, images []Image, options *writeOptions) error {
	payloads := make([][]byte, len(images))

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(options.readConcurrency)
	for i, img := range images {
		i, img := i, img
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc, err := img.Source.Open()
			if err != nil {
				return fmt.Errorf("opening image %d (size %d): %w", i, img.Size, err)
			}
			defer rc.Close()

			data, err := io.ReadAll(rc)
			if err != nil {
				return fmt.Errorf("reading image %d (size %d): %w", i, img.Size, err)
			}
			payloads[i] = data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, data := range payloads {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing image %d: %w", i, err)
		}
		options.log().Debug("wrote image payload",
			"index", i, "size", images[i].Size, "bytes", len(data))
	}
	return nil
}
