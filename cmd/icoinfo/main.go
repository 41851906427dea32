// Inspection tool for ICO containers
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-ico/ico"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: icoinfo <file.ico>")
		os.Exit(1)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("ERROR: Failed to read file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== %s (%d bytes) ===\n\n", path, len(data))

	c, err := ico.Decode(data)
	if err != nil {
		fmt.Printf("ERROR: Failed to decode container: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Type:  %s\n", typeName(c.Header.Type))
	fmt.Printf("Count: %d\n\n", c.Header.Count)

	for i, e := range c.Entries {
		fmt.Printf("Entry %d:\n", i)
		fmt.Printf("  Dimensions: %dx%d\n", e.Dim(), e.Dim())
		fmt.Printf("  Planes:     %d\n", e.Planes)
		fmt.Printf("  BitCount:   %d\n", e.BitCount)
		fmt.Printf("  Payload:    %d bytes at offset %d (%s)\n",
			e.Size, e.Offset, payloadKind(c, data, i))
	}
}

func typeName(t ico.Type) string {
	switch t {
	case ico.TypeIcon:
		return "icon"
	case ico.TypeCursor:
		return "cursor"
	default:
		return fmt.Sprintf("unknown (%d)", uint16(t))
	}
}

func payloadKind(c *ico.Container, data []byte, i int) string {
	p, err := c.Payload(data, i)
	if err != nil {
		return fmt.Sprintf("OUT OF BOUNDS: %v", err)
	}
	if bytes.HasPrefix(p, pngSignature) {
		return "PNG"
	}
	return "DIB/unknown"
}
