package ico

// AllowedSizes lists the edge lengths accepted into a container, in
// ascending order.
var AllowedSizes = []int{16, 24, 32, 48, 64, 128, 256}

// Filter returns the images whose edge length is one of AllowedSizes,
// preserving relative order. Images sharing a size are all kept. A nil or
// empty input yields an empty slice.
func Filter(images []Image) []Image {
	out := make([]Image, 0, len(images))
	for _, img := range images {
		if sizeAllowed(img.Size) {
			out = append(out, img)
		}
	}
	return out
}

func sizeAllowed(size int) bool {
	for _, s := range AllowedSizes {
		if size == s {
			return true
		}
	}
	return false
}
