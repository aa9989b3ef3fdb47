package addon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

// placeholderPNG lazily encodes the 16x16 magenta texture used for every
// generated mob. png.Encode is deterministic for a fixed image, so the bytes
// are stable across runs.
var placeholderPNG = sync.OnceValue(func() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	magenta := color.NRGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, magenta)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding a fixed in-memory image cannot fail.
		panic(err)
	}
	return buf.Bytes()
})

// PlaceholderTexture returns the placeholder entity texture as PNG bytes.
func PlaceholderTexture() []byte {
	return placeholderPNG()
}
