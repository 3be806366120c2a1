// Package fun holds the novelty output: penguin facts, ASCII art, and
// image-to-ASCII conversion.
package fun

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"os"
	"strings"
)

var facts = []string{
	"Penguins are flightless birds that have adapted to life in the water.",
	"Emperor penguins can dive to depths of over 500 meters.",
	"Penguins spend up to 75% of their lives in the water.",
	"There are 18 species of penguins in the world.",
}

// RandomFact returns one penguin fact drawn from the given source.
func RandomFact(rng *rand.Rand) string {
	return facts[rng.Intn(len(facts))]
}

// Penguin is the ASCII mascot.
const Penguin = `
               _~_
              (o o)
             /  V  \
            /(  _  )\
              ^^ ^^

         Hello from Antarctica!
`

// Luminance ramp from dark to light, one glyph per ~25 levels.
var asciiChars = []byte{'.', ',', ':', ';', '+', '*', '?', '%', 'S', '#', '@'}

// fontAspect compensates for terminal glyphs being taller than wide.
const fontAspect = 0.55

// ImageToASCII renders an image file (JPEG or PNG) as ASCII art at the
// given character width.
func ImageToASCII(path string, width int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return "", fmt.Errorf("image has no pixels")
	}
	if width <= 0 {
		width = 100
	}
	height := int(float64(srcH) / float64(srcW) * float64(width) * fontAspect)
	if height < 1 {
		height = 1
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx := bounds.Min.X + x*srcW/width
			sy := bounds.Min.Y + y*srcH/height
			r, g, bl, _ := img.At(sx, sy).RGBA()
			// ITU-R 601 luma, scaled back to 0..255.
			gray := (299*r + 587*g + 114*bl) / 1000 >> 8
			idx := int(gray) / 25
			if idx >= len(asciiChars) {
				idx = len(asciiChars) - 1
			}
			b.WriteByte(asciiChars[idx])
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
