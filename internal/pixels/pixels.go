// Pixels builds raw pixel buffers to hand over to bmp.ImageInfo.Configure
package pixels

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/anas-shakeel/bmp24/internal/utils"
)

// Bytes per pixel in a buffer: B, G, R and one byte of padding
const BytesPerPixel = 4

type Pixel struct {
	B, G, R byte
}

// Returns the Pixels in bytes as BGR (Blue, Green, Red)
func (p *Pixel) BytesBGR() []byte {
	return []byte{p.B, p.G, p.R}
}

// Parses a color written as "rrggbb" or "#rrggbb"
func ParseHex(s string) (Pixel, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(raw) != 3 {
		return Pixel{}, fmt.Errorf("invalid color %q: want rrggbb", s)
	}
	return Pixel{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// Creates a zeroed (black) buffer for width x height pixels
func New(width, height int) []byte {
	return make([]byte, width*height*BytesPerPixel)
}

// Sets pixel (x, y) of a buffer that is width pixels wide
func Set(buf []byte, width, x, y int, p Pixel) {
	i := (y*width + x) * BytesPerPixel
	copy(buf[i:i+3], p.BytesBGR())
}

// Returns pixel (x, y) of a buffer that is width pixels wide
func At(buf []byte, width, x, y int) Pixel {
	i := (y*width + x) * BytesPerPixel
	return Pixel{B: buf[i], G: buf[i+1], R: buf[i+2]}
}

// Fills the whole buffer with a single color
func Solid(width, height int, p Pixel) []byte {
	buf := New(width, height)
	for y := range height {
		for x := range width {
			Set(buf, width, x, y, p)
		}
	}
	return buf
}

// Red grows left to right, green grows along the rows
func Gradient(width, height int) []byte {
	buf := New(width, height)
	for y := range height {
		for x := range width {
			Set(buf, width, x, y, Pixel{
				R: scale(x, width),
				G: scale(y, height),
				B: 128,
			})
		}
	}
	return buf
}

// Alternating squares of size cell
func Checker(width, height, cell int, a, b Pixel) []byte {
	if cell <= 0 {
		cell = 1
	}
	buf := New(width, height)
	for y := range height {
		for x := range width {
			p := a
			if (x/cell+y/cell)%2 == 1 {
				p = b
			}
			Set(buf, width, x, y, p)
		}
	}
	return buf
}

// The 13 bytes the original demo program wrote for a 3x3 image
func Demo() []byte {
	return []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 255, 0, 0}
}

// Maps i in [0, n) onto [0, 255]
func scale(i, n int) byte {
	if n <= 1 {
		return 0
	}
	return byte(i * 255 / (n - 1))
}

// Print the buffer in terminal. Use for small images only
func Print(w io.Writer, buf []byte, width, height int) {
	for y := range height {
		for x := range width {
			if (y*width+x)*BytesPerPixel+3 > len(buf) {
				break
			}
			p := At(buf, width, x, y)
			fmt.Fprint(w, utils.ColoredBlock("  ", int(p.R), int(p.G), int(p.B)))
		}
		fmt.Fprintln(w)
	}
}
