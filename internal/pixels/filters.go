// Filters perform color manipulation on raw pixel buffers
package pixels

import (
	"errors"
	"math"

	"github.com/anas-shakeel/bmp24/internal/utils"
)

// Inverts (negates) every pixel of the buffer in-place
func Invert(buf []byte) {
	for i := 0; i+3 <= len(buf); i += BytesPerPixel {
		buf[i] = 255 - buf[i]
		buf[i+1] = 255 - buf[i+1]
		buf[i+2] = 255 - buf[i+2]
	}
}

// Converts a buffer to Black-and-White
func Grayscale(buf []byte) {
	for i := 0; i+3 <= len(buf); i += BytesPerPixel {
		// Find the average value for pixel
		avg := byte(utils.Average(int(buf[i]), int(buf[i+1]), int(buf[i+2])))

		buf[i], buf[i+1], buf[i+2] = avg, avg, avg
	}
}

// Converts a buffer to Black-and-White (with ITU-R 601-2 Luma Transform)
func GrayscaleLuma(buf []byte) {
	for i := 0; i+3 <= len(buf); i += BytesPerPixel {
		b, g, r := int(buf[i]), int(buf[i+1]), int(buf[i+2])
		L := byte(r*299/1000 + g*587/1000 + b*114/1000)

		buf[i], buf[i+1], buf[i+2] = L, L, L
	}
}

// Adjusts the Brightness of a buffer in-place.
//
// method can be "add" (adds value to each channel) or "multiply" (multiplies each channel by value).
// Pixel values are clipped to [0, 255].
func Brightness(buf []byte, factor float64, method string) error {
	type Operation func(x, y float64) float64
	var operation Operation

	// Select an operation of brightness (additive or multiplicative)
	switch method {
	case "add":
		operation = func(x, y float64) float64 {
			return x + y
		}
	case "multiply":
		operation = func(x, y float64) float64 {
			return x * y
		}
	default:
		return errors.New("invalid method: method must be add or multiply")
	}

	// Apply brightness (or darkness)
	for i := 0; i+3 <= len(buf); i += BytesPerPixel {
		for c := i; c < i+3; c++ {
			buf[c] = clip(operation(float64(buf[c]), factor))
		}
	}

	return nil
}

// Adjusts the Contrast of a buffer in-place.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(buf []byte, factor float64) {
	// Compute mean for each channel (B, G, R)
	var sum [3]int
	var total int
	for i := 0; i+3 <= len(buf); i += BytesPerPixel {
		sum[0] += int(buf[i])
		sum[1] += int(buf[i+1])
		sum[2] += int(buf[i+2])
		total++
	}
	if total == 0 {
		return
	}
	var mean [3]float64
	for c := range mean {
		mean[c] = float64(sum[c] / total)
	}

	// Apply contrast
	for i := 0; i+3 <= len(buf); i += BytesPerPixel {
		for c := range 3 {
			buf[i+c] = clip(float64(buf[i+c])*factor + (1-factor)*mean[c])
		}
	}
}

// Clips v to [0, 255]
func clip(v float64) byte {
	return byte(math.Min(math.Max(v, 0), 255))
}

// Applies a filter by name: none, invert, grayscale or luma
func Apply(buf []byte, name string) error {
	switch name {
	case "", "none":
	case "invert":
		Invert(buf)
	case "grayscale":
		Grayscale(buf)
	case "luma":
		GrayscaleLuma(buf)
	default:
		return errors.New("invalid filter: filter must be none, invert, grayscale or luma")
	}
	return nil
}
