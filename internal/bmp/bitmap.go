// bmp package implements a writer for 24bit uncompressed bitmaps
package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/dustin/go-humanize"
)

// Lifecycle of an ImageInfo
type State int

const (
	StateNew State = iota
	StateConfigured
	StateEmitted
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateConfigured:
		return "configured"
	case StateEmitted:
		return "emitted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ImageInfo owns both headers and the pixel bytes of one bitmap file
type ImageInfo struct {
	Filename  string
	Header    FileHeader
	DibHeader DibHeader
	Pixels    []byte
	state     State
}

// Creates a bitmap of the given dimensions with an empty pixel array
func NewImageInfo(width, height uint32) *ImageInfo {
	return &ImageInfo{
		Header:    NewFileHeader(),
		DibHeader: NewDibHeader(width, height),
	}
}

// Returns the current lifecycle state
func (b *ImageInfo) State() State {
	return b.state
}

// Computes the size of the pixel array for the given dimensions.
//
// Every pixel is counted as 4 bytes (3 bytes BGR + 1 byte of padding),
// so the result is width*height*4, not the padded 3-byte stride.
func imageSize(width, height uint32) (uint32, error) {
	count := uint64(width) * uint64(height)
	if count > math.MaxUint64/4 {
		// width*height*4 doesn't even fit in 64 bits
		return 0, &InvalidImageSizeError{Size: math.MaxUint64}
	}
	size := count * 4
	if size > math.MaxUint32 {
		return 0, &InvalidImageSizeError{Size: size}
	}
	if err := checkImageSize(size); err != nil {
		return 0, err
	}
	return uint32(size), nil
}

// Image size must be divisible by 2
func checkImageSize(size uint64) error {
	if size%2 != 0 {
		return &InvalidImageSizeError{Size: size}
	}
	return nil
}

// Fills in the derived header fields and stores the pixel bytes.
//
// The pixels are kept as given: they are neither copied nor checked
// against the image size. Configure may be called again before Emit.
func (b *ImageInfo) Configure(pixels []byte) error {
	size, err := imageSize(b.DibHeader.Width, b.DibHeader.Height)
	if err != nil {
		return err
	}

	// The file size counts the bytes that are actually written
	if uint64(len(pixels)) > math.MaxUint32-PixelOffset {
		return &InvalidImageSizeError{Size: uint64(len(pixels))}
	}

	// Update the Metadata
	b.DibHeader.Assign(Resolution, Resolution, size, DibHeaderSize, BitsPerPixel)
	b.Header.Assign(PixelOffset+uint32(len(pixels)), PixelOffset)

	b.Pixels = pixels
	b.state = StateConfigured

	return nil
}

// Writes the file header, the DIB header and the pixel bytes to w.
// Implements io.WriterTo.
func (b *ImageInfo) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, chunk := range [][]byte{b.Header.Bytes(), b.DibHeader.Bytes(), b.Pixels} {
		n, err := w.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Saves the bitmap onto local disk. Existing files are never overwritten.
//
// A write failure halfway through leaves a partial file behind; it's up
// to the caller to remove it.
func (b *ImageInfo) Emit(filename string) error {
	// Refuse to overwrite
	if _, err := os.Lstat(filename); err == nil {
		return b.existsError(filename)
	}

	// O_EXCL: another process may have created the file since the check
	newBitmap, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL|os.O_TRUNC, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return b.existsError(filename)
		}
		return &IoError{Op: "create", Path: filename, Err: err}
	}

	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(newBitmap)

	if err := b.writeChunk(w, filename, "write file header", b.Header.Bytes()); err != nil {
		newBitmap.Close()
		return err
	}
	if err := b.writeChunk(w, filename, "write dib header", b.DibHeader.Bytes()); err != nil {
		newBitmap.Close()
		return err
	}
	if err := b.writeChunk(w, filename, "write pixels", b.Pixels); err != nil {
		newBitmap.Close()
		return err
	}

	// Write buffer to disk
	if err := w.Flush(); err != nil {
		newBitmap.Close()
		return &IoError{Op: "flush", Path: filename, Err: err}
	}
	if err := newBitmap.Close(); err != nil {
		return &IoError{Op: "close", Path: filename, Err: err}
	}

	b.Filename = filename
	b.state = StateEmitted

	return nil
}

func (b *ImageInfo) writeChunk(w io.Writer, filename, op string, chunk []byte) error {
	if _, err := w.Write(chunk); err != nil {
		return &IoError{Op: op, Path: filename, Err: err}
	}
	return nil
}

func (b *ImageInfo) existsError(filename string) error {
	return &FileExistsError{
		Path:      filename,
		Message:   FileExistsMessage,
		Header:    b.Header,
		DibHeader: b.DibHeader,
	}
}

// Descriptor of the image (headers, pixel count and state)
func (b *ImageInfo) String() string {
	return fmt.Sprintf("ImageInfo{Filename: %q, %v, %v, Pixels: %d bytes, State: %v}",
		b.Filename, b.Header, b.DibHeader, len(b.Pixels), b.state)
}

// Print the Metadata of the bitmap. (in human-readable format)
func (b *ImageInfo) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprintf(w, "Filesize: \t%v (%v bytes)\n", humanize.IBytes(uint64(b.Header.Size)), b.Header.Size)
	fmt.Fprintf(w, "Width: \t\t%v px\n", b.DibHeader.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", b.DibHeader.Height)
	fmt.Fprintf(w, "BitCount: \t%vbits\n", b.DibHeader.BitCount)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n", b.Header.OffBits)
	fmt.Fprintf(w, "ImageSize: \t%v bytes\n", b.DibHeader.SizeImage)
	fmt.Fprintf(w, "PixelBytes: \t%v bytes\n", len(b.Pixels))
	fmt.Fprintf(w, "Resolution: \t%v x %v px/m\n", b.DibHeader.XPixelsPerM, b.DibHeader.YPixelsPerM)
}
