// BMP-specific structs and types
package bmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	FileHeaderSize = 14                            // Size of BitmapFileHeader on disk
	DibHeaderSize  = 40                            // Size of BitmapInfoHeader on disk
	PixelOffset    = FileHeaderSize + DibHeaderSize // Pixel array starts right after both headers

	BitsPerPixel = 24       // Only 24bit uncompressed bitmaps are written
	Resolution   = 0x002E23 // Pixels-per-metre (roughly 72 DPI)
	CompressRGB  = 0        // BI_RGB (no compression)
)

// The FileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// Returns a file header with the "BM" signature and zeroed size fields
func NewFileHeader() FileHeader {
	return FileHeader{Type: [2]byte{0x42, 0x4d}}
}

// Sets the file size and the offset of the pixel array
func (h *FileHeader) Assign(fileSize, offBits uint32) {
	h.Size = fileSize
	h.OffBits = offBits
}

// Returns the 14 bytes of the header (little-endian)
func (h FileHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, FileHeaderSize))
	// Writes to a bytes.Buffer can't fail
	_ = binary.Write(buf, binary.LittleEndian, h)
	return buf.Bytes()
}

func (h FileHeader) String() string {
	return fmt.Sprintf("FileHeader{Type: %q, Size: %d, OffBits: %d}", h.Type[:], h.Size, h.OffBits)
}

// The DibHeader (BITMAPINFOHEADER) structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfoheader
type DibHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           uint32 // The width of the bitmap, in pixels.
	Height          uint32 // The height of the bitmap, in pixels
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     uint32 // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     uint32 // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Returns a DIB header for the given dimensions. Derived fields stay zero
// until Assign is called.
func NewDibHeader(width, height uint32) DibHeader {
	return DibHeader{Width: width, Height: height, Planes: 1}
}

// Sets resolutions, image size, header size and bit count
func (h *DibHeader) Assign(xRes, yRes, sizeImage, size uint32, bitCount uint16) {
	h.XPixelsPerM = xRes
	h.YPixelsPerM = yRes
	h.SizeImage = sizeImage
	h.Size = size
	h.BitCount = bitCount
}

// Returns the 40 bytes of the header (little-endian)
func (h DibHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, DibHeaderSize))
	_ = binary.Write(buf, binary.LittleEndian, h)
	return buf.Bytes()
}

func (h DibHeader) String() string {
	return fmt.Sprintf("DibHeader{Size: %d, Width: %d, Height: %d, Planes: %d, BitCount: %d, Compression: %d, SizeImage: %d, XPixelsPerM: %d, YPixelsPerM: %d, ColorsUsed: %d, ColorsImportant: %d}",
		h.Size, h.Width, h.Height, h.Planes, h.BitCount, h.Compression, h.SizeImage,
		h.XPixelsPerM, h.YPixelsPerM, h.ColorsUsed, h.ColorsImportant)
}
