package bmp

import (
	"errors"
	"fmt"
	"io/fs"
)

// Message carried by FileExistsError
const FileExistsMessage = "File Already Exists"

var (
	ErrInvalidImageSize = errors.New("invalid image size")
	ErrFileExists       = fs.ErrExist
)

// IoError wraps a failure while creating or writing the bitmap file
type IoError struct {
	Op   string // What was being done (create, write header, ...)
	Path string
	Err  error // The system error, untouched
}

func (e *IoError) Error() string {
	return fmt.Sprintf("bmp: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// FileExistsError is returned by Emit when the target path is already taken.
// Both headers are copies taken at the moment of the failure.
type FileExistsError struct {
	Path      string
	Message   string
	Header    FileHeader
	DibHeader DibHeader
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("bmp: %s: %s (%v, %v)", e.Path, e.Message, e.Header, e.DibHeader)
}

func (e *FileExistsError) Unwrap() error {
	return ErrFileExists
}

// InvalidImageSizeError is returned by Configure when the computed
// image size is odd or doesn't fit the 32-bit size fields.
type InvalidImageSizeError struct {
	Size uint64
}

func (e *InvalidImageSizeError) Error() string {
	return fmt.Sprintf("bmp: invalid image size: %d", e.Size)
}

func (e *InvalidImageSizeError) Unwrap() error {
	return ErrInvalidImageSize
}
