// bmp24 writes 24bit uncompressed bitmap files from generated pixel buffers
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"

	"github.com/anas-shakeel/bmp24/internal/bmp"
	"github.com/anas-shakeel/bmp24/internal/logging"
	"github.com/anas-shakeel/bmp24/internal/pixels"
	"github.com/anas-shakeel/bmp24/internal/utils"
)

const version = "0.2.0"

var CLI struct {
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (text, json)"`

	Write   WriteCmd   `cmd:"" default:"withargs" help:"Generate pixels and write them to a bitmap file"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// WriteCmd generates a pixel buffer and emits it as a bitmap
type WriteCmd struct {
	Width   uint32 `default:"3" help:"Image width in pixels"`
	Height  uint32 `default:"3" help:"Image height in pixels"`
	Pattern string `enum:"demo,solid,gradient,checker" default:"demo" help:"Pixel pattern (demo, solid, gradient, checker)"`
	Color   string `default:"ff0000" help:"Color for solid and checker patterns (rrggbb)"`
	Cell    int    `default:"8" help:"Square size of the checker pattern"`
	Filter  string `enum:"none,invert,grayscale,luma" default:"none" help:"Filter applied to the pixels"`

	Brightness       float64 `default:"0" help:"Brightness factor (0 leaves brightness unchanged)"`
	BrightnessMethod string  `name:"brightness-method" enum:"add,multiply" default:"add" help:"How the brightness factor is applied (add, multiply)"`
	Contrast         float64 `default:"1" help:"Contrast factor (0 or 1 leaves contrast unchanged)"`

	Force   bool   `help:"Remove the output file first if it exists"`
	Preview bool   `help:"Print the pixels in the terminal before writing"`
	Output  string `arg:"" optional:"" default:"out.bmp" type:"path" help:"Output file"`
}

func (c *WriteCmd) Run() error {
	img, digest, err := c.write(os.Stdout)
	if err != nil {
		logging.Error("write failed", "path", c.Output, "error", err)
		return err
	}

	logging.Info("bitmap written", "path", img.Filename, "size", img.Header.Size, "blake3", digest)
	fmt.Println(img)
	img.PrintMetadata(os.Stdout)
	fmt.Printf("BLAKE3: \t%s\n", digest)
	return nil
}

// Builds, configures and emits the bitmap. Returns the emitted image and
// the BLAKE3 digest of its bytes.
func (c *WriteCmd) write(out io.Writer) (*bmp.ImageInfo, string, error) {
	// Validate the dimensions before allocating any pixels
	img := bmp.NewImageInfo(c.Width, c.Height)
	if err := img.Configure(nil); err != nil {
		return nil, "", err
	}

	buf, err := c.pixels()
	if err != nil {
		return nil, "", err
	}
	if err := c.adjust(buf); err != nil {
		return nil, "", err
	}
	if c.Preview {
		pixels.Print(out, buf, int(c.Width), int(c.Height))
	}

	if err := img.Configure(buf); err != nil {
		return nil, "", err
	}
	logging.Debug("bitmap configured", "width", c.Width, "height", c.Height,
		"image_size", img.DibHeader.SizeImage, "pixel_bytes", len(buf))

	if c.Force {
		if err := os.Remove(c.Output); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
	}

	if err := img.Emit(c.Output); err != nil {
		return nil, "", err
	}

	digest, err := utils.Digest(img)
	if err != nil {
		return nil, "", err
	}
	return img, digest, nil
}

// Applies the filter, brightness and contrast flags to buf
func (c *WriteCmd) adjust(buf []byte) error {
	if err := pixels.Apply(buf, c.Filter); err != nil {
		return err
	}
	if c.Brightness != 0 {
		if err := pixels.Brightness(buf, c.Brightness, c.BrightnessMethod); err != nil {
			return err
		}
	}
	if c.Contrast != 0 && c.Contrast != 1 {
		pixels.Contrast(buf, c.Contrast)
	}
	return nil
}

func (c *WriteCmd) pixels() ([]byte, error) {
	w, h := int(c.Width), int(c.Height)

	switch c.Pattern {
	case "demo", "":
		return pixels.Demo(), nil
	case "gradient":
		return pixels.Gradient(w, h), nil
	}

	color, err := pixels.ParseHex(c.Color)
	if err != nil {
		return nil, err
	}
	switch c.Pattern {
	case "solid":
		return pixels.Solid(w, h, color), nil
	case "checker":
		return pixels.Checker(w, h, c.Cell, color, pixels.Pixel{}), nil
	}
	return nil, fmt.Errorf("unknown pattern %q", c.Pattern)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("bmp24 version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bmp24"),
		kong.Description("Writes 24bit uncompressed BMP files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(CLI.LogFormat)
	ctx.FatalIfErrorf(err)
	logging.InitLogger(os.Stderr, level, format)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
