package pixels

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	p, err := ParseHex("#ff8001")
	if err != nil {
		t.Fatal(err)
	}
	if p != (Pixel{R: 0xff, G: 0x80, B: 0x01}) {
		t.Errorf("ParseHex = %+v", p)
	}
	if !bytes.Equal(p.BytesBGR(), []byte{0x01, 0x80, 0xff}) {
		t.Errorf("BytesBGR = % x", p.BytesBGR())
	}
	for _, bad := range []string{"", "fff", "zzzzzz", "ff00ff00"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}

func TestSolid(t *testing.T) {
	buf := Solid(3, 2, Pixel{R: 1, G: 2, B: 3})
	if len(buf) != 3*2*BytesPerPixel {
		t.Fatalf("len = %d", len(buf))
	}
	want := bytes.Repeat([]byte{3, 2, 1, 0}, 6)
	if !bytes.Equal(buf, want) {
		t.Errorf("Solid = % x, want % x", buf, want)
	}
}

func TestGradient(t *testing.T) {
	buf := Gradient(3, 3)
	if got := At(buf, 3, 0, 0); got.R != 0 || got.G != 0 || got.B != 128 {
		t.Errorf("top-left = %+v", got)
	}
	if got := At(buf, 3, 2, 2); got.R != 255 || got.G != 255 {
		t.Errorf("bottom-right = %+v", got)
	}
	if got := Gradient(1, 1); At(got, 1, 0, 0).R != 0 {
		t.Errorf("1x1 gradient = % x", got)
	}
}

func TestChecker(t *testing.T) {
	a, b := Pixel{R: 255}, Pixel{B: 255}
	buf := Checker(4, 4, 2, a, b)
	cases := []struct {
		x, y int
		want Pixel
	}{
		{0, 0, a}, {1, 1, a}, {2, 0, b}, {0, 2, b}, {3, 3, a},
	}
	for _, c := range cases {
		if got := At(buf, 4, c.x, c.y); got != c.want {
			t.Errorf("At(%d,%d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}
	// cell <= 0 falls back to 1
	if got := At(Checker(2, 1, 0, a, b), 2, 1, 0); got != b {
		t.Errorf("cell 0: %+v", got)
	}
}

func TestDemo(t *testing.T) {
	d := Demo()
	if len(d) != 13 || d[10] != 255 {
		t.Errorf("Demo = %v", d)
	}
}

func TestFilters(t *testing.T) {
	buf := []byte{10, 20, 30, 0, 255, 0, 0, 0}

	inv := append([]byte(nil), buf...)
	Invert(inv)
	if !bytes.Equal(inv, []byte{245, 235, 225, 0, 0, 255, 255, 0}) {
		t.Errorf("Invert = %v", inv)
	}

	gray := append([]byte(nil), buf...)
	Grayscale(gray)
	if !bytes.Equal(gray, []byte{20, 20, 20, 0, 85, 85, 85, 0}) {
		t.Errorf("Grayscale = %v", gray)
	}

	luma := append([]byte(nil), buf...)
	GrayscaleLuma(luma)
	// r=30 g=20 b=10 -> 8 + 11 + 1 = 20; pure blue -> 29
	if !bytes.Equal(luma, []byte{20, 20, 20, 0, 29, 29, 29, 0}) {
		t.Errorf("GrayscaleLuma = %v", luma)
	}
}

func TestApply(t *testing.T) {
	buf := []byte{1, 2, 3, 0}
	if err := Apply(buf, "none"); err != nil || !bytes.Equal(buf, []byte{1, 2, 3, 0}) {
		t.Errorf("Apply(none) = %v, %v", buf, err)
	}
	if err := Apply(buf, "invert"); err != nil || buf[0] != 254 {
		t.Errorf("Apply(invert) = %v, %v", buf, err)
	}
	if err := Apply(buf, "sepia"); err == nil {
		t.Error("Apply(sepia) should fail")
	}
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	Print(&out, Solid(2, 2, Pixel{R: 1, G: 2, B: 3}), 2, 2)
	if n := strings.Count(out.String(), "\033[48;2;1;2;3m"); n != 4 {
		t.Errorf("got %d blocks, want 4", n)
	}
	if n := strings.Count(out.String(), "\n"); n != 2 {
		t.Errorf("got %d rows, want 2", n)
	}

	// Short buffers print what they have
	out.Reset()
	Print(&out, Demo(), 3, 3)
	if n := strings.Count(out.String(), "\033[48;2;"); n != 3 {
		t.Errorf("got %d blocks, want 3", n)
	}
}

func TestBrightness(t *testing.T) {
	buf := []byte{10, 200, 100, 7, 0, 0, 255, 9}

	add := append([]byte(nil), buf...)
	if err := Brightness(add, 60, "add"); err != nil {
		t.Fatal(err)
	}
	// Clipped at 255, padding bytes untouched
	if !bytes.Equal(add, []byte{70, 255, 160, 7, 60, 60, 255, 9}) {
		t.Errorf("Brightness(add) = %v", add)
	}

	mul := append([]byte(nil), buf...)
	if err := Brightness(mul, 0.5, "multiply"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(mul, []byte{5, 100, 50, 7, 0, 0, 127, 9}) {
		t.Errorf("Brightness(multiply) = %v", mul)
	}

	dark := append([]byte(nil), buf...)
	if err := Brightness(dark, -50, "add"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dark, []byte{0, 150, 50, 7, 0, 0, 205, 9}) {
		t.Errorf("Brightness(add -50) = %v", dark)
	}

	if err := Brightness(buf, 1, "gamma"); err == nil {
		t.Error("Brightness(gamma) should fail")
	}
}

func TestContrast(t *testing.T) {
	// Channel means: B=100, G=100, R=100
	buf := []byte{50, 100, 150, 1, 150, 100, 50, 2}
	Contrast(buf, 2)
	if !bytes.Equal(buf, []byte{0, 100, 200, 1, 200, 100, 0, 2}) {
		t.Errorf("Contrast(2) = %v", buf)
	}

	flat := []byte{50, 100, 150, 0, 150, 100, 50, 0}
	Contrast(flat, 0)
	if !bytes.Equal(flat, []byte{100, 100, 100, 0, 100, 100, 100, 0}) {
		t.Errorf("Contrast(0) = %v", flat)
	}

	// Empty and short buffers have no pixels to average
	Contrast(nil, 2)
	short := []byte{1, 2}
	Contrast(short, 2)
	if !bytes.Equal(short, []byte{1, 2}) {
		t.Errorf("short buffer changed: %v", short)
	}
}
