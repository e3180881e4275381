// Package codec converts between raster image files and pixel canvases.
//
// Decoded images become *canvas.Canvas[color.NRGBA]. Fully transparent
// pixels decode as open cells and open cells encode as fully transparent
// pixels, so masks survive a round trip through formats with alpha.
//
// Supported formats:
//   - png, gif, jpeg: standard library
//   - bmp, tiff: golang.org/x/image
//   - webp: golang.org/x/image, decode only
package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
)

// Pixels is a canvas of straight-alpha RGBA pixels.
type Pixels = canvas.Canvas[color.NRGBA]

// Format names accepted by Encode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)

// JPEGQuality is the quality used when encoding JPEG.
const JPEGQuality = 92

var extensions = map[string]string{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

// FormatFromPath returns the format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unrecognised image extension %q", ext)
}

// FromImage copies img into a new canvas.
func FromImage(img image.Image) *Pixels {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	size := canvas.Size{Width: b.Dx(), Length: b.Dy()}
	c := canvas.FromEmptySize[color.NRGBA](size)
	for i := range size.Area() {
		px := color.NRGBA{
			R: nrgba.Pix[4*i],
			G: nrgba.Pix[4*i+1],
			B: nrgba.Pix[4*i+2],
			A: nrgba.Pix[4*i+3],
		}
		if px.A != 0 {
			c.SetAt(i, canvas.Assigned(px))
		}
	}
	return c
}

// ToImage renders c as an image. Open cells become transparent.
func ToImage(c *Pixels) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width(), c.Length()))
	for i, cell := range c.Cells() {
		if px, ok := cell.Value(); ok {
			copy(img.Pix[4*i:4*i+4], []uint8{px.R, px.G, px.B, px.A})
		}
	}
	return img
}

// Decode reads an image in any supported format and returns it with the
// format name.
func Decode(r io.Reader) (*Pixels, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode image")
	}
	return FromImage(img), format, nil
}

// Encode writes c to w in format.
func Encode(w io.Writer, c *Pixels, format string) error {
	img := ToImage(c)
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatWebP:
		return errors.New(errors.ErrCodeUnsupported, "webp encoding is not supported")
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown image format %q", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return nil
}

// Load decodes the image at path.
func Load(path string) (*Pixels, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	c, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Save encodes c to path in the format implied by its extension.
func Save(path string, c *Pixels) (err error) {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == FormatWebP {
		return errors.New(errors.ErrCodeUnsupported, "webp encoding is not supported")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", path)
		}
	}()
	return Encode(f, c, format)
}

// Scale shrinks c with nearest-neighbour sampling so that it is at most
// maxWidth wide, keeping the aspect ratio. Canvases already narrow enough
// are returned as a clone.
func Scale(c *Pixels, maxWidth int) *Pixels {
	if maxWidth <= 0 || c.Width() <= maxWidth {
		return c.Clone()
	}
	length := max(1, c.Length()*maxWidth/c.Width())
	dst := image.NewNRGBA(image.Rect(0, 0, maxWidth, length))
	src := ToImage(c)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}
