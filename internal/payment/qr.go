package payment

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MinQRSize = 64
	MaxQRSize = 1024
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

var (
	ErrUnknownFormat = errors.New("unknown image format")
	ErrInvalidSize   = errors.New("invalid image size")
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatWebP:
		return FormatWebP, nil
	}
	return "", ErrUnknownFormat
}

func (f Format) ContentType() string {
	if f == FormatWebP {
		return "image/webp"
	}
	return "image/png"
}

// QR is the lounge's UPI payment code, decoded once at startup.
type QR struct {
	img image.Image
}

func NewQR(img image.Image) *QR {
	return &QR{img: img}
}

func LoadQR(path string) (*QR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewQR(img), nil
}

// Render writes the code at size x size pixels, or at its native size when
// size is 0. Nearest-neighbour scaling keeps module edges sharp.
func (q *QR) Render(w io.Writer, size int, format Format) error {
	img := q.img

	if size != 0 {
		if size < MinQRSize || size > MaxQRSize {
			return ErrInvalidSize
		}
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), q.img, q.img.Bounds(), draw.Src, nil)
		img = dst
	}

	switch format {
	case FormatWebP:
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	case FormatPNG:
		return png.Encode(w, img)
	}
	return ErrUnknownFormat
}

// Details is what the booking page shows next to the QR code.
type Details struct {
	UPIID string `json:"upi_id"`
	Payee string `json:"payee"`
}
