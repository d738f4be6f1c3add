package picture

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"regexp"

	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var dataURLPrefix = regexp.MustCompile(`^data:image/[^;]+;base64,`)

// DecodeImage decodes one image as returned by the service, with or without a
// data URL prefix.
func DecodeImage(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(dataURLPrefix.ReplaceAllString(encoded, ""))
}

// fitWithin scales w x h down so neither side exceeds limit, keeping the aspect
// ratio. Images that already fit are left alone.
func fitWithin(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}

	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return w, h
}

// Thumbnail downsamples data to fit in a limit x limit box and re-encodes it as
// JPEG so inline chat history stays small.
func Thumbnail(data []byte, limit int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := fitWithin(bounds.Dx(), bounds.Dy(), limit)
	if w != bounds.Dx() || h != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 75}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
