package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const profileMaxDim = 512

// encodeProfileWebP decodes a JPEG/PNG/WebP image, scales it down so its
// longest side is at most profileMaxDim, and re-encodes it as WebP.
func encodeProfileWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("media: unsupported or corrupt image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > profileMaxDim || h > profileMaxDim {
		if w >= h {
			h = h * profileMaxDim / w
			w = profileMaxDim
		} else {
			w = w * profileMaxDim / h
			h = profileMaxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("media: webp encoding failed: %w", err)
	}
	return buf.Bytes(), nil
}

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}
