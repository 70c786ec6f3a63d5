// Package avatar normaliza a foto de perfil: recorte quadrado central,
// redimensionamento para Size x Size e codificação em WebP.
package avatar

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
)

const (
	Size           = 256
	Quality        = 85
	ContentType    = "image/webp"
	MaxUploadBytes = 5 << 20
)

const CodeInvalidImage = "invalid_image"

// Normalize lê qualquer formato registrado (png, jpeg, gif, webp) e devolve
// o avatar já em WebP.
func Normalize(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidImage)
	}

	crop := squareCrop(src.Bounds())
	if crop.Empty() {
		return nil, httperr.ErrBusiness(CodeInvalidImage)
	}

	dst := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func squareCrop(b image.Rectangle) image.Rectangle {
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}

	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// Key muda a cada envio para não servir a foto anterior do cache.
func Key(userID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("avatars/%s/%d.webp", userID, at.Unix())
}
