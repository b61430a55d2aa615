// internals/helpers/oss/image_webp.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

var ErrUnsupportedFormat = fmt.Errorf("formato de imagem não suportado")

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW     int     // batas lebar (resize keep-aspect)
	MaxH     int     // batas tinggi
	Square   int     // >0: center-crop to a square of this size (avatars)
	Quality  float32 // used when TargetKB = 0
	TargetKB int     // 0 = off
	MinQ     float32
	MaxQ     float32
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

func DefaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:     envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:     envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality:  envFloat("IMAGE_WEBP_QUALITY", 80),
		TargetKB: envInt("IMAGE_WEBP_TARGET_KB", 0),
		MinQ:     envFloat("IMAGE_WEBP_MIN_Q", 45),
		MaxQ:     envFloat("IMAGE_WEBP_MAX_Q", 85),
	}
}

// AvatarWebPOptions: square 256px, small target size.
func AvatarWebPOptions() WebPOptions {
	opt := DefaultWebPOptionsFromEnv()
	opt.Square = envInt("AVATAR_SIZE", 256)
	opt.TargetKB = envInt("AVATAR_TARGET_KB", 40)
	return opt
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	kind := ""
	switch {
	case strings.Contains(ct, "jpeg"):
		kind = "jpeg"
	case strings.Contains(ct, "png"):
		kind = "png"
	case strings.Contains(ct, "webp"):
		kind = "webp"
	default:
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			kind = "jpeg"
		case ".png":
			kind = "png"
		case ".webp":
			kind = "webp"
		}
	}

	r := bytes.NewReader(all)
	switch kind {
	case "jpeg":
		return jpeg.Decode(r)
	case "png":
		return png.Decode(r)
	case "webp":
		return webp.Decode(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

/* =======================================================================
   Resize helpers
======================================================================= */

// downscaleIfNeeded keeps the aspect ratio (CatmullRom).
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Max(1, math.Round(float64(w)*scale)))
	nh := int(math.Max(1, math.Round(float64(h)*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// SquareCrop center-crops and resizes to size x size.
func SquareCrop(src image.Image, size int) image.Image {
	if size <= 0 {
		return src
	}
	return imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos)
}

/* =======================================================================
   Encode WebP
   - TargetKB > 0 → binary search quality hingga <= target
   - TargetKB = 0 → encode sekali dengan Quality
======================================================================= */

func encodeQ(img image.Image, q float32) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(img, q)
	}

	target := opt.TargetKB * 1024
	low, high := opt.MinQ, opt.MaxQ
	if low <= 0 {
		low = 45
	}
	if high <= 0 {
		high = 85
	}
	if low > high {
		low, high = high, low
	}

	var best []byte
	for i := 0; i < 7; i++ {
		q := (low + high) / 2
		data, err := encodeQ(img, q)
		if err != nil {
			return nil, err
		}
		if len(data) <= target {
			best = data
			low = q
		} else {
			high = q
		}
	}
	if best == nil {
		return encodeQ(img, opt.MinQ)
	}
	return best, nil
}

// ConvertToWebP: decode → crop/resize → encode webp
func ConvertToWebP(all []byte, filename string, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	if opt.Square > 0 {
		img = SquareCrop(img, opt.Square)
	} else {
		img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)
	}
	return encodeToWebP(img, opt)
}
