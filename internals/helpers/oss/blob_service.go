package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const MaxUploadSize = int64(5 * 1024 * 1024)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Images are always re-encoded to WebP before storage.
*/
type BlobService interface {
	UploadImage(ctx context.Context, dir, name string, fh *multipart.FileHeader, opt WebPOptions) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// NewBlobServiceFromEnv picks Aliyun OSS when configured, local disk otherwise.
func NewBlobServiceFromEnv() BlobService {
	if OSSConfigured() {
		svc, err := NewOSSServiceFromEnv(os.Getenv("ALI_OSS_PREFIX"))
		if err == nil {
			log.Println("[INFO] Upload de arquivos via Aliyun OSS")
			return &OSSBlobService{svc: svc}
		}
		log.Printf("[WARN] OSS indisponível, usando disco local: %v", err)
	}
	dir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if dir == "" {
		dir = "uploads"
	}
	base := strings.TrimSpace(os.Getenv("UPLOAD_PUBLIC_BASE"))
	if base == "" {
		base = "/uploads"
	}
	return NewLocalBlobService(dir, base)
}

// readImage enforces the size guard and returns the raw bytes.
func readImage(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Arquivo não encontrado")
	}
	if fh.Size > MaxUploadSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, fmt.Sprintf("Arquivo maior que %d MB", MaxUploadSize/1024/1024))
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func convertUpload(fh *multipart.FileHeader, opt WebPOptions) ([]byte, error) {
	raw, err := readImage(fh)
	if err != nil {
		return nil, err
	}
	data, err := ConvertToWebP(raw, fh.Filename, opt)
	if errors.Is(err, ErrUnsupportedFormat) {
		return nil, fiber.NewError(fiber.StatusUnsupportedMediaType, "Formato não suportado (use jpg/png/webp)")
	}
	return data, err
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS (OSSService)
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir, name string, fh *multipart.FileHeader, opt WebPOptions) (string, error) {
	data, err := convertUpload(fh, opt)
	if err != nil {
		return "", err
	}
	key := buildObjectKey(b.svc.Prefix, dir, name)
	if err := b.svc.PutWebP(ctx, key, data); err != nil {
		return "", err
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := b.svc.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return b.svc.DeleteObject(ctx, key)
}

// --------------------------------------------------
// Local disk (dev / tests)
// --------------------------------------------------

type LocalBlobService struct {
	Root       string
	PublicBase string
}

func NewLocalBlobService(root, publicBase string) *LocalBlobService {
	return &LocalBlobService{Root: root, PublicBase: strings.TrimRight(publicBase, "/")}
}

func (l *LocalBlobService) UploadImage(ctx context.Context, dir, name string, fh *multipart.FileHeader, opt WebPOptions) (string, error) {
	data, err := convertUpload(fh, opt)
	if err != nil {
		return "", err
	}
	key := buildObjectKey("", dir, name)
	full := filepath.Join(l.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return l.PublicBase + "/" + key, nil
}

func (l *LocalBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if !strings.HasPrefix(publicURL, l.PublicBase+"/") {
		return nil
	}
	key := strings.TrimPrefix(publicURL, l.PublicBase+"/")
	if strings.Contains(key, "..") {
		return fmt.Errorf("invalid key: %s", key)
	}
	err := os.Remove(filepath.Join(l.Root, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
