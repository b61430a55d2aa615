// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
	Prefix     string // optional: "painel"
}

// OSSConfigured reports whether the ALI_OSS_* variables are present.
func OSSConfigured() bool {
	for _, k := range []string{"ALI_OSS_ENDPOINT", "ALI_OSS_ACCESS_KEY", "ALI_OSS_SECRET_KEY", "ALI_OSS_BUCKET"} {
		if strings.TrimSpace(os.Getenv(k)) == "" {
			return false
		}
	}
	return true
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := strings.TrimSpace(os.Getenv("ALI_OSS_ENDPOINT"))
	ak := strings.TrimSpace(os.Getenv("ALI_OSS_ACCESS_KEY"))
	sk := strings.TrimSpace(os.Getenv("ALI_OSS_SECRET_KEY"))
	sts := strings.TrimSpace(os.Getenv("ALI_OSS_SECURITY_TOKEN"))
	bucketName := strings.TrimSpace(os.Getenv("ALI_OSS_BUCKET"))
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	opts := []oss.ClientOption{}
	if sts != "" {
		opts = append(opts, oss.SecurityToken(sts))
	}
	client, err := oss.New(endpoint, ak, sk, opts...)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 {
			log.Printf("[OSS] warn: skip location check (bucket=%s): %s", bucketName, se.Code)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		PublicBase: strings.TrimSpace(os.Getenv("ALI_OSS_PUBLIC_BASE")),
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) PutWebP(ctx context.Context, key string, data []byte) error {
	return s.Bucket.PutObject(key, bytes.NewReader(data),
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return strings.TrimRight(s.PublicBase, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// KeyFromPublicURL reverses PublicURL.
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if s.PublicBase != "" {
		base := strings.TrimRight(s.PublicBase, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

// buildObjectKey: <prefix>/<dir>/<name>_<ts>_<rand>.webp
func buildObjectKey(prefix, dir, name string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{prefix, dir} {
		if p = strings.Trim(p, "/"); p != "" {
			parts = append(parts, p)
		}
	}
	file := fmt.Sprintf("%s_%s_%s.webp", safeName(name), time.Now().UTC().Format("20060102_150405"), randHex(3))
	return strings.Join(append(parts, file), "/")
}

func safeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r == ' ' || r == '_' || r == '.':
			return '-'
		}
		return -1
	}, s)
	s = strings.Trim(s, "-")
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
