package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO хранит фотографии упаковок лекарств
type MinIO struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIO создает клиента MinIO. hostPort например "127.0.0.1:9000".
func NewMinIO(ctx context.Context, hostPort, accessKey, secretKey, bucket string, useSSL bool, publicBase string) (*MinIO, error) {
	c, err := minio.New(hostPort, &minio.Options{Creds: credentials.NewStaticV4(accessKey, secretKey, ""), Secure: useSSL})
	if err != nil {
		return nil, err
	}

	// Ensure bucket exists
	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}

	if publicBase == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicBase = scheme + "://" + hostPort
	}

	return &MinIO{client: c, bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

var nonSafe = regexp.MustCompile(`[^a-z0-9\-_.]+`)

// sanitizeFileName латинизирует имя файла: только [a-z0-9-_.].
func sanitizeFileName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = nonSafe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-_.")
	if name == "" {
		name = "file"
	}
	return name
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// objectKey строит ключ вида <prefix>-<hex><ext>
func objectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("%s-%s%s", sanitizeFileName(prefix), randomHex(4), ext)
}

// UploadImage загружает файл из multipart и возвращает ключ объекта и публичный URL.
func (m *MinIO) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (key string, publicURL string, err error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	key = objectKey(prefix, fileHeader.Filename)

	_, err = m.client.PutObject(ctx, m.bucket, key, f, fileHeader.Size, minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")})
	if err != nil {
		return "", "", err
	}

	return key, m.PublicURL(key), nil
}

func (m *MinIO) DeleteImage(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

// PublicURL возвращает адрес объекта для клиента
func (m *MinIO) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	u, err := url.Parse(m.publicBase)
	if err != nil {
		return ""
	}
	u.Path = path.Join(u.Path, m.bucket, key)
	return u.String()
}
