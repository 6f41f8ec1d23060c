// internals/helpers/storage/storage.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	storage_go "github.com/supabase-community/storage-go"

	"tpqnurislam_backend/internals/configs"
	"tpqnurislam_backend/internals/constants"
)

// Prefix folder dokumen pendaftaran di bucket `documents`.
const (
	DirAkte    = "akte"
	DirKK      = "kk"
	DirFoto3x4 = "foto3x4"
	DirFoto2x4 = "foto2x4"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxImageDim   = 1600
)

/*
DocumentStorage adalah facade upload yang seragam untuk controller/service.
Path objek: {dir}/{unixMillis}-{namaFileAsli}, timestamp membuat path
tahan tabrakan walau dua pendaftar mengunggah file bernama sama.
*/
type DocumentStorage interface {
	UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
}

// --------------------------------------------------
// Implementasi berbasis Supabase Storage
// --------------------------------------------------

type SupabaseStorage struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStorageFromEnv membuat client dari konfigurasi ENV
// (SUPABASE_URL + SUPABASE_SERVICE_ROLE_KEY + STORAGE_BUCKET).
func NewSupabaseStorageFromEnv() (*SupabaseStorage, error) {
	base := strings.TrimRight(configs.StorageURL, "/")
	if base == "" {
		return nil, fmt.Errorf("SUPABASE_URL belum diset")
	}
	if configs.StorageServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY belum diset")
	}
	client := storage_go.NewClient(base+"/storage/v1", configs.StorageServiceKey, nil)
	return &SupabaseStorage{client: client, bucket: configs.StorageBucket}, nil
}

func (s *SupabaseStorage) UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > maxUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 5MB")
	}
	if !constants.IsAllowedDocumentExt(fh.Filename) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Format file harus JPG, PNG, atau WEBP")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibuka: "+err.Error())
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibaca: "+err.Error())
	}

	raw = shrinkImageIfNeeded(fh.Filename, raw)

	objectPath := ObjectPath(dir, fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	opts := storage_go.FileOptions{}
	if contentType != "" {
		opts.ContentType = &contentType
	}

	if _, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(raw), opts); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Upload dokumen gagal: "+err.Error())
	}

	return s.client.GetPublicUrl(s.bucket, objectPath).SignedURL, nil
}

// ObjectPath membentuk path objek: {dir}/{unixMillis}-{filename}.
func ObjectPath(dir, filename string) string {
	return fmt.Sprintf("%s/%d-%s", dir, time.Now().UnixMilli(), SanitizeFilename(filename))
}

// SanitizeFilename membuang karakter path dan spasi dari nama file asli.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name
}

// shrinkImageIfNeeded mengecilkan foto yang melebihi batas dimensi
// supaya bucket tidak terisi foto kamera full-res. Format non-gambar
// atau gambar yang gagal didecode dikembalikan apa adanya.
func shrinkImageIfNeeded(filename string, raw []byte) []byte {
	var format imaging.Format
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		format = imaging.JPEG
	case ".png":
		format = imaging.PNG
	default:
		return raw
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return raw
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxImageDim && bounds.Dy() <= maxImageDim {
		return raw
	}

	resized := imaging.Fit(img, maxImageDim, maxImageDim, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return raw
	}
	return buf.Bytes()
}

// --------------------------------------------------
// Mock untuk test
// --------------------------------------------------

type MockStorage struct {
	Uploaded []string // object dir yang dipanggil, urut
	FailOn   string   // dir yang dipaksa gagal (kosong = selalu sukses)
}

func (m *MockStorage) UploadDocument(_ context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if m.FailOn != "" && m.FailOn == dir {
		return "", fmt.Errorf("mock upload %s gagal", dir)
	}
	m.Uploaded = append(m.Uploaded, dir)
	name := "file"
	if fh != nil {
		name = SanitizeFilename(fh.Filename)
	}
	return fmt.Sprintf("https://mock.storage/%s/%s", dir, name), nil
}
