package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"travel-admin/core/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrNoInput is returned when a request carries neither a file, a data URL nor a remote URL.
	ErrNoInput = errors.New("missing file, dataUrl or url")
	// ErrInvalidDataURL is returned for data URLs that are not base64 encoded.
	ErrInvalidDataURL = errors.New("invalid data url")
	// ErrFetch is returned when a remote URL cannot be downloaded.
	ErrFetch = errors.New("failed to fetch remote url")
	// ErrForeignObject is returned when removal targets an object outside the upload folder.
	ErrForeignObject = errors.New("object is outside the upload folder")
)

// Result identifies a stored upload.
type Result struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Service stores images in the configured bucket.
type Service struct {
	client       storage.Client
	cfg          storage.Config
	logger       *zap.Logger
	fetchTimeout time.Duration
	maxBytes     int
}

// NewService creates an upload service. maxBytes bounds remote downloads.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, maxBytes int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{client: client, cfg: cfg, logger: logger, fetchTimeout: timeout, maxBytes: maxBytes}
}

// Upload stores the content of r under <folder>/<uuid><ext>.
func (s *Service) Upload(ctx context.Context, r io.Reader, size int64, contentType, ext string) (*Result, error) {
	if ext == "" {
		ext = extensionFor(contentType)
	}
	name := path.Join(s.cfg.UploadFolder, uuid.NewString()+strings.ToLower(ext))

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", name, err)
	}

	s.logger.Info("Stored upload", zap.String("object", name), zap.Int64("size", size), zap.String("content_type", contentType))
	return &Result{URL: s.cfg.ObjectURL(name), PublicID: name}, nil
}

// UploadDataURL stores a "data:<mime>;base64,<payload>" image.
func (s *Service) UploadDataURL(ctx context.Context, dataURL string) (*Result, error) {
	contentType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	return s.Upload(ctx, bytes.NewReader(data), int64(len(data)), contentType, "")
}

// UploadRemote downloads url and stores the body.
func (s *Service) UploadRemote(ctx context.Context, url string) (*Result, error) {
	timeout := s.fetchTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrFetch, context.DeadlineExceeded)
	}

	a := fiber.Get(url).Timeout(timeout).MaxRedirectsCount(5)
	if s.maxBytes > 0 && a.HostClient != nil {
		// fasthttp aborts the read once the body passes the limit
		a.MaxResponseBodySize = s.maxBytes
	}
	code, body, errList := a.Bytes()
	if len(errList) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrFetch, errors.Join(errList...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s answered %d", ErrFetch, url, code)
	}
	if s.maxBytes > 0 && len(body) > s.maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrFetch, s.maxBytes)
	}

	// the sniffed type wins over the URL's extension
	detected := mimetype.Detect(body)
	ext := detected.Extension()
	if ext == "" {
		ext = path.Ext(strings.SplitN(path.Base(url), "?", 2)[0])
	}
	return s.Upload(ctx, bytes.NewReader(body), int64(len(body)), detected.String(), ext)
}

// Remove deletes a previously uploaded object.
func (s *Service) Remove(ctx context.Context, publicID string) error {
	publicID = strings.TrimPrefix(publicID, "/")
	if !strings.HasPrefix(publicID, s.cfg.UploadFolder+"/") || strings.Contains(publicID, "..") {
		return fmt.Errorf("%w: %s", ErrForeignObject, publicID)
	}
	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", publicID, err)
	}
	s.logger.Info("Removed upload", zap.String("object", publicID))
	return nil
}

func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURL)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	return contentType, data, nil
}

func extensionFor(contentType string) string {
	mediaType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if mt := mimetype.Lookup(mediaType); mt != nil {
		return mt.Extension()
	}
	return ""
}
