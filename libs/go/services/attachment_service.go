package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
)

// MaxAttachmentSize is the largest photo accepted for a line item.
const MaxAttachmentSize = 10 << 20

const defaultAttachmentPrefix = "attachments"

var attachmentExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/heic": ".heic",
	"image/heif": ".heif",
}

// AttachmentService stores line item photos in object storage.
type AttachmentService struct {
	uploader interfaces.ObjectUploader
	prefix   string
	now      func() time.Time
	newID    func() string
	logger   *logger.StructuredLogger
}

func NewAttachmentService(uploader interfaces.ObjectUploader, prefix string) *AttachmentService {
	if prefix == "" {
		prefix = defaultAttachmentPrefix
	}
	return &AttachmentService{
		uploader: uploader,
		prefix:   strings.Trim(prefix, "/"),
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   logger.NewStructuredLogger(logger.ComponentStorage),
	}
}

// Upload checks the file is an image within MaxAttachmentSize and stores it.
func (s *AttachmentService) Upload(ctx context.Context, p params.AttachmentUploadParams) (*responses.AttachmentResponse, error) {
	if p.Body == nil || p.Size <= 0 {
		return nil, &ValidationError{Fields: []FieldError{{Field: "file", Message: "file is required"}}}
	}
	if p.Size > MaxAttachmentSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrAttachmentTooLarge, p.Size, MaxAttachmentSize)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(p.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	head = head[:n]

	contentType, err := attachmentContentType(p.ContentType, head)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s%s", s.prefix, s.now().UTC().Format("2006/01/02"), s.newID(), attachmentExtensions[contentType])
	body := io.MultiReader(bytes.NewReader(head), p.Body)

	url, err := s.uploader.Upload(ctx, key, contentType, body, p.Size)
	if err != nil {
		s.logger.WithField("key", key).Error("Failed to upload attachment", err)
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"key":          key,
		"content_type": contentType,
		"size":         p.Size,
	}).Info("Attachment uploaded")

	return &responses.AttachmentResponse{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		Size:        p.Size,
	}, nil
}

// attachmentContentType prefers the sniffed type. Formats the sniffer does
// not know (HEIC) fall back to the declared type.
func attachmentContentType(declared string, head []byte) (string, error) {
	sniffed := http.DetectContentType(head)
	if _, ok := attachmentExtensions[sniffed]; ok {
		return sniffed, nil
	}
	if sniffed != "application/octet-stream" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAttachment, sniffed)
	}
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAttachment, declared)
	}
	if _, ok := attachmentExtensions[mediaType]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAttachment, mediaType)
	}
	return mediaType, nil
}
