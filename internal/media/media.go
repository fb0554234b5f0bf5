// Package media stores invoice images and returns a reference that can be
// shown as a preview.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Store drivers
const (
	DriverInline = "inline"
	DriverS3     = "s3"
)

// DefaultMaxBytes caps an upload when no limit is configured
const DefaultMaxBytes int64 = 10 << 20

var (
	// ErrUnsupportedType is returned for anything that is not an image or a PDF
	ErrUnsupportedType = errors.New("only images and PDF documents are accepted")
	// ErrTooLarge is returned when the upload exceeds the size limit
	ErrTooLarge = errors.New("file exceeds the upload size limit")
	// ErrEmpty is returned for a zero byte upload
	ErrEmpty = errors.New("file is empty")
)

// ImageStore keeps an uploaded invoice image and returns its reference
type ImageStore interface {
	Put(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// Upload is a checked upload ready to be stored
type Upload struct {
	Data []byte
	MIME *mimetype.MIME
}

// Accepted reports whether mime is an image or a PDF
func Accepted(m *mimetype.MIME) bool {
	if strings.HasPrefix(m.String(), "image/") {
		return true
	}
	return m.Is("application/pdf")
}

// ReadUpload reads at most maxBytes from r and sniffs its type. The declared
// content type is only logged; the sniffed one decides.
func ReadUpload(r io.Reader, declared string, maxBytes int64) (Upload, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return Upload{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return Upload{}, ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return Upload{}, ErrTooLarge
	}

	m := mimetype.Detect(data)
	if !Accepted(m) {
		log.WithFields(logrus.Fields{
			"declared": declared,
			"detected": m.String(),
		}).Warn("Rejected upload type")
		return Upload{}, ErrUnsupportedType
	}
	return Upload{Data: data, MIME: m}, nil
}
