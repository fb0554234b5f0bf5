package media

import (
	"context"
	"encoding/base64"
	"io"
	"strings"
)

var _ ImageStore = (*InlineStore)(nil)

// InlineStore returns the image itself as a data URL
type InlineStore struct {
	maxBytes int64
}

// NewInlineStore creates an inline store accepting up to maxBytes
func NewInlineStore(maxBytes int64) *InlineStore {
	return &InlineStore{maxBytes: maxBytes}
}

// Put returns a data:<mime>;base64,... URL
func (s *InlineStore) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	up, err := ReadUpload(r, contentType, s.maxBytes)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(up.MIME.String()) + base64.StdEncoding.EncodedLen(len(up.Data)))
	b.WriteString("data:")
	b.WriteString(up.MIME.String())
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(up.Data))
	return b.String(), nil
}
