package media

import (
	"context"
	"fmt"
)

// Options selects and configures an image store
type Options struct {
	Driver   string
	MaxBytes int64
	S3       S3Config
}

// Open returns the image store named by opts.Driver. An empty driver means
// inline.
func Open(ctx context.Context, opts Options) (ImageStore, error) {
	switch opts.Driver {
	case "", DriverInline:
		return NewInlineStore(opts.MaxBytes), nil
	case DriverS3:
		cfg := opts.S3
		cfg.MaxBytes = opts.MaxBytes
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown image store %q", opts.Driver)
	}
}
