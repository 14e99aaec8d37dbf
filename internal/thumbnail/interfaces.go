package thumbnail

import (
	"context"
)

// Loader defines the interface for the thumbnail service.
type Loader interface {
	// Load never fails; on any problem it returns a placeholder thumbnail.
	Load(ctx context.Context, url string) *Thumbnail
}
