package photo

import (
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotImage    = apperror.New(http.StatusBadRequest, "uploaded file must be an image")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "thumbnail not available for this photo")
)

// Photo is an image attached to a field. StoragePath and ThumbnailPath are
// internal to the storage backend and never serialized.
type Photo struct {
	ID            string
	FieldID       int64
	UserID        int64
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for a photo by its ID.
func URL(id string) string {
	return "/api/photos/" + id
}

// ThumbnailURL returns the public URL for a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/api/photos/" + id + "/thumbnail"
}
