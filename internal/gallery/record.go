package gallery

import (
	"time"

	"github.com/google/uuid"

	"github.com/easelart/easel/internal/settings"
)

// Record represents one generated image in the gallery.
// The JSON field names are the on-disk state format; changing them
// invalidates previously saved galleries.
type Record struct {
	ID          string               `json:"id"`             // Time-ordered unique identifier
	Handle      string               `json:"resourceHandle"` // Blob store handle for the image bytes
	Prompt      string               `json:"prompt"`         // Prompt as the user typed it
	CreatedAt   time.Time            `json:"createdAt"`      // Generation completion time (UTC)
	AspectRatio settings.AspectRatio `json:"aspectRatio"`    // Aspect ratio the image was requested at
}

// NewRecord creates a gallery record for a freshly generated image.
// IDs are UUIDv7 so records sort by creation time even outside the gallery.
func NewRecord(handle, prompt string, aspect settings.AspectRatio) Record {
	return Record{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Handle:      handle,
		Prompt:      prompt,
		CreatedAt:   time.Now().UTC(),
		AspectRatio: aspect,
	}
}

// ShortID returns the leading segment of the record ID for display.
func (r Record) ShortID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
