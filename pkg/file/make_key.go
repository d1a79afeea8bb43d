package file

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a time-ordered UUIDv7 string. Falls back to v4 when the
// clock source misbehaves.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// MakeVideoKey builds the bucket key for a re-hosted short video:
// {prefix}/{unixMilli}-{id}.mp4
func MakeVideoKey(prefix, id string) string {
	return fmt.Sprintf("%s/%d-%s.mp4", prefix, time.Now().UnixMilli(), id)
}

// MakeCoverKey builds the bucket key for a video cover image. The extension
// follows the downloaded content type, jpg unless it is a png.
func MakeCoverKey(prefix, id, contentType string) string {
	ext := "jpg"
	if strings.Contains(contentType, "png") {
		ext = "png"
	}
	return fmt.Sprintf("%s/%d-%s.%s", prefix, time.Now().UnixMilli(), id, ext)
}

// MakeUploadKey builds the bucket key for a direct upload: {folder}/{id}.{ext}
func MakeUploadKey(folder, contentType string) string {
	return fmt.Sprintf("%s/%s.%s", folder, NewID(), ExtensionFromContentType(contentType))
}

func ExtensionFromContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "image/svg+xml":
		return "svg"
	case "video/mp4":
		return "mp4"
	default:
		return "bin"
	}
}
