package dto

import "github.com/langliu/budgie/internal/domain/entities"

// IngestRequest is the ingestion entry point payload. The length floor is a
// crude sanity check on the share link, not URL validation.
type IngestRequest struct {
	OriginalURL string `json:"originalUrl" validate:"required,min=10"`
}

// ShortVideoResponse is the persisted video augmented with its topics and
// the public playback URL. CoverURL is only set right after an ingest that
// managed to upload a cover; the cover key is not persisted.
type ShortVideoResponse struct {
	entities.ShortVideo
	VideoURL string `json:"videoUrl"`
	CoverURL string `json:"coverUrl,omitempty"`
}

type FileURLRequest struct {
	Key string `json:"key" validate:"required"`
}

type FileURLResponse struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}
