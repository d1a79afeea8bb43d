package constants

const (
	StatusOK = "ok"

	// Object key prefixes in the bucket.
	ShortVideoPrefix = "short-videos"
	CoverPrefix      = "covers"
	AlbumPrefix      = "albums"
	UploadFolder     = "uploads"

	DefaultVideoContentType = "video/mp4"
	DefaultCoverContentType = "image/jpeg"

	// Extraction service success code embedded in the response body.
	ExtractorSuccessCode = "0001"
)
