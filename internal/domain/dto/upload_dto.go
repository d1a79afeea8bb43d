package dto

// UploadRequest carries a base64-encoded file for a direct upload into the
// bucket.
type UploadRequest struct {
	ContentType string `json:"contentType" validate:"required"`
	Data        string `json:"data" validate:"required"`
	Folder      string `json:"folder"`
}

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PresignRequest asks for a presigned PUT URL so the browser can upload to
// the bucket directly.
type PresignRequest struct {
	ContentType string `json:"contentType" validate:"required"`
	Folder      string `json:"folder"`
}

type PresignResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}
