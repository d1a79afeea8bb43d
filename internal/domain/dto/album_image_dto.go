package dto

// ImagePayload is one picture in a batch add. Data is base64 encoded.
// Width/height may be supplied by the client; when absent they are probed
// from the decoded image server side.
type ImagePayload struct {
	Caption     string `json:"caption"`
	ContentType string `json:"contentType" validate:"required"`
	Data        string `json:"data" validate:"required"`
	FileSize    int64  `json:"fileSize"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type AddImagesRequest struct {
	Images []ImagePayload `json:"images" validate:"required,min=1,dive"`
}

type UpdateImageRequest struct {
	Caption   *string `json:"caption"`
	SortOrder *int    `json:"sortOrder"`
}
